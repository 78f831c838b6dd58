// Package id generates opaque random tokens using Base62 encoding.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated tokens
	DefaultLength = 12

	// ActivationTokenLength is used for vendor account activation links
	ActivationTokenLength = 32
)

// Prefixes for token types
const (
	PrefixActivation = "act"
)

// Generate creates a cryptographically random Base62 token of the given
// length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a token in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	token, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + token, nil
}

// NewActivationToken generates an opaque activation token for vendor login
// accounts.
func NewActivationToken() (string, error) {
	return GenerateWithPrefix(PrefixActivation, ActivationTokenLength)
}

// HasPrefix reports whether the token carries the given prefix.
func HasPrefix(token, prefix string) bool {
	return strings.HasPrefix(token, prefix+"_")
}
