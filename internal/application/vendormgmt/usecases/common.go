// Package usecases contains the vendor application use cases. Each use case
// receives the acting admin explicitly so tenant isolation is enforced at
// the application boundary, not inferred from ambient state.
package usecases

import (
	"context"
	"errors"
	"fmt"

	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
)

// PasswordHasher hashes and verifies vendor login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// ActivationEmailSender mails the activation link to a new vendor.
type ActivationEmailSender interface {
	SendActivationEmail(to, token string) error
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// loadOwnedVendor fetches the vendor and enforces tenant ownership. The
// error messages here are part of the API contract.
func loadOwnedVendor(ctx context.Context, repo domainVendor.Repository, adminID, vendorID uint) (*domainVendor.Vendor, error) {
	v, err := repo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainVendor.ErrVendorNotFound) {
			return nil, apperrors.NewNotFoundError("Vendor not found")
		}
		return nil, fmt.Errorf("failed to load vendor: %w", err)
	}

	if !v.OwnedBy(adminID) {
		return nil, apperrors.NewForbiddenError("This vendor doesn't belong to your admin account")
	}

	return v, nil
}
