package vendors

import (
	"fmt"
	"strings"
	"time"

	"github.com/vendordesk-io/vendordesk/internal/shared/biztime"
)

// Credential is the login/email record a vendor is linked to. The email is
// globally unique; the activation token is set for vendors created with
// login enabled and cleared once the account is activated.
type Credential struct {
	id              uint
	email           string
	passwordHash    string
	activationToken string
	activatedAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewCredential creates a credential for the given email.
func NewCredential(email string) (*Credential, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()
	return &Credential{
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCredential rebuilds a Credential from the persistence layer.
func ReconstructCredential(
	id uint,
	email string,
	passwordHash string,
	activationToken string,
	activatedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Credential {
	return &Credential{
		id:              id,
		email:           email,
		passwordHash:    passwordHash,
		activationToken: activationToken,
		activatedAt:     activatedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (c *Credential) ID() uint                { return c.id }
func (c *Credential) Email() string           { return c.email }
func (c *Credential) PasswordHash() string    { return c.passwordHash }
func (c *Credential) ActivationToken() string { return c.activationToken }
func (c *Credential) ActivatedAt() *time.Time { return c.activatedAt }
func (c *Credential) CreatedAt() time.Time    { return c.createdAt }
func (c *Credential) UpdatedAt() time.Time    { return c.updatedAt }

// SetID sets the credential ID (only for persistence layer use)
func (c *Credential) SetID(id uint) {
	c.id = id
}

// IssueActivationToken stores the opaque token mailed to the vendor.
func (c *Credential) IssueActivationToken(token string) {
	c.activationToken = token
	c.updatedAt = biztime.NowUTC()
}

// Activate sets the password hash and clears the activation token.
func (c *Credential) Activate(passwordHash string) error {
	if c.activationToken == "" {
		return fmt.Errorf("credential has no pending activation")
	}
	c.passwordHash = passwordHash
	c.activationToken = ""
	now := biztime.NowUTC()
	c.activatedAt = &now
	c.updatedAt = now
	return nil
}

// ChangeEmail updates the credential email.
func (c *Credential) ChangeEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("email is required")
	}
	c.email = email
	c.updatedAt = biztime.NowUTC()
	return nil
}
