package vendors

import (
	"context"
	"time"
)

// Repository defines vendor persistence.
type Repository interface {
	// Create persists a new vendor and sets its generated ID
	Create(ctx context.Context, v *Vendor) error

	// FindByID retrieves a vendor by id; returns ErrVendorNotFound when absent
	FindByID(ctx context.Context, id uint) (*Vendor, error)

	// ListByAdmin retrieves all vendors owned by the admin, ascending by id
	ListByAdmin(ctx context.Context, adminID uint) ([]*Vendor, error)

	// Update persists the vendor's current state
	Update(ctx context.Context, v *Vendor) error

	// Delete removes the vendor row
	Delete(ctx context.Context, id uint) error
}

// SettingsRepository defines vendor settings persistence.
type SettingsRepository interface {
	// Create persists the settings row for a new vendor
	Create(ctx context.Context, s *Settings) error

	// FindByVendorID retrieves the settings row; ErrSettingsNotFound when absent
	FindByVendorID(ctx context.Context, vendorID uint) (*Settings, error)

	// FindByVendorIDForUpdate retrieves the settings row with a row-level
	// lock; must be called inside a transaction
	FindByVendorIDForUpdate(ctx context.Context, vendorID uint) (*Settings, error)

	// Update persists the settings row's current state
	Update(ctx context.Context, s *Settings) error

	// DeleteByVendorID removes the settings row
	DeleteByVendorID(ctx context.Context, vendorID uint) error
}

// MembershipEntry is one explicit allow-list row.
type MembershipEntry struct {
	EntityID  uint
	CreatedAt time.Time
}

// MembershipRepository defines allow-list persistence for all three scopes.
type MembershipRepository interface {
	// Add inserts allow-list rows; already-present entries are ignored
	Add(ctx context.Context, vendorID uint, scope ScopeType, entityIDs []uint) error

	// List retrieves the allow-list rows for one vendor/scope
	List(ctx context.Context, vendorID uint, scope ScopeType) ([]MembershipEntry, error)

	// Remove deletes a single allow-list row
	Remove(ctx context.Context, vendorID uint, scope ScopeType, entityID uint) error

	// DeleteAllForScope removes every row for the vendor in one scope
	DeleteAllForScope(ctx context.Context, vendorID uint, scope ScopeType) error

	// DeleteAllForVendor removes every row for the vendor across all scopes
	DeleteAllForVendor(ctx context.Context, vendorID uint) error
}

// CredentialRepository defines auth credential persistence.
type CredentialRepository interface {
	// Create persists a new credential and sets its generated ID
	Create(ctx context.Context, c *Credential) error

	// FindByID retrieves a credential; ErrCredentialNotFound when absent
	FindByID(ctx context.Context, id uint) (*Credential, error)

	// FindByActivationToken retrieves a credential by pending token
	FindByActivationToken(ctx context.Context, token string) (*Credential, error)

	// Update persists the credential's current state
	Update(ctx context.Context, c *Credential) error

	// Delete removes the credential row
	Delete(ctx context.Context, id uint) error
}

// ContactRepository defines primary contact persistence.
type ContactRepository interface {
	// Create persists a new contact and sets its generated ID
	Create(ctx context.Context, p *PrimaryContact) error

	// FindByVendorID retrieves the contact; ErrContactNotFound when absent
	FindByVendorID(ctx context.Context, vendorID uint) (*PrimaryContact, error)

	// Update persists the contact's current state
	Update(ctx context.Context, p *PrimaryContact) error

	// DeleteByVendorID removes the contact row
	DeleteByVendorID(ctx context.Context, vendorID uint) error
}
