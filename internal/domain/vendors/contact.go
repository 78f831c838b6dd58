package vendors

import (
	"time"

	"github.com/vendordesk-io/vendordesk/internal/shared/biztime"
)

// PrimaryContact is the 1:1 contact-person record for a vendor.
type PrimaryContact struct {
	id        uint
	vendorID  uint
	firstName string
	lastName  string
	email     string
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

// NewPrimaryContact creates a contact record for the vendor.
func NewPrimaryContact(vendorID uint, firstName, lastName, email, phone string) *PrimaryContact {
	now := biztime.NowUTC()
	return &PrimaryContact{
		vendorID:  vendorID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructPrimaryContact rebuilds a PrimaryContact from the persistence layer.
func ReconstructPrimaryContact(
	id uint,
	vendorID uint,
	firstName, lastName, email, phone string,
	createdAt, updatedAt time.Time,
) *PrimaryContact {
	return &PrimaryContact{
		id:        id,
		vendorID:  vendorID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *PrimaryContact) ID() uint             { return p.id }
func (p *PrimaryContact) VendorID() uint       { return p.vendorID }
func (p *PrimaryContact) FirstName() string    { return p.firstName }
func (p *PrimaryContact) LastName() string     { return p.lastName }
func (p *PrimaryContact) Email() string        { return p.email }
func (p *PrimaryContact) Phone() string        { return p.phone }
func (p *PrimaryContact) CreatedAt() time.Time { return p.createdAt }
func (p *PrimaryContact) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the contact ID (only for persistence layer use)
func (p *PrimaryContact) SetID(id uint) {
	p.id = id
}

// ContactPatch is a partial update of contact fields.
type ContactPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// ApplyPatch merges the patch into the contact.
func (p *PrimaryContact) ApplyPatch(patch ContactPatch) {
	if patch.FirstName != nil {
		p.firstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.lastName = *patch.LastName
	}
	if patch.Email != nil {
		p.email = *patch.Email
	}
	if patch.Phone != nil {
		p.phone = *patch.Phone
	}
	p.updatedAt = biztime.NowUTC()
}
