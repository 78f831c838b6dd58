// Package dto holds the request and response shapes of the vendor
// application service.
package dto

import "time"

// ContactRequest is the primary contact payload embedded in vendor writes.
// Nil fields are untouched on update.
type ContactRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

// CreateVendorRequest creates a vendor in the caller's tenant.
type CreateVendorRequest struct {
	Email            string          `json:"email" validate:"required,email"`
	VendorType       string          `json:"vendor_type" validate:"required,oneof=freelancer company"`
	CompanyName      string          `json:"company_name"`
	LegalEntity      string          `json:"legal_entity"`
	Country          string          `json:"country"`
	CanLogin         bool            `json:"can_login"`
	AssignableToJobs bool            `json:"assignable_to_jobs"`
	FinancesVisible  bool            `json:"finances_visible"`
	Contact          *ContactRequest `json:"contact"`
}

// UpdateVendorRequest is a partial vendor update. Nil fields are untouched.
type UpdateVendorRequest struct {
	Email            *string         `json:"email" validate:"omitempty,email"`
	VendorType       *string         `json:"vendor_type" validate:"omitempty,oneof=freelancer company"`
	CompanyName      *string         `json:"company_name"`
	LegalEntity      *string         `json:"legal_entity"`
	Country          *string         `json:"country"`
	CanLogin         *bool           `json:"can_login"`
	AssignableToJobs *bool           `json:"assignable_to_jobs"`
	FinancesVisible  *bool           `json:"finances_visible"`
	Contact          *ContactRequest `json:"contact"`
}

// ContactResponse mirrors the stored primary contact.
type ContactResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// VendorResponse is the API view of a vendor.
type VendorResponse struct {
	ID               uint             `json:"id"`
	Email            string           `json:"email"`
	VendorType       string           `json:"vendor_type"`
	CompanyName      string           `json:"company_name,omitempty"`
	LegalEntity      string           `json:"legal_entity,omitempty"`
	Country          string           `json:"country,omitempty"`
	CanLogin         bool             `json:"can_login"`
	AssignableToJobs bool             `json:"assignable_to_jobs"`
	FinancesVisible  bool             `json:"finances_visible"`
	Contact          *ContactResponse `json:"contact,omitempty"`
	ActivationLink   string           `json:"activation_link,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// UpdateSettingsRequest is the partial patch of the three scope flags.
type UpdateSettingsRequest struct {
	WorksWithAllServices        *bool `json:"works_with_all_services"`
	WorksWithAllLanguagePairs   *bool `json:"works_with_all_language_pairs"`
	WorksWithAllSpecializations *bool `json:"works_with_all_specializations"`
}

// SettingsResponse is the API view of a vendor's scope flags.
type SettingsResponse struct {
	VendorID                    uint `json:"vendor_id"`
	WorksWithAllServices        bool `json:"works_with_all_services"`
	WorksWithAllLanguagePairs   bool `json:"works_with_all_language_pairs"`
	WorksWithAllSpecializations bool `json:"works_with_all_specializations"`
}

// AddMembershipRequest adds allow-list entries for one scope.
type AddMembershipRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// MembershipEntryResponse is one allow-list row.
type MembershipEntryResponse struct {
	EntityID  uint      `json:"entity_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivateVendorRequest completes the activation flow started by the
// emailed link.
type ActivateVendorRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
