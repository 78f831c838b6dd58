package vendors

import (
	"fmt"
	"time"

	"github.com/vendordesk-io/vendordesk/internal/shared/biztime"
)

// Type distinguishes freelancer vendors from agencies/companies.
type Type string

const (
	TypeFreelancer Type = "freelancer"
	TypeCompany    Type = "company"
)

func (t Type) IsValid() bool {
	return t == TypeFreelancer || t == TypeCompany
}

// Vendor is the supplier aggregate. Every vendor is owned by exactly one
// admin (tenant); all reads and writes are scoped to that admin.
type Vendor struct {
	id               uint
	adminID          uint
	credentialID     uint
	vendorType       Type
	companyName      string
	legalEntity      string
	country          string
	canLogin         bool
	assignableToJobs bool
	financesVisible  bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewVendor creates a vendor owned by adminID. The credential linkage is
// attached by the persistence flow once the credential row exists.
func NewVendor(adminID uint, vendorType Type, companyName, legalEntity, country string) (*Vendor, error) {
	if adminID == 0 {
		return nil, fmt.Errorf("admin id is required")
	}
	if !vendorType.IsValid() {
		return nil, fmt.Errorf("invalid vendor type: %s", vendorType)
	}
	if vendorType == TypeCompany && companyName == "" {
		return nil, fmt.Errorf("company name is required for company vendors")
	}

	now := biztime.NowUTC()
	return &Vendor{
		adminID:     adminID,
		vendorType:  vendorType,
		companyName: companyName,
		legalEntity: legalEntity,
		country:     country,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructVendor rebuilds a Vendor from the persistence layer.
func ReconstructVendor(
	id uint,
	adminID uint,
	credentialID uint,
	vendorType Type,
	companyName string,
	legalEntity string,
	country string,
	canLogin bool,
	assignableToJobs bool,
	financesVisible bool,
	createdAt, updatedAt time.Time,
) *Vendor {
	return &Vendor{
		id:               id,
		adminID:          adminID,
		credentialID:     credentialID,
		vendorType:       vendorType,
		companyName:      companyName,
		legalEntity:      legalEntity,
		country:          country,
		canLogin:         canLogin,
		assignableToJobs: assignableToJobs,
		financesVisible:  financesVisible,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (v *Vendor) ID() uint               { return v.id }
func (v *Vendor) AdminID() uint          { return v.adminID }
func (v *Vendor) CredentialID() uint     { return v.credentialID }
func (v *Vendor) VendorType() Type       { return v.vendorType }
func (v *Vendor) CompanyName() string    { return v.companyName }
func (v *Vendor) LegalEntity() string    { return v.legalEntity }
func (v *Vendor) Country() string        { return v.country }
func (v *Vendor) CanLogin() bool         { return v.canLogin }
func (v *Vendor) AssignableToJobs() bool { return v.assignableToJobs }
func (v *Vendor) FinancesVisible() bool  { return v.financesVisible }
func (v *Vendor) CreatedAt() time.Time   { return v.createdAt }
func (v *Vendor) UpdatedAt() time.Time   { return v.updatedAt }

// SetID sets the vendor ID (only for persistence layer use)
func (v *Vendor) SetID(id uint) {
	v.id = id
}

// AttachCredential links the vendor to its auth credential record.
func (v *Vendor) AttachCredential(credentialID uint) {
	v.credentialID = credentialID
}

// OwnedBy reports whether the vendor belongs to the given admin.
func (v *Vendor) OwnedBy(adminID uint) bool {
	return v.adminID == adminID
}

// EnableLogin marks the vendor as allowed to log in.
func (v *Vendor) EnableLogin() {
	v.canLogin = true
	v.updatedAt = biztime.NowUTC()
}

// Patch is a whitelisted partial update of vendor profile fields. Nil
// fields are left unchanged; out-of-whitelist input never reaches here.
type Patch struct {
	VendorType       *Type
	CompanyName      *string
	LegalEntity      *string
	Country          *string
	CanLogin         *bool
	AssignableToJobs *bool
	FinancesVisible  *bool
}

// IsEmpty reports whether the patch carries no fields.
func (p Patch) IsEmpty() bool {
	return p.VendorType == nil &&
		p.CompanyName == nil &&
		p.LegalEntity == nil &&
		p.Country == nil &&
		p.CanLogin == nil &&
		p.AssignableToJobs == nil &&
		p.FinancesVisible == nil
}

// ApplyPatch merges the patch into the vendor.
func (v *Vendor) ApplyPatch(patch Patch) error {
	if patch.VendorType != nil {
		if !patch.VendorType.IsValid() {
			return fmt.Errorf("invalid vendor type: %s", *patch.VendorType)
		}
		v.vendorType = *patch.VendorType
	}
	if patch.CompanyName != nil {
		v.companyName = *patch.CompanyName
	}
	if patch.LegalEntity != nil {
		v.legalEntity = *patch.LegalEntity
	}
	if patch.Country != nil {
		v.country = *patch.Country
	}
	if patch.CanLogin != nil {
		v.canLogin = *patch.CanLogin
	}
	if patch.AssignableToJobs != nil {
		v.assignableToJobs = *patch.AssignableToJobs
	}
	if patch.FinancesVisible != nil {
		v.financesVisible = *patch.FinancesVisible
	}

	if !patch.IsEmpty() {
		v.updatedAt = biztime.NowUTC()
	}
	return nil
}
