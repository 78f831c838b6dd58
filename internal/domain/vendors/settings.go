package vendors

import (
	"time"

	"github.com/vendordesk-io/vendordesk/internal/shared/biztime"
)

// Settings holds the three per-scope "works with all" flags for a vendor.
// Invariant: while a flag is true the corresponding allow-list must hold no
// rows for the vendor; the cascade at flag-flip time enforces it.
type Settings struct {
	id                        uint
	vendorID                  uint
	worksWithAllServices      bool
	worksWithAllLanguagePairs bool
	worksWithAllSpecs         bool
	createdAt                 time.Time
	updatedAt                 time.Time
}

// NewSettings creates the default settings row for a freshly created vendor.
// New vendors start in allow-list mode for every scope.
func NewSettings(vendorID uint) *Settings {
	now := biztime.NowUTC()
	return &Settings{
		vendorID:  vendorID,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructSettings rebuilds a Settings entity from the persistence layer.
func ReconstructSettings(
	id uint,
	vendorID uint,
	worksWithAllServices bool,
	worksWithAllLanguagePairs bool,
	worksWithAllSpecializations bool,
	createdAt, updatedAt time.Time,
) *Settings {
	return &Settings{
		id:                        id,
		vendorID:                  vendorID,
		worksWithAllServices:      worksWithAllServices,
		worksWithAllLanguagePairs: worksWithAllLanguagePairs,
		worksWithAllSpecs:         worksWithAllSpecializations,
		createdAt:                 createdAt,
		updatedAt:                 updatedAt,
	}
}

func (s *Settings) ID() uint                        { return s.id }
func (s *Settings) VendorID() uint                  { return s.vendorID }
func (s *Settings) WorksWithAllServices() bool      { return s.worksWithAllServices }
func (s *Settings) WorksWithAllLanguagePairs() bool { return s.worksWithAllLanguagePairs }
func (s *Settings) WorksWithAllSpecs() bool         { return s.worksWithAllSpecs }
func (s *Settings) CreatedAt() time.Time            { return s.createdAt }
func (s *Settings) UpdatedAt() time.Time            { return s.updatedAt }

// SetID sets the settings ID (only for persistence layer use)
func (s *Settings) SetID(id uint) {
	s.id = id
}

// WorksWithAll returns the flag value for the given scope.
func (s *Settings) WorksWithAll(scope ScopeType) bool {
	switch scope {
	case ScopeServices:
		return s.worksWithAllServices
	case ScopeLanguagePairs:
		return s.worksWithAllLanguagePairs
	case ScopeSpecializations:
		return s.worksWithAllSpecs
	default:
		return false
	}
}

// SettingsPatch is a partial update of the three flags. Nil fields are left
// unchanged.
type SettingsPatch struct {
	WorksWithAllServices        *bool
	WorksWithAllLanguagePairs   *bool
	WorksWithAllSpecializations *bool
}

// IsEmpty reports whether the patch carries no fields.
func (p SettingsPatch) IsEmpty() bool {
	return p.WorksWithAllServices == nil &&
		p.WorksWithAllLanguagePairs == nil &&
		p.WorksWithAllSpecializations == nil
}

// ApplyPatch merges the patch into the settings and returns the scopes whose
// flag transitioned false→true. Those scopes need their allow-list purged in
// the same unit of work; every other transition has no side effect.
func (s *Settings) ApplyPatch(patch SettingsPatch) []ScopeType {
	var enabled []ScopeType

	if patch.WorksWithAllServices != nil {
		if *patch.WorksWithAllServices && !s.worksWithAllServices {
			enabled = append(enabled, ScopeServices)
		}
		s.worksWithAllServices = *patch.WorksWithAllServices
	}

	if patch.WorksWithAllLanguagePairs != nil {
		if *patch.WorksWithAllLanguagePairs && !s.worksWithAllLanguagePairs {
			enabled = append(enabled, ScopeLanguagePairs)
		}
		s.worksWithAllLanguagePairs = *patch.WorksWithAllLanguagePairs
	}

	if patch.WorksWithAllSpecializations != nil {
		if *patch.WorksWithAllSpecializations && !s.worksWithAllSpecs {
			enabled = append(enabled, ScopeSpecializations)
		}
		s.worksWithAllSpecs = *patch.WorksWithAllSpecializations
	}

	if !patch.IsEmpty() {
		s.updatedAt = biztime.NowUTC()
	}

	return enabled
}
