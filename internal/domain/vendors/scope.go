package vendors

// ScopeType identifies one of the three vendor eligibility scopes. Each
// scope is governed by its own "works with all" flag and, when that flag is
// off, by an explicit allow-list.
type ScopeType string

const (
	ScopeServices        ScopeType = "services"
	ScopeLanguagePairs   ScopeType = "language_pairs"
	ScopeSpecializations ScopeType = "specializations"
)

// AllScopes returns the three scope types in a stable order.
func AllScopes() []ScopeType {
	return []ScopeType{ScopeServices, ScopeLanguagePairs, ScopeSpecializations}
}

// IsValid reports whether s is a known scope type.
func (s ScopeType) IsValid() bool {
	switch s {
	case ScopeServices, ScopeLanguagePairs, ScopeSpecializations:
		return true
	default:
		return false
	}
}
