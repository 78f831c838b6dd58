package vendors

import "errors"

var (
	// ErrVendorNotFound is returned when a vendor does not exist
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrSettingsNotFound is returned when a vendor has no settings row
	ErrSettingsNotFound = errors.New("vendor settings not found")

	// ErrCredentialNotFound is returned when the auth credential is missing
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrContactNotFound is returned when the primary contact is missing
	ErrContactNotFound = errors.New("primary contact not found")

	// ErrDuplicateEmail is returned when the credential email is taken
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrMembershipEntryNotFound is returned when an allow-list row is missing
	ErrMembershipEntryNotFound = errors.New("membership entry not found")
)
