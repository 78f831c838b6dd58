package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrLanguagePairNotFound is returned when a language pair does not exist
	ErrLanguagePairNotFound = errors.New("language pair not found")

	// ErrSpecializationNotFound is returned when a specialization does not exist
	ErrSpecializationNotFound = errors.New("specialization not found")

	// ErrDuplicateService is returned when the admin already has the title
	ErrDuplicateService = errors.New("service already exists")

	// ErrDuplicateLanguagePair is returned when the admin already has the pair
	ErrDuplicateLanguagePair = errors.New("language pair already exists")

	// ErrDuplicateSpecialization is returned when the admin already has the title
	ErrDuplicateSpecialization = errors.New("specialization already exists")
)
