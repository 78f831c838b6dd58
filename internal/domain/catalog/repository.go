package catalog

import "context"

// ServiceRepository defines service persistence.
type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	FindByID(ctx context.Context, id uint) (*Service, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]*Service, error)
	Delete(ctx context.Context, id uint) error
}

// LanguagePairRepository defines language pair persistence.
type LanguagePairRepository interface {
	Create(ctx context.Context, p *LanguagePair) error
	FindByID(ctx context.Context, id uint) (*LanguagePair, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]*LanguagePair, error)
	Delete(ctx context.Context, id uint) error
}

// SpecializationRepository defines specialization persistence.
type SpecializationRepository interface {
	Create(ctx context.Context, s *Specialization) error
	FindByID(ctx context.Context, id uint) (*Specialization, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]*Specialization, error)
	Delete(ctx context.Context, id uint) error
}
