// Package catalog is the application service for the tenant's system
// values: services, language pairs, and specializations.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/application/catalog/dto"
	domainCatalog "github.com/vendordesk-io/vendordesk/internal/domain/catalog"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// Service exposes catalog CRUD. All operations are tenant-scoped: deletes
// verify ownership before touching the row.
type Service struct {
	serviceRepo        domainCatalog.ServiceRepository
	languagePairRepo   domainCatalog.LanguagePairRepository
	specializationRepo domainCatalog.SpecializationRepository
	logger             logger.Interface
}

func NewService(
	serviceRepo domainCatalog.ServiceRepository,
	languagePairRepo domainCatalog.LanguagePairRepository,
	specializationRepo domainCatalog.SpecializationRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		serviceRepo:        serviceRepo,
		languagePairRepo:   languagePairRepo,
		specializationRepo: specializationRepo,
		logger:             logger,
	}
}

// CreateService adds a service title to the admin's catalog.
func (s *Service) CreateService(ctx context.Context, adminID uint, request dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	entity, err := domainCatalog.NewService(adminID, request.Title)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid service", err.Error())
	}

	if err := s.serviceRepo.Create(ctx, entity); err != nil {
		if errors.Is(err, domainCatalog.ErrDuplicateService) {
			return nil, apperrors.NewConflictError("service already exists", request.Title)
		}
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.logger.Infow("catalog service created", "admin_id", adminID, "service_id", entity.ID())

	return &dto.ServiceResponse{ID: entity.ID(), Title: entity.Title(), CreatedAt: entity.CreatedAt()}, nil
}

// ListServices returns the admin's services ordered by title.
func (s *Service) ListServices(ctx context.Context, adminID uint) ([]*dto.ServiceResponse, error) {
	entities, err := s.serviceRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	responses := make([]*dto.ServiceResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, &dto.ServiceResponse{ID: e.ID(), Title: e.Title(), CreatedAt: e.CreatedAt()})
	}
	return responses, nil
}

// DeleteService removes a service from the admin's catalog.
func (s *Service) DeleteService(ctx context.Context, adminID, serviceID uint) error {
	entity, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domainCatalog.ErrServiceNotFound) {
			return apperrors.NewNotFoundError("Service not found")
		}
		return fmt.Errorf("failed to load service: %w", err)
	}
	if entity.AdminID() != adminID {
		return apperrors.NewForbiddenError("This service doesn't belong to your admin account")
	}

	if err := s.serviceRepo.Delete(ctx, serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.logger.Infow("catalog service deleted", "admin_id", adminID, "service_id", serviceID)
	return nil
}

// CreateLanguagePair adds a language pair to the admin's catalog.
func (s *Service) CreateLanguagePair(ctx context.Context, adminID uint, request dto.CreateLanguagePairRequest) (*dto.LanguagePairResponse, error) {
	entity, err := domainCatalog.NewLanguagePair(adminID, request.Source, request.Target)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid language pair", err.Error())
	}

	if err := s.languagePairRepo.Create(ctx, entity); err != nil {
		if errors.Is(err, domainCatalog.ErrDuplicateLanguagePair) {
			return nil, apperrors.NewConflictError("language pair already exists")
		}
		return nil, fmt.Errorf("failed to create language pair: %w", err)
	}

	s.logger.Infow("catalog language pair created", "admin_id", adminID, "language_pair_id", entity.ID())

	return &dto.LanguagePairResponse{ID: entity.ID(), Source: entity.Source(), Target: entity.Target(), CreatedAt: entity.CreatedAt()}, nil
}

// ListLanguagePairs returns the admin's language pairs.
func (s *Service) ListLanguagePairs(ctx context.Context, adminID uint) ([]*dto.LanguagePairResponse, error) {
	entities, err := s.languagePairRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list language pairs: %w", err)
	}

	responses := make([]*dto.LanguagePairResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, &dto.LanguagePairResponse{ID: e.ID(), Source: e.Source(), Target: e.Target(), CreatedAt: e.CreatedAt()})
	}
	return responses, nil
}

// DeleteLanguagePair removes a language pair from the admin's catalog.
func (s *Service) DeleteLanguagePair(ctx context.Context, adminID, pairID uint) error {
	entity, err := s.languagePairRepo.FindByID(ctx, pairID)
	if err != nil {
		if errors.Is(err, domainCatalog.ErrLanguagePairNotFound) {
			return apperrors.NewNotFoundError("Language pair not found")
		}
		return fmt.Errorf("failed to load language pair: %w", err)
	}
	if entity.AdminID() != adminID {
		return apperrors.NewForbiddenError("This language pair doesn't belong to your admin account")
	}

	if err := s.languagePairRepo.Delete(ctx, pairID); err != nil {
		return fmt.Errorf("failed to delete language pair: %w", err)
	}

	s.logger.Infow("catalog language pair deleted", "admin_id", adminID, "language_pair_id", pairID)
	return nil
}

// CreateSpecialization adds a specialization to the admin's catalog.
func (s *Service) CreateSpecialization(ctx context.Context, adminID uint, request dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error) {
	entity, err := domainCatalog.NewSpecialization(adminID, request.Title)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid specialization", err.Error())
	}

	if err := s.specializationRepo.Create(ctx, entity); err != nil {
		if errors.Is(err, domainCatalog.ErrDuplicateSpecialization) {
			return nil, apperrors.NewConflictError("specialization already exists", request.Title)
		}
		return nil, fmt.Errorf("failed to create specialization: %w", err)
	}

	s.logger.Infow("catalog specialization created", "admin_id", adminID, "specialization_id", entity.ID())

	return &dto.SpecializationResponse{ID: entity.ID(), Title: entity.Title(), CreatedAt: entity.CreatedAt()}, nil
}

// ListSpecializations returns the admin's specializations ordered by title.
func (s *Service) ListSpecializations(ctx context.Context, adminID uint) ([]*dto.SpecializationResponse, error) {
	entities, err := s.specializationRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list specializations: %w", err)
	}

	responses := make([]*dto.SpecializationResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, &dto.SpecializationResponse{ID: e.ID(), Title: e.Title(), CreatedAt: e.CreatedAt()})
	}
	return responses, nil
}

// DeleteSpecialization removes a specialization from the admin's catalog.
func (s *Service) DeleteSpecialization(ctx context.Context, adminID, specializationID uint) error {
	entity, err := s.specializationRepo.FindByID(ctx, specializationID)
	if err != nil {
		if errors.Is(err, domainCatalog.ErrSpecializationNotFound) {
			return apperrors.NewNotFoundError("Specialization not found")
		}
		return fmt.Errorf("failed to load specialization: %w", err)
	}
	if entity.AdminID() != adminID {
		return apperrors.NewForbiddenError("This specialization doesn't belong to your admin account")
	}

	if err := s.specializationRepo.Delete(ctx, specializationID); err != nil {
		return fmt.Errorf("failed to delete specialization: %w", err)
	}

	s.logger.Infow("catalog specialization deleted", "admin_id", adminID, "specialization_id", specializationID)
	return nil
}
