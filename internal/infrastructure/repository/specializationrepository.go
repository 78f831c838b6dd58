package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vendordesk-io/vendordesk/internal/domain/catalog"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/mappers"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	sharederrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// SpecializationRepository implements catalog.SpecializationRepository on gorm.
type SpecializationRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CatalogMapper
}

// NewSpecializationRepository creates a new SpecializationRepository.
func NewSpecializationRepository(gdb *gorm.DB, logger logger.Interface) catalog.SpecializationRepository {
	return &SpecializationRepository{
		db:     gdb,
		logger: logger,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *SpecializationRepository) Create(ctx context.Context, s *catalog.Specialization) error {
	model := r.mapper.SpecializationToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return catalog.ErrDuplicateSpecialization
		}
		r.logger.Errorw("failed to create specialization", "title", s.Title(), "error", err)
		return fmt.Errorf("failed to create specialization: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SpecializationRepository) FindByID(ctx context.Context, id uint) (*catalog.Specialization, error) {
	var model models.SpecializationModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrSpecializationNotFound
		}
		r.logger.Errorw("failed to find specialization", "specialization_id", id, "error", err)
		return nil, fmt.Errorf("failed to find specialization: %w", err)
	}

	return r.mapper.SpecializationToEntity(&model), nil
}

func (r *SpecializationRepository) ListByAdmin(ctx context.Context, adminID uint) ([]*catalog.Specialization, error) {
	var modelList []*models.SpecializationModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("admin_id = ?", adminID).
		Order("title ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list specializations", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to list specializations: %w", err)
	}

	return r.mapper.SpecializationsToEntities(modelList), nil
}

func (r *SpecializationRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		Delete(&models.SpecializationModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete specialization", "specialization_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete specialization: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return catalog.ErrSpecializationNotFound
	}

	return nil
}
