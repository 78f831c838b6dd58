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

// ServiceRepository implements catalog.ServiceRepository on gorm.
type ServiceRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CatalogMapper
}

// NewServiceRepository creates a new ServiceRepository.
func NewServiceRepository(gdb *gorm.DB, logger logger.Interface) catalog.ServiceRepository {
	return &ServiceRepository{
		db:     gdb,
		logger: logger,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	model := r.mapper.ServiceToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return catalog.ErrDuplicateService
		}
		r.logger.Errorw("failed to create service", "title", s.Title(), "error", err)
		return fmt.Errorf("failed to create service: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model models.ServiceModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrServiceNotFound
		}
		r.logger.Errorw("failed to find service", "service_id", id, "error", err)
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return r.mapper.ServiceToEntity(&model), nil
}

func (r *ServiceRepository) ListByAdmin(ctx context.Context, adminID uint) ([]*catalog.Service, error) {
	var modelList []*models.ServiceModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("admin_id = ?", adminID).
		Order("title ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list services", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return r.mapper.ServicesToEntities(modelList), nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		Delete(&models.ServiceModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete service", "service_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return catalog.ErrServiceNotFound
	}

	return nil
}
