package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/mappers"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// ContactRepository implements vendors.ContactRepository on gorm.
type ContactRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ContactMapper
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(gdb *gorm.DB, logger logger.Interface) vendors.ContactRepository {
	return &ContactRepository{
		db:     gdb,
		logger: logger,
		mapper: mappers.NewContactMapper(),
	}
}

func (r *ContactRepository) Create(ctx context.Context, p *vendors.PrimaryContact) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create primary contact", "vendor_id", p.VendorID(), "error", err)
		return fmt.Errorf("failed to create primary contact: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *ContactRepository) FindByVendorID(ctx context.Context, vendorID uint) (*vendors.PrimaryContact, error) {
	var model models.PrimaryContactModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendors.ErrContactNotFound
		}
		r.logger.Errorw("failed to find primary contact", "vendor_id", vendorID, "error", err)
		return nil, fmt.Errorf("failed to find primary contact: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *ContactRepository) Update(ctx context.Context, p *vendors.PrimaryContact) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update primary contact", "vendor_id", p.VendorID(), "error", err)
		return fmt.Errorf("failed to update primary contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) DeleteByVendorID(ctx context.Context, vendorID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Delete(&models.PrimaryContactModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete primary contact", "vendor_id", vendorID, "error", result.Error)
		return fmt.Errorf("failed to delete primary contact: %w", result.Error)
	}

	return nil
}
