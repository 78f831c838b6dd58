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

// VendorRepository implements vendors.Repository on gorm.
type VendorRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.VendorMapper
}

// NewVendorRepository creates a new VendorRepository.
func NewVendorRepository(gdb *gorm.DB, logger logger.Interface) vendors.Repository {
	return &VendorRepository{
		db:     gdb,
		logger: logger,
		mapper: mappers.NewVendorMapper(),
	}
}

func (r *VendorRepository) Create(ctx context.Context, v *vendors.Vendor) error {
	model := r.mapper.ToModel(v)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create vendor", "admin_id", v.AdminID(), "error", err)
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	v.SetID(model.ID)
	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id uint) (*vendors.Vendor, error) {
	var model models.VendorModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendors.ErrVendorNotFound
		}
		r.logger.Errorw("failed to find vendor", "vendor_id", id, "error", err)
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *VendorRepository) ListByAdmin(ctx context.Context, adminID uint) ([]*vendors.Vendor, error) {
	var modelList []*models.VendorModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("admin_id = ?", adminID).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list vendors", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *VendorRepository) Update(ctx context.Context, v *vendors.Vendor) error {
	model := r.mapper.ToModel(v)

	// Save writes every column so boolean flags flipped to false persist
	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update vendor", "vendor_id", v.ID(), "error", err)
		return fmt.Errorf("failed to update vendor: %w", err)
	}

	return nil
}

func (r *VendorRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		Delete(&models.VendorModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete vendor", "vendor_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete vendor: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return vendors.ErrVendorNotFound
	}

	return nil
}
