package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/mappers"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// VendorSettingsRepository implements vendors.SettingsRepository on gorm.
type VendorSettingsRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SettingsMapper
}

// NewVendorSettingsRepository creates a new VendorSettingsRepository.
func NewVendorSettingsRepository(gdb *gorm.DB, logger logger.Interface) vendors.SettingsRepository {
	return &VendorSettingsRepository{
		db:     gdb,
		logger: logger,
		mapper: mappers.NewSettingsMapper(),
	}
}

func (r *VendorSettingsRepository) Create(ctx context.Context, s *vendors.Settings) error {
	model := r.mapper.ToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create vendor settings", "vendor_id", s.VendorID(), "error", err)
		return fmt.Errorf("failed to create vendor settings: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *VendorSettingsRepository) FindByVendorID(ctx context.Context, vendorID uint) (*vendors.Settings, error) {
	return r.findByVendorID(ctx, vendorID, false)
}

// FindByVendorIDForUpdate locks the settings row for the duration of the
// ambient transaction so concurrent flag updates serialize.
func (r *VendorSettingsRepository) FindByVendorIDForUpdate(ctx context.Context, vendorID uint) (*vendors.Settings, error) {
	return r.findByVendorID(ctx, vendorID, true)
}

func (r *VendorSettingsRepository) findByVendorID(ctx context.Context, vendorID uint, forUpdate bool) (*vendors.Settings, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	// sqlite has no row locks, its writes serialize on the database anyway
	if forUpdate && tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var model models.VendorSettingsModel
	err := tx.Where("vendor_id = ?", vendorID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendors.ErrSettingsNotFound
		}
		r.logger.Errorw("failed to find vendor settings", "vendor_id", vendorID, "error", err)
		return nil, fmt.Errorf("failed to find vendor settings: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *VendorSettingsRepository) Update(ctx context.Context, s *vendors.Settings) error {
	model := r.mapper.ToModel(s)

	// Save writes every column so flags flipped to false persist
	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update vendor settings", "vendor_id", s.VendorID(), "error", err)
		return fmt.Errorf("failed to update vendor settings: %w", err)
	}

	return nil
}

func (r *VendorSettingsRepository) DeleteByVendorID(ctx context.Context, vendorID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Delete(&models.VendorSettingsModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete vendor settings", "vendor_id", vendorID, "error", result.Error)
		return fmt.Errorf("failed to delete vendor settings: %w", result.Error)
	}

	return nil
}
