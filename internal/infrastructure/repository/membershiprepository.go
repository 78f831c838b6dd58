package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
	"github.com/vendordesk-io/vendordesk/internal/shared/biztime"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// scopeTable maps a scope type to its join table and entity-id column.
type scopeTable struct {
	model        interface{}
	entityColumn string
}

func tableForScope(scope vendors.ScopeType) (scopeTable, error) {
	switch scope {
	case vendors.ScopeServices:
		return scopeTable{model: &models.VendorServiceModel{}, entityColumn: "service_id"}, nil
	case vendors.ScopeLanguagePairs:
		return scopeTable{model: &models.VendorLanguagePairModel{}, entityColumn: "language_pair_id"}, nil
	case vendors.ScopeSpecializations:
		return scopeTable{model: &models.VendorSpecializationModel{}, entityColumn: "specialization_id"}, nil
	default:
		return scopeTable{}, fmt.Errorf("unknown scope type: %s", scope)
	}
}

// MembershipRepository implements vendors.MembershipRepository over the three
// allow-list tables.
type MembershipRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(gdb *gorm.DB, logger logger.Interface) vendors.MembershipRepository {
	return &MembershipRepository{db: gdb, logger: logger}
}

func (r *MembershipRepository) Add(ctx context.Context, vendorID uint, scope vendors.ScopeType, entityIDs []uint) error {
	if len(entityIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	now := biztime.NowUTC()

	// Already-present entries are skipped so the operation is idempotent
	onConflict := clause.OnConflict{DoNothing: true}

	switch scope {
	case vendors.ScopeServices:
		rows := make([]models.VendorServiceModel, 0, len(entityIDs))
		for _, id := range entityIDs {
			rows = append(rows, models.VendorServiceModel{VendorID: vendorID, ServiceID: id, CreatedAt: now})
		}
		if err := tx.Clauses(onConflict).Create(&rows).Error; err != nil {
			return r.addError(vendorID, scope, err)
		}
	case vendors.ScopeLanguagePairs:
		rows := make([]models.VendorLanguagePairModel, 0, len(entityIDs))
		for _, id := range entityIDs {
			rows = append(rows, models.VendorLanguagePairModel{VendorID: vendorID, LanguagePairID: id, CreatedAt: now})
		}
		if err := tx.Clauses(onConflict).Create(&rows).Error; err != nil {
			return r.addError(vendorID, scope, err)
		}
	case vendors.ScopeSpecializations:
		rows := make([]models.VendorSpecializationModel, 0, len(entityIDs))
		for _, id := range entityIDs {
			rows = append(rows, models.VendorSpecializationModel{VendorID: vendorID, SpecializationID: id, CreatedAt: now})
		}
		if err := tx.Clauses(onConflict).Create(&rows).Error; err != nil {
			return r.addError(vendorID, scope, err)
		}
	default:
		return fmt.Errorf("unknown scope type: %s", scope)
	}

	return nil
}

func (r *MembershipRepository) addError(vendorID uint, scope vendors.ScopeType, err error) error {
	r.logger.Errorw("failed to add membership entries", "vendor_id", vendorID, "scope", scope, "error", err)
	return fmt.Errorf("failed to add membership entries: %w", err)
}

func (r *MembershipRepository) List(ctx context.Context, vendorID uint, scope vendors.ScopeType) ([]vendors.MembershipEntry, error) {
	table, err := tableForScope(scope)
	if err != nil {
		return nil, err
	}

	var entries []vendors.MembershipEntry
	err = db.GetTxFromContext(ctx, r.db).
		Model(table.model).
		Select(table.entityColumn+" AS entity_id", "created_at").
		Where("vendor_id = ?", vendorID).
		Order(table.entityColumn + " ASC").
		Scan(&entries).Error
	if err != nil {
		r.logger.Errorw("failed to list membership entries", "vendor_id", vendorID, "scope", scope, "error", err)
		return nil, fmt.Errorf("failed to list membership entries: %w", err)
	}

	return entries, nil
}

func (r *MembershipRepository) Remove(ctx context.Context, vendorID uint, scope vendors.ScopeType, entityID uint) error {
	table, err := tableForScope(scope)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Where("vendor_id = ? AND "+table.entityColumn+" = ?", vendorID, entityID).
		Delete(table.model)
	if result.Error != nil {
		r.logger.Errorw("failed to remove membership entry",
			"vendor_id", vendorID, "scope", scope, "entity_id", entityID, "error", result.Error)
		return fmt.Errorf("failed to remove membership entry: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return vendors.ErrMembershipEntryNotFound
	}

	return nil
}

func (r *MembershipRepository) DeleteAllForScope(ctx context.Context, vendorID uint, scope vendors.ScopeType) error {
	table, err := tableForScope(scope)
	if err != nil {
		return err
	}

	err = db.GetTxFromContext(ctx, r.db).
		Where("vendor_id = ?", vendorID).
		Delete(table.model).Error
	if err != nil {
		r.logger.Errorw("failed to purge membership entries", "vendor_id", vendorID, "scope", scope, "error", err)
		return fmt.Errorf("failed to purge membership entries: %w", err)
	}

	return nil
}

func (r *MembershipRepository) DeleteAllForVendor(ctx context.Context, vendorID uint) error {
	for _, scope := range vendors.AllScopes() {
		if err := r.DeleteAllForScope(ctx, vendorID, scope); err != nil {
			return err
		}
	}
	return nil
}
