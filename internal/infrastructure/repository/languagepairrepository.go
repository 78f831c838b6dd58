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

// LanguagePairRepository implements catalog.LanguagePairRepository on gorm.
type LanguagePairRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CatalogMapper
}

// NewLanguagePairRepository creates a new LanguagePairRepository.
func NewLanguagePairRepository(gdb *gorm.DB, logger logger.Interface) catalog.LanguagePairRepository {
	return &LanguagePairRepository{
		db:     gdb,
		logger: logger,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *LanguagePairRepository) Create(ctx context.Context, p *catalog.LanguagePair) error {
	model := r.mapper.LanguagePairToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return catalog.ErrDuplicateLanguagePair
		}
		r.logger.Errorw("failed to create language pair",
			"source", p.Source(), "target", p.Target(), "error", err)
		return fmt.Errorf("failed to create language pair: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *LanguagePairRepository) FindByID(ctx context.Context, id uint) (*catalog.LanguagePair, error) {
	var model models.LanguagePairModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrLanguagePairNotFound
		}
		r.logger.Errorw("failed to find language pair", "language_pair_id", id, "error", err)
		return nil, fmt.Errorf("failed to find language pair: %w", err)
	}

	return r.mapper.LanguagePairToEntity(&model), nil
}

func (r *LanguagePairRepository) ListByAdmin(ctx context.Context, adminID uint) ([]*catalog.LanguagePair, error) {
	var modelList []*models.LanguagePairModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("admin_id = ?", adminID).
		Order("source ASC, target ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list language pairs", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to list language pairs: %w", err)
	}

	return r.mapper.LanguagePairsToEntities(modelList), nil
}

func (r *LanguagePairRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		Delete(&models.LanguagePairModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete language pair", "language_pair_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete language pair: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return catalog.ErrLanguagePairNotFound
	}

	return nil
}
