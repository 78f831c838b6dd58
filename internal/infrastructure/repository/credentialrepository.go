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
	sharederrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// CredentialRepository implements vendors.CredentialRepository on gorm.
type CredentialRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CredentialMapper
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(gdb *gorm.DB, logger logger.Interface) vendors.CredentialRepository {
	return &CredentialRepository{
		db:     gdb,
		logger: logger,
		mapper: mappers.NewCredentialMapper(),
	}
}

func (r *CredentialRepository) Create(ctx context.Context, c *vendors.Credential) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return vendors.ErrDuplicateEmail
		}
		r.logger.Errorw("failed to create credential", "email", c.Email(), "error", err)
		return fmt.Errorf("failed to create credential: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CredentialRepository) FindByID(ctx context.Context, id uint) (*vendors.Credential, error) {
	var model models.CredentialModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendors.ErrCredentialNotFound
		}
		r.logger.Errorw("failed to find credential", "credential_id", id, "error", err)
		return nil, fmt.Errorf("failed to find credential: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *CredentialRepository) FindByActivationToken(ctx context.Context, token string) (*vendors.Credential, error) {
	var model models.CredentialModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("activation_token = ?", token).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendors.ErrCredentialNotFound
		}
		r.logger.Errorw("failed to find credential by token", "error", err)
		return nil, fmt.Errorf("failed to find credential by token: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

func (r *CredentialRepository) Update(ctx context.Context, c *vendors.Credential) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return vendors.ErrDuplicateEmail
		}
		r.logger.Errorw("failed to update credential", "credential_id", c.ID(), "error", err)
		return fmt.Errorf("failed to update credential: %w", err)
	}

	return nil
}

func (r *CredentialRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("id = ?", id).
		Delete(&models.CredentialModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete credential", "credential_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete credential: %w", result.Error)
	}

	return nil
}
