package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/cache"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// UpdateSettingsUseCase applies a partial flag patch atomically. A flag
// transitioning false→true purges that scope's allow-list inside the same
// transaction; every other transition leaves the allow-lists alone.
type UpdateSettingsUseCase struct {
	vendorRepo     domainVendor.Repository
	settingsRepo   domainVendor.SettingsRepository
	membershipRepo domainVendor.MembershipRepository
	txManager      *db.TransactionManager
	settingsCache  cache.SettingsCache
	logger         logger.Interface
}

func NewUpdateSettingsUseCase(
	vendorRepo domainVendor.Repository,
	settingsRepo domainVendor.SettingsRepository,
	membershipRepo domainVendor.MembershipRepository,
	txManager *db.TransactionManager,
	settingsCache cache.SettingsCache,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		vendorRepo:     vendorRepo,
		settingsRepo:   settingsRepo,
		membershipRepo: membershipRepo,
		txManager:      txManager,
		settingsCache:  settingsCache,
		logger:         logger,
	}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, adminID, vendorID uint, request dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	patch := domainVendor.SettingsPatch{
		WorksWithAllServices:        request.WorksWithAllServices,
		WorksWithAllLanguagePairs:   request.WorksWithAllLanguagePairs,
		WorksWithAllSpecializations: request.WorksWithAllSpecializations,
	}

	// Rejected before any repository call
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("at least one settings field is required")
	}

	if _, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID); err != nil {
		return nil, err
	}

	var settings *domainVendor.Settings

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		settings, err = uc.settingsRepo.FindByVendorIDForUpdate(txCtx, vendorID)
		if err != nil {
			if errors.Is(err, domainVendor.ErrSettingsNotFound) {
				return apperrors.NewNotFoundError("No settings for this vendor.")
			}
			return err
		}

		enabled := settings.ApplyPatch(patch)

		if err := uc.settingsRepo.Update(txCtx, settings); err != nil {
			return err
		}

		for _, scope := range enabled {
			if err := uc.membershipRepo.DeleteAllForScope(txCtx, vendorID, scope); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update settings", "vendor_id", vendorID, "error", err)
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	if err := uc.settingsCache.Invalidate(ctx, vendorID); err != nil {
		uc.logger.Warnw("failed to invalidate settings cache", "vendor_id", vendorID, "error", err)
	}

	uc.logger.Infow("vendor settings updated",
		"vendor_id", vendorID,
		"admin_id", adminID,
		"works_with_all_services", settings.WorksWithAllServices(),
		"works_with_all_language_pairs", settings.WorksWithAllLanguagePairs(),
		"works_with_all_specializations", settings.WorksWithAllSpecs(),
	)

	return toSettingsResponse(settings), nil
}
