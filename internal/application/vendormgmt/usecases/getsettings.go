package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/cache"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// GetSettingsUseCase reads a vendor's scope flags through the cache.
type GetSettingsUseCase struct {
	vendorRepo    domainVendor.Repository
	settingsRepo  domainVendor.SettingsRepository
	settingsCache cache.SettingsCache
	logger        logger.Interface
}

func NewGetSettingsUseCase(
	vendorRepo domainVendor.Repository,
	settingsRepo domainVendor.SettingsRepository,
	settingsCache cache.SettingsCache,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		vendorRepo:    vendorRepo,
		settingsRepo:  settingsRepo,
		settingsCache: settingsCache,
		logger:        logger,
	}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context, adminID, vendorID uint) (*dto.SettingsResponse, error) {
	if _, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID); err != nil {
		return nil, err
	}

	cached, err := uc.settingsCache.Get(ctx, vendorID)
	if err != nil {
		// Cache trouble degrades to a DB read
		uc.logger.Warnw("failed to read settings cache", "vendor_id", vendorID, "error", err)
	}
	if cached != nil {
		return &dto.SettingsResponse{
			VendorID:                    vendorID,
			WorksWithAllServices:        cached.WorksWithAllServices,
			WorksWithAllLanguagePairs:   cached.WorksWithAllLanguagePairs,
			WorksWithAllSpecializations: cached.WorksWithAllSpecializations,
		}, nil
	}

	settings, err := uc.settingsRepo.FindByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainVendor.ErrSettingsNotFound) {
			return nil, apperrors.NewNotFoundError("No settings for this vendor.")
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := uc.settingsCache.Set(ctx, vendorID, &cache.CachedSettings{
		WorksWithAllServices:        settings.WorksWithAllServices(),
		WorksWithAllLanguagePairs:   settings.WorksWithAllLanguagePairs(),
		WorksWithAllSpecializations: settings.WorksWithAllSpecs(),
	}); err != nil {
		uc.logger.Warnw("failed to populate settings cache", "vendor_id", vendorID, "error", err)
	}

	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *domainVendor.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		VendorID:                    s.VendorID(),
		WorksWithAllServices:        s.WorksWithAllServices(),
		WorksWithAllLanguagePairs:   s.WorksWithAllLanguagePairs(),
		WorksWithAllSpecializations: s.WorksWithAllSpecs(),
	}
}
