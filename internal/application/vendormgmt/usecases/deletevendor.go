package usecases

import (
	"context"
	"fmt"

	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/cache"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// DeleteVendorUseCase removes the vendor and every dependent record
// (allow-lists, settings, contact, credential) in one unit of work.
type DeleteVendorUseCase struct {
	vendorRepo     domainVendor.Repository
	settingsRepo   domainVendor.SettingsRepository
	membershipRepo domainVendor.MembershipRepository
	credentialRepo domainVendor.CredentialRepository
	contactRepo    domainVendor.ContactRepository
	txManager      *db.TransactionManager
	settingsCache  cache.SettingsCache
	logger         logger.Interface
}

func NewDeleteVendorUseCase(
	vendorRepo domainVendor.Repository,
	settingsRepo domainVendor.SettingsRepository,
	membershipRepo domainVendor.MembershipRepository,
	credentialRepo domainVendor.CredentialRepository,
	contactRepo domainVendor.ContactRepository,
	txManager *db.TransactionManager,
	settingsCache cache.SettingsCache,
	logger logger.Interface,
) *DeleteVendorUseCase {
	return &DeleteVendorUseCase{
		vendorRepo:     vendorRepo,
		settingsRepo:   settingsRepo,
		membershipRepo: membershipRepo,
		credentialRepo: credentialRepo,
		contactRepo:    contactRepo,
		txManager:      txManager,
		settingsCache:  settingsCache,
		logger:         logger,
	}
}

func (uc *DeleteVendorUseCase) Execute(ctx context.Context, adminID, vendorID uint) error {
	uc.logger.Infow("executing delete vendor use case", "admin_id", adminID, "vendor_id", vendorID)

	vendorEntity, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID)
	if err != nil {
		return err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.membershipRepo.DeleteAllForVendor(txCtx, vendorID); err != nil {
			return err
		}
		if err := uc.settingsRepo.DeleteByVendorID(txCtx, vendorID); err != nil {
			return err
		}
		if err := uc.contactRepo.DeleteByVendorID(txCtx, vendorID); err != nil {
			return err
		}
		if vendorEntity.CredentialID() != 0 {
			if err := uc.credentialRepo.Delete(txCtx, vendorEntity.CredentialID()); err != nil {
				return err
			}
		}
		return uc.vendorRepo.Delete(txCtx, vendorID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete vendor", "vendor_id", vendorID, "error", err)
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	if err := uc.settingsCache.Invalidate(ctx, vendorID); err != nil {
		uc.logger.Warnw("failed to invalidate settings cache", "vendor_id", vendorID, "error", err)
	}

	uc.logger.Infow("vendor deleted successfully", "vendor_id", vendorID, "admin_id", adminID)

	return nil
}
