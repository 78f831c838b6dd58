package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// MembershipUseCase manages the per-scope allow-lists. Adds are refused
// while the scope's "works with all" flag is on: the allow-list is dead
// weight then and would silently vanish on the next flag flip.
type MembershipUseCase struct {
	vendorRepo     domainVendor.Repository
	settingsRepo   domainVendor.SettingsRepository
	membershipRepo domainVendor.MembershipRepository
	logger         logger.Interface
}

func NewMembershipUseCase(
	vendorRepo domainVendor.Repository,
	settingsRepo domainVendor.SettingsRepository,
	membershipRepo domainVendor.MembershipRepository,
	logger logger.Interface,
) *MembershipUseCase {
	return &MembershipUseCase{
		vendorRepo:     vendorRepo,
		settingsRepo:   settingsRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// Add inserts allow-list entries for the scope, skipping duplicates.
func (uc *MembershipUseCase) Add(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, request dto.AddMembershipRequest) error {
	if len(request.IDs) == 0 {
		return apperrors.NewValidationError("ids are required")
	}

	if _, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID); err != nil {
		return err
	}

	settings, err := uc.settingsRepo.FindByVendorID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, domainVendor.ErrSettingsNotFound) {
			return apperrors.NewNotFoundError("No settings for this vendor.")
		}
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.WorksWithAll(scope) {
		return apperrors.NewValidationError(
			fmt.Sprintf("vendor works with all %s, disable the flag before managing the allow-list", scope))
	}

	if err := uc.membershipRepo.Add(ctx, vendorID, scope, request.IDs); err != nil {
		uc.logger.Errorw("failed to add membership entries",
			"vendor_id", vendorID, "scope", scope, "error", err)
		return fmt.Errorf("failed to add membership entries: %w", err)
	}

	uc.logger.Infow("membership entries added",
		"vendor_id", vendorID, "scope", scope, "count", len(request.IDs))

	return nil
}

// List returns the allow-list entries for the scope.
func (uc *MembershipUseCase) List(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType) ([]dto.MembershipEntryResponse, error) {
	if _, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID); err != nil {
		return nil, err
	}

	entries, err := uc.membershipRepo.List(ctx, vendorID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list membership entries: %w", err)
	}

	responses := make([]dto.MembershipEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.MembershipEntryResponse{
			EntityID:  entry.EntityID,
			CreatedAt: entry.CreatedAt,
		})
	}

	return responses, nil
}

// Remove deletes one allow-list entry.
func (uc *MembershipUseCase) Remove(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, entityID uint) error {
	if _, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID); err != nil {
		return err
	}

	if err := uc.membershipRepo.Remove(ctx, vendorID, scope, entityID); err != nil {
		if errors.Is(err, domainVendor.ErrMembershipEntryNotFound) {
			return apperrors.NewNotFoundError("Membership entry not found")
		}
		return fmt.Errorf("failed to remove membership entry: %w", err)
	}

	uc.logger.Infow("membership entry removed",
		"vendor_id", vendorID, "scope", scope, "entity_id", entityID)

	return nil
}
