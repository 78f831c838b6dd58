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

// ActivateVendorUseCase completes the activation flow: the vendor follows
// the emailed link, sets a password, and the token is consumed.
type ActivateVendorUseCase struct {
	credentialRepo domainVendor.CredentialRepository
	hasher         PasswordHasher
	logger         logger.Interface
}

func NewActivateVendorUseCase(
	credentialRepo domainVendor.CredentialRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *ActivateVendorUseCase {
	return &ActivateVendorUseCase{
		credentialRepo: credentialRepo,
		hasher:         hasher,
		logger:         logger,
	}
}

func (uc *ActivateVendorUseCase) Execute(ctx context.Context, request dto.ActivateVendorRequest) error {
	if request.Token == "" {
		return apperrors.NewValidationError("token is required")
	}
	if len(request.Password) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}

	credential, err := uc.credentialRepo.FindByActivationToken(ctx, request.Token)
	if err != nil {
		if errors.Is(err, domainVendor.ErrCredentialNotFound) {
			return apperrors.NewNotFoundError("Invalid or expired activation token")
		}
		return fmt.Errorf("failed to look up activation token: %w", err)
	}

	hash, err := uc.hasher.Hash(request.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := credential.Activate(hash); err != nil {
		return apperrors.NewValidationError("account already activated")
	}

	if err := uc.credentialRepo.Update(ctx, credential); err != nil {
		uc.logger.Errorw("failed to persist activation", "credential_id", credential.ID(), "error", err)
		return fmt.Errorf("failed to activate account: %w", err)
	}

	uc.logger.Infow("vendor account activated", "credential_id", credential.ID())

	return nil
}
