package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// UpdateVendorUseCase merges a whitelisted patch into the vendor, its
// credential email and its primary contact.
type UpdateVendorUseCase struct {
	vendorRepo     domainVendor.Repository
	credentialRepo domainVendor.CredentialRepository
	contactRepo    domainVendor.ContactRepository
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewUpdateVendorUseCase(
	vendorRepo domainVendor.Repository,
	credentialRepo domainVendor.CredentialRepository,
	contactRepo domainVendor.ContactRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *UpdateVendorUseCase {
	return &UpdateVendorUseCase{
		vendorRepo:     vendorRepo,
		credentialRepo: credentialRepo,
		contactRepo:    contactRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *UpdateVendorUseCase) Execute(ctx context.Context, adminID, vendorID uint, request dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	uc.logger.Infow("executing update vendor use case", "admin_id", adminID, "vendor_id", vendorID)

	vendorEntity, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID)
	if err != nil {
		return nil, err
	}

	patch := domainVendor.Patch{
		CompanyName:      request.CompanyName,
		LegalEntity:      request.LegalEntity,
		Country:          request.Country,
		CanLogin:         request.CanLogin,
		AssignableToJobs: request.AssignableToJobs,
		FinancesVisible:  request.FinancesVisible,
	}
	if request.VendorType != nil {
		vendorType := domainVendor.Type(*request.VendorType)
		patch.VendorType = &vendorType
	}

	if err := vendorEntity.ApplyPatch(patch); err != nil {
		return nil, apperrors.NewValidationError("invalid vendor update", err.Error())
	}

	var credential *domainVendor.Credential
	var contact *domainVendor.PrimaryContact

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.vendorRepo.Update(txCtx, vendorEntity); err != nil {
			return err
		}

		credential, err = uc.loadCredential(txCtx, vendorEntity)
		if err != nil {
			return err
		}

		if request.Email != nil && credential != nil {
			if err := credential.ChangeEmail(*request.Email); err != nil {
				return apperrors.NewValidationError("invalid email", err.Error())
			}
			if err := uc.credentialRepo.Update(txCtx, credential); err != nil {
				return err
			}
		}

		contact, err = uc.upsertContact(txCtx, vendorID, request.Contact)
		return err
	})
	if err != nil {
		if errors.Is(err, domainVendor.ErrDuplicateEmail) {
			return nil, apperrors.NewValidationError("email already registered")
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update vendor", "vendor_id", vendorID, "error", err)
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	uc.logger.Infow("vendor updated successfully", "vendor_id", vendorID)

	return toVendorResponse(vendorEntity, credential, contact), nil
}

func (uc *UpdateVendorUseCase) loadCredential(ctx context.Context, v *domainVendor.Vendor) (*domainVendor.Credential, error) {
	if v.CredentialID() == 0 {
		return nil, nil
	}
	credential, err := uc.credentialRepo.FindByID(ctx, v.CredentialID())
	if err != nil {
		if errors.Is(err, domainVendor.ErrCredentialNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return credential, nil
}

// upsertContact creates the contact row on first write and patches it
// afterwards. A nil request leaves the stored contact untouched.
func (uc *UpdateVendorUseCase) upsertContact(ctx context.Context, vendorID uint, request *dto.ContactRequest) (*domainVendor.PrimaryContact, error) {
	contact, err := uc.contactRepo.FindByVendorID(ctx, vendorID)
	if err != nil && !errors.Is(err, domainVendor.ErrContactNotFound) {
		return nil, err
	}

	if request == nil {
		return contact, nil
	}

	if contact == nil {
		contact = domainVendor.NewPrimaryContact(vendorID,
			stringValue(request.FirstName),
			stringValue(request.LastName),
			stringValue(request.Email),
			stringValue(request.Phone),
		)
		if err := uc.contactRepo.Create(ctx, contact); err != nil {
			return nil, err
		}
		return contact, nil
	}

	contact.ApplyPatch(domainVendor.ContactPatch{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	})
	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}
