package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// GetVendorUseCase serves tenant-scoped vendor reads.
type GetVendorUseCase struct {
	vendorRepo     domainVendor.Repository
	credentialRepo domainVendor.CredentialRepository
	contactRepo    domainVendor.ContactRepository
	logger         logger.Interface
}

func NewGetVendorUseCase(
	vendorRepo domainVendor.Repository,
	credentialRepo domainVendor.CredentialRepository,
	contactRepo domainVendor.ContactRepository,
	logger logger.Interface,
) *GetVendorUseCase {
	return &GetVendorUseCase{
		vendorRepo:     vendorRepo,
		credentialRepo: credentialRepo,
		contactRepo:    contactRepo,
		logger:         logger,
	}
}

// ExecuteByID returns a single vendor owned by the admin.
func (uc *GetVendorUseCase) ExecuteByID(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error) {
	vendorEntity, err := loadOwnedVendor(ctx, uc.vendorRepo, adminID, vendorID)
	if err != nil {
		return nil, err
	}

	credential, contact, err := uc.loadLinked(ctx, vendorEntity)
	if err != nil {
		return nil, err
	}

	return toVendorResponse(vendorEntity, credential, contact), nil
}

// ExecuteList returns every vendor of the admin, ascending by id.
func (uc *GetVendorUseCase) ExecuteList(ctx context.Context, adminID uint) ([]*dto.VendorResponse, error) {
	vendors, err := uc.vendorRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		uc.logger.Errorw("failed to list vendors", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	responses := make([]*dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		credential, contact, err := uc.loadLinked(ctx, v)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toVendorResponse(v, credential, contact))
	}

	return responses, nil
}

func (uc *GetVendorUseCase) loadLinked(ctx context.Context, v *domainVendor.Vendor) (*domainVendor.Credential, *domainVendor.PrimaryContact, error) {
	var credential *domainVendor.Credential
	if v.CredentialID() != 0 {
		c, err := uc.credentialRepo.FindByID(ctx, v.CredentialID())
		if err != nil && !errors.Is(err, domainVendor.ErrCredentialNotFound) {
			return nil, nil, fmt.Errorf("failed to load credential: %w", err)
		}
		credential = c
	}

	contact, err := uc.contactRepo.FindByVendorID(ctx, v.ID())
	if err != nil && !errors.Is(err, domainVendor.ErrContactNotFound) {
		return nil, nil, fmt.Errorf("failed to load contact: %w", err)
	}

	return credential, contact, nil
}
