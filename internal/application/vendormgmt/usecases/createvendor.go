package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/id"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// CreateVendorUseCase creates the vendor together with its credential,
// default settings and optional primary contact in one unit of work.
type CreateVendorUseCase struct {
	vendorRepo     domainVendor.Repository
	settingsRepo   domainVendor.SettingsRepository
	credentialRepo domainVendor.CredentialRepository
	contactRepo    domainVendor.ContactRepository
	txManager      *db.TransactionManager
	emailSender    ActivationEmailSender // Optional, can be nil
	baseURL        string
	logger         logger.Interface
}

func NewCreateVendorUseCase(
	vendorRepo domainVendor.Repository,
	settingsRepo domainVendor.SettingsRepository,
	credentialRepo domainVendor.CredentialRepository,
	contactRepo domainVendor.ContactRepository,
	txManager *db.TransactionManager,
	baseURL string,
	logger logger.Interface,
) *CreateVendorUseCase {
	return &CreateVendorUseCase{
		vendorRepo:     vendorRepo,
		settingsRepo:   settingsRepo,
		credentialRepo: credentialRepo,
		contactRepo:    contactRepo,
		txManager:      txManager,
		baseURL:        baseURL,
		logger:         logger,
	}
}

// SetEmailSender sets the activation mail sender (optional dependency).
func (uc *CreateVendorUseCase) SetEmailSender(sender ActivationEmailSender) {
	uc.emailSender = sender
}

func (uc *CreateVendorUseCase) Execute(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	uc.logger.Infow("executing create vendor use case", "admin_id", adminID, "email", request.Email)

	credential, err := domainVendor.NewCredential(request.Email)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid email", err.Error())
	}

	vendorEntity, err := domainVendor.NewVendor(
		adminID,
		domainVendor.Type(request.VendorType),
		request.CompanyName,
		request.LegalEntity,
		request.Country,
	)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid vendor", err.Error())
	}

	var activationToken string
	if request.CanLogin {
		activationToken, err = id.NewActivationToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate activation token: %w", err)
		}
		credential.IssueActivationToken(activationToken)
		vendorEntity.EnableLogin()
	}

	var contact *domainVendor.PrimaryContact

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.credentialRepo.Create(txCtx, credential); err != nil {
			return err
		}

		vendorEntity.AttachCredential(credential.ID())
		if err := uc.vendorRepo.Create(txCtx, vendorEntity); err != nil {
			return err
		}

		if err := uc.settingsRepo.Create(txCtx, domainVendor.NewSettings(vendorEntity.ID())); err != nil {
			return err
		}

		if request.Contact != nil {
			contact = domainVendor.NewPrimaryContact(
				vendorEntity.ID(),
				stringValue(request.Contact.FirstName),
				stringValue(request.Contact.LastName),
				stringValue(request.Contact.Email),
				stringValue(request.Contact.Phone),
			)
			if err := uc.contactRepo.Create(txCtx, contact); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainVendor.ErrDuplicateEmail) {
			uc.logger.Warnw("vendor email already registered", "email", request.Email)
			return nil, apperrors.NewValidationError("email already registered")
		}
		uc.logger.Errorw("failed to create vendor", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	response := toVendorResponse(vendorEntity, credential, contact)

	if activationToken != "" {
		response.ActivationLink = fmt.Sprintf("%s/portal/activate?token=%s", uc.baseURL, activationToken)

		if uc.emailSender != nil {
			// Mail failure must not fail the create
			if err := uc.emailSender.SendActivationEmail(credential.Email(), activationToken); err != nil {
				uc.logger.Warnw("failed to send activation email",
					"vendor_id", vendorEntity.ID(), "email", credential.Email(), "error", err)
			}
		}
	}

	uc.logger.Infow("vendor created successfully", "vendor_id", vendorEntity.ID(), "admin_id", adminID)

	return response, nil
}

// ValidateRequest validates the create vendor request
func (uc *CreateVendorUseCase) ValidateRequest(request dto.CreateVendorRequest) error {
	if request.Email == "" {
		return apperrors.NewValidationError("email is required")
	}
	if request.VendorType == "" {
		return apperrors.NewValidationError("vendor type is required")
	}
	if !domainVendor.Type(request.VendorType).IsValid() {
		return apperrors.NewValidationError("invalid vendor type", request.VendorType)
	}
	if domainVendor.Type(request.VendorType) == domainVendor.TypeCompany && request.CompanyName == "" {
		return apperrors.NewValidationError("company name is required for company vendors")
	}
	return nil
}

// toVendorResponse builds the API view. credential and contact may be nil.
func toVendorResponse(v *domainVendor.Vendor, credential *domainVendor.Credential, contact *domainVendor.PrimaryContact) *dto.VendorResponse {
	response := &dto.VendorResponse{
		ID:               v.ID(),
		VendorType:       string(v.VendorType()),
		CompanyName:      v.CompanyName(),
		LegalEntity:      v.LegalEntity(),
		Country:          v.Country(),
		CanLogin:         v.CanLogin(),
		AssignableToJobs: v.AssignableToJobs(),
		FinancesVisible:  v.FinancesVisible(),
		CreatedAt:        v.CreatedAt(),
		UpdatedAt:        v.UpdatedAt(),
	}

	if credential != nil {
		response.Email = credential.Email()
	}

	if contact != nil {
		response.Contact = &dto.ContactResponse{
			FirstName: contact.FirstName(),
			LastName:  contact.LastName(),
			Email:     contact.Email(),
			Phone:     contact.Phone(),
		}
	}

	return response
}
