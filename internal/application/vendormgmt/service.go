// Package vendormgmt is the application service orchestrating the vendor use
// cases behind a single facade consumed by the HTTP layer.
package vendormgmt

import (
	"context"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/usecases"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/cache"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

// Service aggregates the vendor use cases.
type Service struct {
	createVendorUC   *usecases.CreateVendorUseCase
	updateVendorUC   *usecases.UpdateVendorUseCase
	getVendorUC      *usecases.GetVendorUseCase
	deleteVendorUC   *usecases.DeleteVendorUseCase
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
	membershipUC     *usecases.MembershipUseCase
	activateVendorUC *usecases.ActivateVendorUseCase
	logger           logger.Interface
}

// NewService wires the use cases with their repositories.
func NewService(
	vendorRepo domainVendor.Repository,
	settingsRepo domainVendor.SettingsRepository,
	membershipRepo domainVendor.MembershipRepository,
	credentialRepo domainVendor.CredentialRepository,
	contactRepo domainVendor.ContactRepository,
	txManager *db.TransactionManager,
	settingsCache cache.SettingsCache,
	hasher usecases.PasswordHasher,
	baseURL string,
	logger logger.Interface,
) *Service {
	return &Service{
		createVendorUC:   usecases.NewCreateVendorUseCase(vendorRepo, settingsRepo, credentialRepo, contactRepo, txManager, baseURL, logger),
		updateVendorUC:   usecases.NewUpdateVendorUseCase(vendorRepo, credentialRepo, contactRepo, txManager, logger),
		getVendorUC:      usecases.NewGetVendorUseCase(vendorRepo, credentialRepo, contactRepo, logger),
		deleteVendorUC:   usecases.NewDeleteVendorUseCase(vendorRepo, settingsRepo, membershipRepo, credentialRepo, contactRepo, txManager, settingsCache, logger),
		getSettingsUC:    usecases.NewGetSettingsUseCase(vendorRepo, settingsRepo, settingsCache, logger),
		updateSettingsUC: usecases.NewUpdateSettingsUseCase(vendorRepo, settingsRepo, membershipRepo, txManager, settingsCache, logger),
		membershipUC:     usecases.NewMembershipUseCase(vendorRepo, settingsRepo, membershipRepo, logger),
		activateVendorUC: usecases.NewActivateVendorUseCase(credentialRepo, hasher, logger),
		logger:           logger,
	}
}

// SetEmailSender attaches the activation mail sender (optional).
func (s *Service) SetEmailSender(sender usecases.ActivationEmailSender) {
	s.createVendorUC.SetEmailSender(sender)
}

// CreateVendor creates a vendor in the admin's tenant.
func (s *Service) CreateVendor(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if err := s.createVendorUC.ValidateRequest(request); err != nil {
		return nil, err
	}
	return s.createVendorUC.Execute(ctx, adminID, request)
}

// UpdateVendor merges a partial update into the vendor.
func (s *Service) UpdateVendor(ctx context.Context, adminID, vendorID uint, request dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	return s.updateVendorUC.Execute(ctx, adminID, vendorID, request)
}

// GetVendor returns one vendor owned by the admin.
func (s *Service) GetVendor(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error) {
	return s.getVendorUC.ExecuteByID(ctx, adminID, vendorID)
}

// ListVendors returns the admin's vendors ascending by id.
func (s *Service) ListVendors(ctx context.Context, adminID uint) ([]*dto.VendorResponse, error) {
	return s.getVendorUC.ExecuteList(ctx, adminID)
}

// DeleteVendor removes the vendor and all dependent records.
func (s *Service) DeleteVendor(ctx context.Context, adminID, vendorID uint) error {
	return s.deleteVendorUC.Execute(ctx, adminID, vendorID)
}

// GetSettings returns the vendor's scope flags.
func (s *Service) GetSettings(ctx context.Context, adminID, vendorID uint) (*dto.SettingsResponse, error) {
	return s.getSettingsUC.Execute(ctx, adminID, vendorID)
}

// UpdateSettings applies a partial flag patch atomically.
func (s *Service) UpdateSettings(ctx context.Context, adminID, vendorID uint, request dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	return s.updateSettingsUC.Execute(ctx, adminID, vendorID, request)
}

// AddMembership adds allow-list entries for a scope.
func (s *Service) AddMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, request dto.AddMembershipRequest) error {
	return s.membershipUC.Add(ctx, adminID, vendorID, scope, request)
}

// ListMembership lists the allow-list entries for a scope.
func (s *Service) ListMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType) ([]dto.MembershipEntryResponse, error) {
	return s.membershipUC.List(ctx, adminID, vendorID, scope)
}

// RemoveMembership deletes one allow-list entry.
func (s *Service) RemoveMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, entityID uint) error {
	return s.membershipUC.Remove(ctx, adminID, vendorID, scope, entityID)
}

// ActivateVendor consumes an activation token and sets the password.
func (s *Service) ActivateVendor(ctx context.Context, request dto.ActivateVendorRequest) error {
	return s.activateVendorUC.Execute(ctx, request)
}
