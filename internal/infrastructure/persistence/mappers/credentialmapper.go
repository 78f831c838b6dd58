package mappers

import (
	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
)

type CredentialMapper interface {
	ToEntity(model *models.CredentialModel) *vendors.Credential
	ToModel(entity *vendors.Credential) *models.CredentialModel
}

type credentialMapper struct{}

func NewCredentialMapper() CredentialMapper {
	return &credentialMapper{}
}

func (m *credentialMapper) ToEntity(model *models.CredentialModel) *vendors.Credential {
	if model == nil {
		return nil
	}

	return vendors.ReconstructCredential(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.ActivationToken,
		model.ActivatedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *credentialMapper) ToModel(entity *vendors.Credential) *models.CredentialModel {
	if entity == nil {
		return nil
	}

	return &models.CredentialModel{
		ID:              entity.ID(),
		Email:           entity.Email(),
		PasswordHash:    entity.PasswordHash(),
		ActivationToken: entity.ActivationToken(),
		ActivatedAt:     entity.ActivatedAt(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}
