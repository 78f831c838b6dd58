package mappers

import (
	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
)

type ContactMapper interface {
	ToEntity(model *models.PrimaryContactModel) *vendors.PrimaryContact
	ToModel(entity *vendors.PrimaryContact) *models.PrimaryContactModel
}

type contactMapper struct{}

func NewContactMapper() ContactMapper {
	return &contactMapper{}
}

func (m *contactMapper) ToEntity(model *models.PrimaryContactModel) *vendors.PrimaryContact {
	if model == nil {
		return nil
	}

	return vendors.ReconstructPrimaryContact(
		model.ID,
		model.VendorID,
		model.FirstName,
		model.LastName,
		model.Email,
		model.Phone,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *contactMapper) ToModel(entity *vendors.PrimaryContact) *models.PrimaryContactModel {
	if entity == nil {
		return nil
	}

	return &models.PrimaryContactModel{
		ID:        entity.ID(),
		VendorID:  entity.VendorID(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
