package mappers

import (
	"fmt"

	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
)

type VendorMapper interface {
	ToEntity(model *models.VendorModel) (*vendors.Vendor, error)
	ToModel(entity *vendors.Vendor) *models.VendorModel
	ToEntities(modelList []*models.VendorModel) ([]*vendors.Vendor, error)
}

type vendorMapper struct{}

func NewVendorMapper() VendorMapper {
	return &vendorMapper{}
}

func (m *vendorMapper) ToEntity(model *models.VendorModel) (*vendors.Vendor, error) {
	if model == nil {
		return nil, nil
	}

	vendorType := vendors.Type(model.Type)
	if !vendorType.IsValid() {
		return nil, fmt.Errorf("invalid vendor type in storage: %s", model.Type)
	}

	return vendors.ReconstructVendor(
		model.ID,
		model.AdminID,
		model.CredentialID,
		vendorType,
		model.CompanyName,
		model.LegalEntity,
		model.Country,
		model.CanLogin,
		model.AssignableToJobs,
		model.FinancesVisible,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *vendorMapper) ToModel(entity *vendors.Vendor) *models.VendorModel {
	if entity == nil {
		return nil
	}

	return &models.VendorModel{
		ID:               entity.ID(),
		AdminID:          entity.AdminID(),
		CredentialID:     entity.CredentialID(),
		Type:             string(entity.VendorType()),
		CompanyName:      entity.CompanyName(),
		LegalEntity:      entity.LegalEntity(),
		Country:          entity.Country(),
		CanLogin:         entity.CanLogin(),
		AssignableToJobs: entity.AssignableToJobs(),
		FinancesVisible:  entity.FinancesVisible(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *vendorMapper) ToEntities(modelList []*models.VendorModel) ([]*vendors.Vendor, error) {
	entities := make([]*vendors.Vendor, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
