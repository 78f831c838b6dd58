package mappers

import (
	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
)

type SettingsMapper interface {
	ToEntity(model *models.VendorSettingsModel) *vendors.Settings
	ToModel(entity *vendors.Settings) *models.VendorSettingsModel
}

type settingsMapper struct{}

func NewSettingsMapper() SettingsMapper {
	return &settingsMapper{}
}

func (m *settingsMapper) ToEntity(model *models.VendorSettingsModel) *vendors.Settings {
	if model == nil {
		return nil
	}

	return vendors.ReconstructSettings(
		model.ID,
		model.VendorID,
		model.WorksWithAllServices,
		model.WorksWithAllLanguagePairs,
		model.WorksWithAllSpecs,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *settingsMapper) ToModel(entity *vendors.Settings) *models.VendorSettingsModel {
	if entity == nil {
		return nil
	}

	return &models.VendorSettingsModel{
		ID:                        entity.ID(),
		VendorID:                  entity.VendorID(),
		WorksWithAllServices:      entity.WorksWithAllServices(),
		WorksWithAllLanguagePairs: entity.WorksWithAllLanguagePairs(),
		WorksWithAllSpecs:         entity.WorksWithAllSpecs(),
		CreatedAt:                 entity.CreatedAt(),
		UpdatedAt:                 entity.UpdatedAt(),
	}
}
