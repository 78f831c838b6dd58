package migration

import (
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the schema carries.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.VendorModel{},
		&models.VendorSettingsModel{},
		&models.VendorServiceModel{},
		&models.VendorLanguagePairModel{},
		&models.VendorSpecializationModel{},
		&models.CredentialModel{},
		&models.PrimaryContactModel{},
		&models.ServiceModel{},
		&models.LanguagePairModel{},
		&models.SpecializationModel{},
	}
}
