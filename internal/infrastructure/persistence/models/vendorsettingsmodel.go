package models

import (
	"time"
)

type VendorSettingsModel struct {
	ID                        uint `gorm:"primaryKey"`
	VendorID                  uint `gorm:"not null;uniqueIndex"`
	WorksWithAllServices      bool `gorm:"not null;default:false"`
	WorksWithAllLanguagePairs bool `gorm:"not null;default:false"`
	WorksWithAllSpecs         bool `gorm:"not null;default:false;column:works_with_all_specializations"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (VendorSettingsModel) TableName() string {
	return "vendor_settings"
}
