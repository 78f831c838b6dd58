package models

import (
	"time"
)

// The three allow-list tables share the same shape: one row per
// (vendor, entity), composite-unique.

type VendorServiceModel struct {
	ID        uint `gorm:"primaryKey"`
	VendorID  uint `gorm:"not null;uniqueIndex:idx_vendor_service"`
	ServiceID uint `gorm:"not null;uniqueIndex:idx_vendor_service"`
	CreatedAt time.Time
}

func (VendorServiceModel) TableName() string {
	return "vendor_services"
}

type VendorLanguagePairModel struct {
	ID             uint `gorm:"primaryKey"`
	VendorID       uint `gorm:"not null;uniqueIndex:idx_vendor_language_pair"`
	LanguagePairID uint `gorm:"not null;uniqueIndex:idx_vendor_language_pair"`
	CreatedAt      time.Time
}

func (VendorLanguagePairModel) TableName() string {
	return "vendor_language_pairs"
}

type VendorSpecializationModel struct {
	ID               uint `gorm:"primaryKey"`
	VendorID         uint `gorm:"not null;uniqueIndex:idx_vendor_specialization"`
	SpecializationID uint `gorm:"not null;uniqueIndex:idx_vendor_specialization"`
	CreatedAt        time.Time
}

func (VendorSpecializationModel) TableName() string {
	return "vendor_specializations"
}
