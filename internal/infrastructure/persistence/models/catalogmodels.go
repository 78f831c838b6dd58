package models

import (
	"time"
)

type ServiceModel struct {
	ID        uint   `gorm:"primaryKey"`
	AdminID   uint   `gorm:"not null;uniqueIndex:idx_admin_service_title"`
	Title     string `gorm:"size:255;not null;uniqueIndex:idx_admin_service_title"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ServiceModel) TableName() string {
	return "services"
}

type LanguagePairModel struct {
	ID        uint   `gorm:"primaryKey"`
	AdminID   uint   `gorm:"not null;uniqueIndex:idx_admin_language_pair"`
	Source    string `gorm:"size:16;not null;uniqueIndex:idx_admin_language_pair"`
	Target    string `gorm:"size:16;not null;uniqueIndex:idx_admin_language_pair"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LanguagePairModel) TableName() string {
	return "language_pairs"
}

type SpecializationModel struct {
	ID        uint   `gorm:"primaryKey"`
	AdminID   uint   `gorm:"not null;uniqueIndex:idx_admin_specialization_title"`
	Title     string `gorm:"size:255;not null;uniqueIndex:idx_admin_specialization_title"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SpecializationModel) TableName() string {
	return "specializations"
}
