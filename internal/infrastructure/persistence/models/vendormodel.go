package models

import (
	"time"
)

type VendorModel struct {
	ID               uint   `gorm:"primaryKey"`
	AdminID          uint   `gorm:"not null;index"`
	CredentialID     uint   `gorm:"not null;index"`
	Type             string `gorm:"size:50;not null;default:'freelancer'"`
	CompanyName      string `gorm:"size:255"`
	LegalEntity      string `gorm:"size:255"`
	Country          string `gorm:"size:100"`
	CanLogin         bool   `gorm:"not null;default:false"`
	AssignableToJobs bool   `gorm:"not null;default:true"`
	FinancesVisible  bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (VendorModel) TableName() string {
	return "vendors"
}
