package models

import (
	"time"
)

type PrimaryContactModel struct {
	ID        uint   `gorm:"primaryKey"`
	VendorID  uint   `gorm:"not null;uniqueIndex"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PrimaryContactModel) TableName() string {
	return "vendor_primary_contacts"
}
