package models

import (
	"time"
)

type CredentialModel struct {
	ID              uint   `gorm:"primaryKey"`
	Email           string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash    string `gorm:"size:255"`
	ActivationToken string `gorm:"size:64;index"`
	ActivatedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (CredentialModel) TableName() string {
	return "vendor_credentials"
}
