package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AccountModel struct {
	ID                    string         `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID               string         `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	Type                  string         `gorm:"type:varchar(20);not null" json:"type"`
	BusinessName          string         `gorm:"type:varchar(255);not null" json:"business_name"`
	BusinessType          string         `gorm:"type:varchar(100)" json:"business_type"`
	ServiceType           string         `gorm:"type:varchar(100)" json:"service_type"`
	LicenseNumber         string         `gorm:"type:varchar(100)" json:"license_number"`
	Status                string         `gorm:"type:varchar(20);default:'active'" json:"status"`
	Verification          string         `gorm:"type:varchar(20);default:'pending'" json:"verification"`
	SubscriptionTier      string         `gorm:"type:varchar(20);default:'basic'" json:"subscription_tier"`
	SubscriptionStatus    string         `gorm:"type:varchar(20);default:'active'" json:"subscription_status"`
	SubscriptionExpiresAt *time.Time     `json:"subscription_expires_at"`
	Features              datatypes.JSON `gorm:"type:jsonb" json:"features"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func (a *AccountModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
