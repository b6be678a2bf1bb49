package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListingModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	AccountID string         `gorm:"type:uuid;not null;index" json:"account_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Price     float64        `gorm:"not null;default:0" json:"price"`
	Status    string         `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ListingModel) TableName() string {
	return "listings"
}

func (l *ListingModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
