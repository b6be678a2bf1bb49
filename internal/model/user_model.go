package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserModel struct {
	ID                 string         `gorm:"type:uuid;primary_key" json:"id"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone              string         `gorm:"type:varchar(30)" json:"phone"`
	Username           string         `gorm:"uniqueIndex;not null" json:"username"`
	Password           string         `gorm:"not null" json:"-"`
	Role               string         `gorm:"type:varchar(20);default:'private'" json:"role"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	AccountID          string         `gorm:"type:uuid" json:"account_id"`
	MinistryProfile    datatypes.JSON `gorm:"type:jsonb" json:"ministry_profile,omitempty"`
	CoordinatorProfile datatypes.JSON `gorm:"type:jsonb" json:"coordinator_profile,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
