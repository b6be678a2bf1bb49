package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoleRequestModel rows are append-then-update only; requests are
// never deleted, so there is no DeletedAt.
type RoleRequestModel struct {
	ID                   string         `gorm:"type:uuid;primary_key" json:"id"`
	UserID               string         `gorm:"type:uuid;not null;index" json:"user_id"`
	RequestType          string         `gorm:"type:varchar(20);not null;index" json:"request_type"`
	Status               string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Payload              datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	Priority             string         `gorm:"type:varchar(10);not null" json:"priority"`
	AutoApprovalEligible bool           `gorm:"default:false" json:"auto_approval_eligible"`
	ReviewerID           string         `gorm:"type:uuid" json:"reviewer_id"`
	ReviewNotes          string         `gorm:"type:text" json:"review_notes"`
	ReviewedAt           *time.Time     `json:"reviewed_at"`
	AssociatedEntityID   string         `gorm:"type:uuid" json:"associated_entity_id"`
	ProvisioningError    string         `gorm:"type:text" json:"provisioning_error"`
	Documents            datatypes.JSON `gorm:"type:jsonb" json:"documents"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func (RoleRequestModel) TableName() string {
	return "role_requests"
}

func (r *RoleRequestModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type RequestEventModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	RequestID  string    `gorm:"type:uuid;not null;index" json:"request_id"`
	FromStatus string    `gorm:"type:varchar(20)" json:"from_status"`
	ToStatus   string    `gorm:"type:varchar(20);not null" json:"to_status"`
	ActorID    string    `gorm:"type:uuid" json:"actor_id"`
	Note       string    `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

func (RequestEventModel) TableName() string {
	return "request_events"
}

func (e *RequestEventModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
