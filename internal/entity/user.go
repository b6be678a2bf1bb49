package entity

import "time"

type UserRole string

const (
	RolePrivate     UserRole = "private"
	RoleDealer      UserRole = "dealer"
	RoleProvider    UserRole = "provider"
	RoleMinistry    UserRole = "ministry"
	RoleCoordinator UserRole = "coordinator"
	RoleAdmin       UserRole = "admin"
)

type MinistryProfile struct {
	MinistryName string `json:"ministry_name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	EmployeeID   string `json:"employee_id"`
}

type CoordinatorProfile struct {
	IsCoordinator bool     `json:"is_coordinator"`
	Stations      []string `json:"stations"`
}

type User struct {
	ID                 string              `json:"id"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Username           string              `json:"username"`
	Password           string              `json:"-"`
	Role               UserRole            `json:"role"`
	IsActive           bool                `json:"is_active"`
	AccountID          string              `json:"account_id,omitempty"`
	MinistryProfile    *MinistryProfile    `json:"ministry_profile,omitempty"`
	CoordinatorProfile *CoordinatorProfile `json:"coordinator_profile,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}
