package entity

import "time"

type RequestType string

const (
	RequestTypeDealer      RequestType = "dealer"
	RequestTypeProvider    RequestType = "provider"
	RequestTypeMinistry    RequestType = "ministry"
	RequestTypeCoordinator RequestType = "coordinator"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

type RequestPriority string

const (
	PriorityHigh   RequestPriority = "high"
	PriorityMedium RequestPriority = "medium"
)

// RequestPayload holds the applicant-supplied details for every
// request type. Only the fields for the request's own type are set;
// per-type required fields are checked at intake.
type RequestPayload struct {
	// dealer
	BusinessName  string `json:"business_name,omitempty"`
	BusinessType  string `json:"business_type,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`

	// provider
	ServiceType     string `json:"service_type,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`

	// ministry
	MinistryName string `json:"ministry_name,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	EmployeeID   string `json:"employee_id,omitempty"`

	// coordinator
	StationName         string `json:"station_name,omitempty"`
	TransportExperience string `json:"transport_experience,omitempty"`
}

type RoleRequest struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	RequestType          RequestType     `json:"request_type"`
	Status               RequestStatus   `json:"status"`
	Payload              RequestPayload  `json:"payload"`
	Priority             RequestPriority `json:"priority"`
	AutoApprovalEligible bool            `json:"auto_approval_eligible"`
	ReviewerID           string          `json:"reviewer_id,omitempty"`
	ReviewNotes          string          `json:"review_notes,omitempty"`
	ReviewedAt           *time.Time      `json:"reviewed_at,omitempty"`
	AssociatedEntityID   string          `json:"associated_entity_id,omitempty"`
	ProvisioningError    string          `json:"provisioning_error,omitempty"`
	Documents            []string        `json:"documents,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// RequestEvent records one status transition of a role request.
type RequestEvent struct {
	ID         string        `json:"id"`
	RequestID  string        `json:"request_id"`
	FromStatus RequestStatus `json:"from_status"`
	ToStatus   RequestStatus `json:"to_status"`
	ActorID    string        `json:"actor_id"`
	Note       string        `json:"note,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
