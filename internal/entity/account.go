package entity

import "time"

type AccountType string

const (
	AccountTypeDealer   AccountType = "dealer"
	AccountTypeProvider AccountType = "provider"
)

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
	AccountStatusInactive  AccountStatus = "inactive"
)

type VerificationStatus string

const (
	VerificationVerified VerificationStatus = "verified"
	VerificationPending  VerificationStatus = "pending"
	VerificationRejected VerificationStatus = "rejected"
)

type SubscriptionTier string

const (
	TierBasic    SubscriptionTier = "basic"
	TierStandard SubscriptionTier = "standard"
	TierPremium  SubscriptionTier = "premium"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// SubscriptionFeatures is always derived from the tier table, never
// set field by field.
type SubscriptionFeatures struct {
	MaxListings      int  `json:"max_listings"`
	AllowPhotography bool `json:"allow_photography"`
	AllowReviews     bool `json:"allow_reviews"`
	AllowPodcasts    bool `json:"allow_podcasts"`
	AllowVideos      bool `json:"allow_videos"`
}

type Subscription struct {
	Tier      SubscriptionTier     `json:"tier"`
	Status    SubscriptionStatus   `json:"status"`
	ExpiresAt *time.Time           `json:"expires_at,omitempty"`
	Features  SubscriptionFeatures `json:"features"`
}

// Account is the privileged marketplace account provisioned for an
// approved dealer or provider.
type Account struct {
	ID            string             `json:"id"`
	OwnerID       string             `json:"owner_id"`
	Type          AccountType        `json:"type"`
	BusinessName  string             `json:"business_name"`
	BusinessType  string             `json:"business_type,omitempty"`
	ServiceType   string             `json:"service_type,omitempty"`
	LicenseNumber string             `json:"license_number,omitempty"`
	Status        AccountStatus      `json:"status"`
	Verification  VerificationStatus `json:"verification"`
	Subscription  Subscription       `json:"subscription"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
