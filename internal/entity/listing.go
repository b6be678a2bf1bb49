package entity

import "time"

type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusSold     ListingStatus = "sold"
	ListingStatusArchived ListingStatus = "archived"
)

type Listing struct {
	ID        string        `json:"id"`
	AccountID string        `json:"account_id"`
	Title     string        `json:"title"`
	Price     float64       `json:"price"`
	Status    ListingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
