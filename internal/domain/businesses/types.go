package businesses

import (
	"context"
	"errors"
	"time"
)

var ErrBusinessNotFound = errors.New("business not found")

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// ParseStatus accepts the moderation states a caller may filter on.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved:
		return st, true
	default:
		return "", false
	}
}

// Business is a directory entry. AverageRating and ReviewCount are derived
// from its reviews on every read.
type Business struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Website     string   `json:"website"`
	Hours       string   `json:"hours"`
	Image       string   `json:"image"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Status      Status   `json:"status"`

	CreatedAt time.Time `json:"created_at"`

	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// IsPublic reports whether the business may be shown to unauthenticated callers.
func (b *Business) IsPublic() bool {
	return b.Status == StatusApproved
}

type CreateBusinessInput struct {
	Name        string
	Category    string
	Location    string
	Description string
	Phone       string
	Email       string
	Website     string
	Hours       string
	Image       string
	Latitude    *float64
	Longitude   *float64
}

// Filter narrows List. A nil Status returns every status.
type Filter struct {
	Status      *Status
	Category    string
	NewestFirst bool
	Limit       int // 0 = no limit
	Offset      int
}

type Store interface {
	Create(ctx context.Context, in *CreateBusinessInput) (*Business, error)
	List(ctx context.Context, filter Filter) ([]Business, error)
	GetByID(ctx context.Context, businessID int64) (*Business, error)
	UpdateStatus(ctx context.Context, businessID int64, status Status) (*Business, error)
	Delete(ctx context.Context, businessID int64) (*Business, error)
}
