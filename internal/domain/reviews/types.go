package reviews

import (
	"context"
	"time"
)

// Review is a rated comment attached to exactly one business. Reviews are
// never edited; they disappear only when their business is deleted.
type Review struct {
	ID           int64     `json:"id"`
	BusinessID   int64     `json:"business_id"`
	ReviewerName string    `json:"reviewer_name"`
	Text         string    `json:"text"`
	Rating       int       `json:"rating"` // 1-5
	CreatedAt    time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	BusinessID   int64
	ReviewerName string
	Text         string
	Rating       int
}

type Store interface {
	Create(ctx context.Context, in *CreateReviewInput) (*Review, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]Review, error)
}
