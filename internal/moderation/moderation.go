// Package moderation enforces the business visibility state machine:
// submissions start pending, only an admin moves them to approved, back to
// pending, or deletes them. Public reads only ever see approved businesses.
package moderation

import (
	"context"
	"strings"

	"townlink/internal/domain/businesses"
	"townlink/internal/domain/reviews"
	"townlink/internal/metrics"
	"townlink/internal/rating"

	"go.uber.org/zap"
)

// View selects how much of the directory a caller may see.
type View int

const (
	PublicView View = iota
	AdminView
)

type SubmitBusinessInput struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required,max=5000"`
	Location    string   `json:"location" validate:"required,max=300"`
	Category    string   `json:"category" validate:"required,max=100"`
	Phone       string   `json:"phone" validate:"max=50"`
	Email       string   `json:"email" validate:"omitempty,email,max=254"`
	Website     string   `json:"website" validate:"max=2048"`
	Hours       string   `json:"hours" validate:"max=500"`
	Image       string   `json:"image" validate:"max=2048"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func (in *SubmitBusinessInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Category = strings.TrimSpace(in.Category)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Website = strings.TrimSpace(in.Website)
	in.Hours = strings.TrimSpace(in.Hours)
	in.Image = strings.TrimSpace(in.Image)
}

type SubmitReviewInput struct {
	BusinessID   int64  `json:"business_id" validate:"required,gt=0"`
	ReviewerName string `json:"reviewer_name" validate:"required,max=100"`
	Text         string `json:"text" validate:"required,max=2000"`
	Rating       *int   `json:"rating" validate:"required,min=1,max=5"`
}

func (in *SubmitReviewInput) normalize() {
	in.ReviewerName = strings.TrimSpace(in.ReviewerName)
	in.Text = strings.TrimSpace(in.Text)
}

type ListOptions struct {
	Status   *businesses.Status // honoured in AdminView only
	Category string
	Limit    int
	Offset   int
}

// ReviewList is the reviews of one business with their derived summary.
type ReviewList struct {
	Reviews       []reviews.Review `json:"reviews"`
	TotalReviews  int              `json:"total_reviews"`
	AverageRating float64          `json:"average_rating"`
}

type Service struct {
	businesses businesses.Store
	reviews    reviews.Store
	logger     *zap.SugaredLogger
}

func New(b businesses.Store, r reviews.Store, logger *zap.SugaredLogger) *Service {
	return &Service{
		businesses: b,
		reviews:    r,
		logger:     logger,
	}
}

// Submit validates and stores a public submission as pending.
func (s *Service) Submit(ctx context.Context, in SubmitBusinessInput) (*businesses.Business, error) {
	in.normalize()
	if err := check(&in); err != nil {
		return nil, err
	}

	b, err := s.businesses.Create(ctx, &businesses.CreateBusinessInput{
		Name:        in.Name,
		Category:    in.Category,
		Location:    in.Location,
		Description: in.Description,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		Hours:       in.Hours,
		Image:       in.Image,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordSubmission("business")
	s.logger.Infow("business submitted", "business_id", b.ID, "category", b.Category)

	return b, nil
}

func (s *Service) List(ctx context.Context, view View, opts ListOptions) ([]businesses.Business, error) {
	filter := businesses.Filter{
		Category: strings.TrimSpace(opts.Category),
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	}

	if view == AdminView {
		filter.Status = opts.Status
		filter.NewestFirst = true
	} else {
		approved := businesses.StatusApproved
		filter.Status = &approved
	}

	return s.businesses.List(ctx, filter)
}

// ListPending is the admin moderation queue, newest first.
func (s *Service) ListPending(ctx context.Context) ([]businesses.Business, error) {
	pending := businesses.StatusPending
	return s.List(ctx, AdminView, ListOptions{Status: &pending})
}

// Get returns one business. Outside AdminView a business that is not
// approved does not exist.
func (s *Service) Get(ctx context.Context, view View, businessID int64) (*businesses.Business, error) {
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if view != AdminView && !b.IsPublic() {
		return nil, businesses.ErrBusinessNotFound
	}
	return b, nil
}

// Approve makes a business public. Approving twice is a no-op success.
func (s *Service) Approve(ctx context.Context, businessID int64) (*businesses.Business, error) {
	return s.transition(ctx, businessID, businesses.StatusApproved, "approve")
}

// Reject hides a business again by resetting it to pending.
func (s *Service) Reject(ctx context.Context, businessID int64) (*businesses.Business, error) {
	return s.transition(ctx, businessID, businesses.StatusPending, "reject")
}

func (s *Service) transition(ctx context.Context, businessID int64, to businesses.Status, action string) (*businesses.Business, error) {
	b, err := s.businesses.UpdateStatus(ctx, businessID, to)
	if err != nil {
		return nil, err
	}

	metrics.RecordModeration(action)
	s.logger.Infow("business status changed", "business_id", businessID, "action", action, "status", b.Status)

	return b, nil
}

// Delete removes a business and all of its reviews. It cannot be undone.
func (s *Service) Delete(ctx context.Context, businessID int64) (*businesses.Business, error) {
	b, err := s.businesses.Delete(ctx, businessID)
	if err != nil {
		return nil, err
	}

	metrics.RecordModeration("delete")
	s.logger.Infow("business deleted", "business_id", businessID, "reviews_removed", b.ReviewCount)

	return b, nil
}

// SubmitReview validates the review, checks the business is visible to the
// caller, and stores it.
func (s *Service) SubmitReview(ctx context.Context, view View, in SubmitReviewInput) (*reviews.Review, error) {
	in.normalize()
	if err := check(&in); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, view, in.BusinessID); err != nil {
		return nil, err
	}

	// The business may be deleted between the check and the insert; the
	// foreign key turns that race into ErrBusinessNotFound.
	review, err := s.reviews.Create(ctx, &reviews.CreateReviewInput{
		BusinessID:   in.BusinessID,
		ReviewerName: in.ReviewerName,
		Text:         in.Text,
		Rating:       *in.Rating,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordSubmission("review")
	s.logger.Infow("review submitted", "business_id", review.BusinessID, "review_id", review.ID, "rating", review.Rating)

	return review, nil
}

// ListReviews returns a visible business's reviews, newest first.
func (s *Service) ListReviews(ctx context.Context, view View, businessID int64) (*ReviewList, error) {
	if _, err := s.Get(ctx, view, businessID); err != nil {
		return nil, err
	}

	list, err := s.reviews.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	ratings := make([]int, 0, len(list))
	for _, r := range list {
		ratings = append(ratings, r.Rating)
	}
	summary := rating.Summarize(ratings)

	return &ReviewList{
		Reviews:       list,
		TotalReviews:  summary.Count,
		AverageRating: summary.Average,
	}, nil
}
