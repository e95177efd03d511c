// Package memstore is an in-process directory used as a test double for the
// Postgres repositories. State lives only as long as the process and is not
// shared between processes.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"townlink/internal/domain/businesses"
	"townlink/internal/domain/reviews"
	"townlink/internal/domain/storage"
	"townlink/internal/rating"
)

type directory struct {
	mu sync.Mutex

	businesses map[int64]businesses.Business
	reviews    []reviews.Review

	nextBusinessID int64
	nextReviewID   int64
	lastCreatedAt  time.Time
}

// NewContainer returns a storage container whose repositories share one
// in-memory directory.
func NewContainer() *storage.Container {
	d := &directory{businesses: make(map[int64]businesses.Business)}
	return &storage.Container{
		Businesses: &Businesses{d: d},
		Reviews:    &Reviews{d: d},
	}
}

// now returns strictly increasing timestamps so newest-first ordering is
// deterministic within a test. Callers hold d.mu.
func (d *directory) now() time.Time {
	t := time.Now().UTC()
	if !t.After(d.lastCreatedAt) {
		t = d.lastCreatedAt.Add(time.Microsecond)
	}
	d.lastCreatedAt = t
	return t
}

// withStats copies b and fills in its derived rating. Callers hold d.mu.
func (d *directory) withStats(b businesses.Business) businesses.Business {
	var ratings []int
	for _, r := range d.reviews {
		if r.BusinessID == b.ID {
			ratings = append(ratings, r.Rating)
		}
	}
	summary := rating.Summarize(ratings)
	b.ReviewCount = summary.Count
	b.AverageRating = summary.Average
	return b
}

type Businesses struct {
	d *directory
}

func (s *Businesses) Create(_ context.Context, in *businesses.CreateBusinessInput) (*businesses.Business, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	s.d.nextBusinessID++
	b := businesses.Business{
		ID:          s.d.nextBusinessID,
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
		Status:      businesses.StatusPending,
		CreatedAt:   s.d.now(),
	}
	s.d.businesses[b.ID] = b

	return &b, nil
}

func (s *Businesses) List(_ context.Context, filter businesses.Filter) ([]businesses.Business, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	out := []businesses.Business{}
	for _, b := range s.d.businesses {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(b.Category, filter.Category) {
			continue
		}
		out = append(out, s.d.withStats(b))
	}

	sort.Slice(out, func(i, j int) bool {
		if filter.NewestFirst {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID > out[j].ID
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})

	if filter.Limit > 0 {
		if filter.Offset >= len(out) {
			return []businesses.Business{}, nil
		}
		end := filter.Offset + filter.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[filter.Offset:end]
	}

	return out, nil
}

func (s *Businesses) GetByID(_ context.Context, businessID int64) (*businesses.Business, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	b, ok := s.d.businesses[businessID]
	if !ok {
		return nil, businesses.ErrBusinessNotFound
	}
	b = s.d.withStats(b)
	return &b, nil
}

func (s *Businesses) UpdateStatus(_ context.Context, businessID int64, status businesses.Status) (*businesses.Business, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	b, ok := s.d.businesses[businessID]
	if !ok {
		return nil, businesses.ErrBusinessNotFound
	}
	b.Status = status
	s.d.businesses[businessID] = b

	b = s.d.withStats(b)
	return &b, nil
}

// Delete removes the business and, under the same lock, all of its reviews.
func (s *Businesses) Delete(_ context.Context, businessID int64) (*businesses.Business, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	b, ok := s.d.businesses[businessID]
	if !ok {
		return nil, businesses.ErrBusinessNotFound
	}
	b = s.d.withStats(b)

	delete(s.d.businesses, businessID)
	kept := s.d.reviews[:0]
	for _, r := range s.d.reviews {
		if r.BusinessID != businessID {
			kept = append(kept, r)
		}
	}
	s.d.reviews = kept

	return &b, nil
}

type Reviews struct {
	d *directory
}

func (s *Reviews) Create(_ context.Context, in *reviews.CreateReviewInput) (*reviews.Review, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	if _, ok := s.d.businesses[in.BusinessID]; !ok {
		return nil, businesses.ErrBusinessNotFound
	}
	if err := rating.Validate(in.Rating); err != nil {
		return nil, err
	}

	s.d.nextReviewID++
	r := reviews.Review{
		ID:           s.d.nextReviewID,
		BusinessID:   in.BusinessID,
		ReviewerName: in.ReviewerName,
		Text:         in.Text,
		Rating:       in.Rating,
		CreatedAt:    s.d.now(),
	}
	s.d.reviews = append(s.d.reviews, r)

	return &r, nil
}

func (s *Reviews) ListByBusiness(_ context.Context, businessID int64) ([]reviews.Review, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()

	out := []reviews.Review{}
	for _, r := range s.d.reviews {
		if r.BusinessID == businessID {
			out = append(out, r)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}
