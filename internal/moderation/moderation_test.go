package moderation

import (
	"context"
	"errors"
	"testing"

	"townlink/internal/domain/businesses"
	"townlink/internal/domain/storage/memstore"
	"townlink/internal/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store := memstore.NewContainer()
	return New(store.Businesses, store.Reviews, zap.NewNop().Sugar())
}

func intPtr(v int) *int { return &v }

func validBusiness(name string) SubmitBusinessInput {
	return SubmitBusinessInput{
		Name:        name,
		Description: "Family run",
		Location:    "1 High St",
		Category:    "Food",
	}
}

func TestSubmitStartsPending(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	in := validBusiness("  Corner Deli  ")
	in.Email = "deli@example.com"

	b, err := s.Submit(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, businesses.StatusPending, b.Status)
	assert.Equal(t, "Corner Deli", b.Name)

	_, err = s.Get(ctx, PublicView, b.ID)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)

	got, err := s.Get(ctx, AdminView, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestSubmitValidation(t *testing.T) {
	s := newService(t)

	in := validBusiness("")
	in.Location = " "
	in.Email = "not-an-email"

	_, err := s.Submit(context.Background(), in)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))

	fields := map[string]string{}
	for _, f := range vErr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "location is required", fields["location"])
	assert.Equal(t, "email must be a valid email address", fields["email"])

	list, err := s.List(context.Background(), AdminView, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list, "rejected input is never stored")
}

func TestTransitions(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	b, err := s.Submit(ctx, validBusiness("Tailor"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := s.Approve(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, businesses.StatusApproved, got.Status)
	}

	public, err := s.List(ctx, PublicView, ListOptions{})
	require.NoError(t, err)
	require.Len(t, public, 1)

	got, err := s.Reject(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, businesses.StatusPending, got.Status)

	public, err = s.List(ctx, PublicView, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, public)

	pending, err := s.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = s.Approve(ctx, 404)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)
	_, err = s.Reject(ctx, 404)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)
}

func TestPublicListIgnoresStatusFilter(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Submit(ctx, validBusiness("Hidden"))
	require.NoError(t, err)

	pending := businesses.StatusPending
	list, err := s.List(ctx, PublicView, ListOptions{Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReviewsAndAverage(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	b, err := s.Submit(ctx, validBusiness("Bistro"))
	require.NoError(t, err)

	_, err = s.SubmitReview(ctx, PublicView, SubmitReviewInput{
		BusinessID: b.ID, ReviewerName: "Ann", Text: "nice", Rating: intPtr(5),
	})
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound, "pending businesses take no public reviews")

	_, err = s.Approve(ctx, b.ID)
	require.NoError(t, err)

	list, err := s.ListReviews(ctx, PublicView, b.ID)
	require.NoError(t, err)
	assert.Zero(t, list.TotalReviews)
	assert.Zero(t, list.AverageRating)
	assert.NotNil(t, list.Reviews)

	for _, r := range []int{5, 4, 4} {
		_, err := s.SubmitReview(ctx, PublicView, SubmitReviewInput{
			BusinessID: b.ID, ReviewerName: "Ann", Text: "nice", Rating: intPtr(r),
		})
		require.NoError(t, err)
	}

	list, err = s.ListReviews(ctx, PublicView, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalReviews)
	assert.InDelta(t, 13.0/3.0, list.AverageRating, 1e-9)

	got, err := s.Get(ctx, PublicView, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ReviewCount)
	assert.InDelta(t, 13.0/3.0, got.AverageRating, 1e-9)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	b, err := s.Submit(ctx, validBusiness("Gym"))
	require.NoError(t, err)
	_, err = s.Approve(ctx, b.ID)
	require.NoError(t, err)

	for _, r := range []int{0, 6, -2} {
		_, err := s.SubmitReview(ctx, PublicView, SubmitReviewInput{
			BusinessID: b.ID, ReviewerName: "Bo", Text: "meh", Rating: intPtr(r),
		})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), "rating %d", r)
		assert.Equal(t, rating.ErrOutOfRange.Error(), vErr.Error())
	}

	_, err = s.SubmitReview(ctx, PublicView, SubmitReviewInput{
		BusinessID: b.ID, ReviewerName: "Bo", Text: "meh",
	})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "rating is required", vErr.Error())

	list, err := s.ListReviews(ctx, PublicView, b.ID)
	require.NoError(t, err)
	assert.Zero(t, list.TotalReviews)
}

func TestDeleteCascades(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	keep, err := s.Submit(ctx, validBusiness("Keep"))
	require.NoError(t, err)
	drop, err := s.Submit(ctx, validBusiness("Drop"))
	require.NoError(t, err)

	for _, id := range []int64{keep.ID, drop.ID} {
		_, err := s.Approve(ctx, id)
		require.NoError(t, err)
		_, err = s.SubmitReview(ctx, PublicView, SubmitReviewInput{
			BusinessID: id, ReviewerName: "Cy", Text: "ok", Rating: intPtr(3),
		})
		require.NoError(t, err)
	}

	deleted, err := s.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted.ReviewCount)

	_, err = s.Get(ctx, AdminView, drop.ID)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)
	_, err = s.ListReviews(ctx, AdminView, drop.ID)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)

	_, err = s.Delete(ctx, drop.ID)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)

	list, err := s.ListReviews(ctx, PublicView, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalReviews)
}
