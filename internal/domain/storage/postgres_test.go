package storage_test

import (
	"context"
	"os"
	"testing"

	"townlink/internal/db"
	"townlink/internal/domain/businesses"
	"townlink/internal/domain/reviews"
	"townlink/internal/domain/storage"
	"townlink/internal/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPostgresContainer needs a disposable database in TEST_POSTGRES_DSN.
// Both tables are truncated before each test.
func newPostgresContainer(t *testing.T) *storage.Container {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	_, err := db.Migrate(dsn, db.MigrateOptions{})
	require.NoError(t, err)

	pool, err := db.New(dsn, 5, "1m")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE reviews, businesses RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return storage.NewContainer(pool)
}

func createBusiness(t *testing.T, s businesses.Store, name, category string) *businesses.Business {
	t.Helper()

	b, err := s.Create(context.Background(), &businesses.CreateBusinessInput{
		Name:        name,
		Category:    category,
		Location:    "Main St",
		Description: "desc",
	})
	require.NoError(t, err)
	return b
}

func TestPostgresBusinessLifecycle(t *testing.T) {
	c := newPostgresContainer(t)
	ctx := context.Background()

	b := createBusiness(t, c.Businesses, "Cafe One", "Cafe")
	assert.Equal(t, businesses.StatusPending, b.Status)
	assert.False(t, b.CreatedAt.IsZero())

	approved := businesses.StatusApproved
	list, err := c.Businesses.List(ctx, businesses.Filter{Status: &approved})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	got, err := c.Businesses.UpdateStatus(ctx, b.ID, businesses.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, businesses.StatusApproved, got.Status)

	got, err = c.Businesses.UpdateStatus(ctx, b.ID, businesses.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, businesses.StatusApproved, got.Status)

	list, err = c.Businesses.List(ctx, businesses.Filter{Status: &approved, Category: "cafe"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	_, err = c.Businesses.UpdateStatus(ctx, b.ID+100, businesses.StatusApproved)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)
}

func TestPostgresReviewsAndCascade(t *testing.T) {
	c := newPostgresContainer(t)
	ctx := context.Background()

	b := createBusiness(t, c.Businesses, "Bakery", "Food")

	for _, r := range []int{4, 5} {
		_, err := c.Reviews.Create(ctx, &reviews.CreateReviewInput{
			BusinessID: b.ID, ReviewerName: "Ann", Text: "good", Rating: r,
		})
		require.NoError(t, err)
	}

	got, err := c.Businesses.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ReviewCount)
	assert.Equal(t, 4.5, got.AverageRating)

	list, err := c.Reviews.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 5, list[0].Rating)

	_, err = c.Reviews.Create(ctx, &reviews.CreateReviewInput{
		BusinessID: b.ID, ReviewerName: "Ann", Text: "bad", Rating: 9,
	})
	assert.ErrorIs(t, err, rating.ErrOutOfRange)

	_, err = c.Reviews.Create(ctx, &reviews.CreateReviewInput{
		BusinessID: b.ID + 100, ReviewerName: "Ann", Text: "lost", Rating: 3,
	})
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)

	deleted, err := c.Businesses.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, deleted.ID)

	list, err = c.Reviews.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = c.Businesses.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)
}

func TestPostgresWithTxRollsBack(t *testing.T) {
	c := newPostgresContainer(t)
	ctx := context.Background()

	err := c.WithTx(ctx, func(tx *storage.DirectoryTx) error {
		createBusiness(t, tx.Businesses, "Ghost", "Misc")
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	list, err := c.Businesses.List(ctx, businesses.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}
