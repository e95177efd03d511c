package memstore

import (
	"context"
	"testing"

	"townlink/internal/domain/businesses"
	"townlink/internal/domain/reviews"
	"townlink/internal/domain/storage"
	"townlink/internal/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagingAndOrder(t *testing.T) {
	c := NewContainer()
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		_, err := c.Businesses.Create(ctx, &businesses.CreateBusinessInput{Name: name, Category: "X"})
		require.NoError(t, err)
	}

	list, err := c.Businesses.List(ctx, businesses.Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "Bravo", list[1].Name)

	list, err = c.Businesses.List(ctx, businesses.Filter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Charlie", list[0].Name)

	list, err = c.Businesses.List(ctx, businesses.Filter{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = c.Businesses.List(ctx, businesses.Filter{NewestFirst: true})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Bravo", list[0].Name)
}

func TestReviewsNeedExistingBusiness(t *testing.T) {
	c := NewContainer()
	ctx := context.Background()

	_, err := c.Reviews.Create(ctx, &reviews.CreateReviewInput{BusinessID: 1, Rating: 3})
	assert.ErrorIs(t, err, businesses.ErrBusinessNotFound)

	b, err := c.Businesses.Create(ctx, &businesses.CreateBusinessInput{Name: "Shop"})
	require.NoError(t, err)

	_, err = c.Reviews.Create(ctx, &reviews.CreateReviewInput{BusinessID: b.ID, Rating: 0})
	assert.ErrorIs(t, err, rating.ErrOutOfRange)
}

func TestWithTxUsesSameStores(t *testing.T) {
	c := NewContainer()
	ctx := context.Background()

	err := c.WithTx(ctx, func(tx *storage.DirectoryTx) error {
		_, err := tx.Businesses.Create(ctx, &businesses.CreateBusinessInput{Name: "Seeded"})
		return err
	})
	require.NoError(t, err)

	list, err := c.Businesses.List(ctx, businesses.Filter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
