package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"townlink/internal/domain/businesses"
	"townlink/internal/domain/storage/memstore"
	"townlink/internal/moderation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadFixturesFile(t *testing.T) {
	fh, err := os.Open("../../seed/businesses.yaml")
	require.NoError(t, err)
	defer fh.Close()

	f, err := loadFixtures(fh)
	require.NoError(t, err)
	require.Len(t, f.Businesses, 3)
	assert.Equal(t, "Riverside Coffee", f.Businesses[0].Name)
	assert.Len(t, f.Businesses[0].Reviews, 2)
	require.NotNil(t, f.Businesses[0].Latitude)
}

func TestLoadFixturesRejectsUnknownFields(t *testing.T) {
	_, err := loadFixtures(strings.NewReader("businesses:\n  - name: X\n    colour: red\n"))
	assert.Error(t, err)

	_, err = loadFixtures(strings.NewReader("businesses: []\n"))
	assert.Error(t, err)
}

func TestSeedAppliesModeration(t *testing.T) {
	store := memstore.NewContainer()
	ctx := context.Background()

	f, err := loadFixtures(strings.NewReader(`
businesses:
  - name: Shown
    category: Cafe
    location: A
    description: B
    approved: true
    reviews:
      - {reviewer_name: Ann, text: good, rating: 4}
      - {reviewer_name: Bo, text: great, rating: 5}
  - name: Hidden
    category: Cafe
    location: A
    description: B
`))
	require.NoError(t, err)

	n, err := seed(ctx, store, f, false, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	approved := businesses.StatusApproved
	list, err := store.Businesses.List(ctx, businesses.Filter{Status: &approved})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Shown", list[0].Name)
	assert.Equal(t, 4.5, list[0].AverageRating)
}

func TestSeedRejectsInvalidReview(t *testing.T) {
	store := memstore.NewContainer()

	f, err := loadFixtures(strings.NewReader(`
businesses:
  - name: Shop
    category: Retail
    location: A
    description: B
    reviews:
      - {reviewer_name: Ann, text: bad, rating: 7}
`))
	require.NoError(t, err)

	_, err = seed(context.Background(), store, f, true, zap.NewNop().Sugar())
	var vErr *moderation.ValidationError
	assert.True(t, errors.As(err, &vErr))
}
