package rating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		assert.NoError(t, Validate(r), "rating %d should be accepted", r)
	}

	for _, r := range []int{-1, 0, 6, 100} {
		err := Validate(r)
		assert.ErrorIs(t, err, ErrOutOfRange, "rating %d should be rejected", r)
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrOutOfRange)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    Summary
	}{
		{name: "no reviews", ratings: nil, want: Summary{Count: 0, Average: 0}},
		{name: "single", ratings: []int{3}, want: Summary{Count: 1, Average: 3}},
		{name: "four and five", ratings: []int{4, 5}, want: Summary{Count: 2, Average: 4.5}},
		{name: "unrounded", ratings: []int{5, 4, 4}, want: Summary{Count: 3, Average: 13.0 / 3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.ratings)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Average, got.Average, 1e-9)
		})
	}
}
