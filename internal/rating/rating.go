// Package rating holds the review rating domain and the read-time average
// used for business listings.
package rating

import "fmt"

const (
	MinRating = 1
	MaxRating = 5
)

var ErrOutOfRange = fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)

// Summary is the derived rating of a business. It is never stored.
type Summary struct {
	Count   int     `json:"total_reviews"`
	Average float64 `json:"average_rating"`
}

// Validate reports whether r is inside the accepted rating domain.
func Validate(r int) error {
	if r < MinRating || r > MaxRating {
		return ErrOutOfRange
	}
	return nil
}

// Summarize returns the arithmetic mean of ratings. No ratings yields an
// average of 0.
func Summarize(ratings []int) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}

	total := 0
	for _, r := range ratings {
		total += r
	}

	return Summary{
		Count:   len(ratings),
		Average: float64(total) / float64(len(ratings)),
	}
}
