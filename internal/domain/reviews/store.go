package reviews

import (
	"context"
	"fmt"

	"townlink/internal/domain/businesses"
	"townlink/internal/infra/dbx"
	"townlink/internal/rating"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

// Create inserts a review. A business_id with no matching business is
// rejected by the foreign key and reported as businesses.ErrBusinessNotFound.
func (r *Repository) Create(ctx context.Context, in *CreateReviewInput) (*Review, error) {
	query := `
		INSERT INTO reviews (business_id, reviewer_name, text, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	review := &Review{
		BusinessID:   in.BusinessID,
		ReviewerName: in.ReviewerName,
		Text:         in.Text,
		Rating:       in.Rating,
	}

	err := r.db.QueryRow(ctx, query,
		in.BusinessID,
		in.ReviewerName,
		in.Text,
		in.Rating,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		switch {
		case dbx.IsFKViolation(err):
			return nil, businesses.ErrBusinessNotFound
		case dbx.IsCheckViolation(err):
			return nil, rating.ErrOutOfRange
		default:
			return nil, fmt.Errorf("create review: %w", err)
		}
	}

	return review, nil
}

// ListByBusiness returns the reviews of a business, newest first.
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64) ([]Review, error) {
	query := `
		SELECT id, business_id, reviewer_name, text, rating, created_at
		FROM reviews
		WHERE business_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.BusinessID,
			&review.ReviewerName,
			&review.Text,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows reviews: %w", err)
	}

	return reviews, nil
}
