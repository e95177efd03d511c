package businesses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"townlink/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) Store {
	return &Repository{db: db}
}

const businessColumns = `
	b.id, b.name, b.category, b.location, b.description,
	b.phone, b.email, b.website, b.hours, b.image,
	b.latitude, b.longitude, b.status, b.created_at`

// reviewStatsJoin aggregates the reviews of the single business row "b".
// AVG over zero rows is NULL, hence the COALESCE in every select list.
const reviewStatsJoin = `
	LEFT JOIN LATERAL (
		SELECT COUNT(*) AS review_count, AVG(rating)::float8 AS average_rating
		FROM reviews
		WHERE reviews.business_id = b.id
	) rs ON TRUE`

const statsColumns = `COALESCE(rs.review_count, 0), COALESCE(rs.average_rating, 0)`

func scanBusiness(row pgx.Row) (*Business, error) {
	var b Business
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Category,
		&b.Location,
		&b.Description,
		&b.Phone,
		&b.Email,
		&b.Website,
		&b.Hours,
		&b.Image,
		&b.Latitude,
		&b.Longitude,
		&b.Status,
		&b.CreatedAt,
		&b.ReviewCount,
		&b.AverageRating,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new submission. Every business starts pending.
func (r *Repository) Create(ctx context.Context, in *CreateBusinessInput) (*Business, error) {
	const q = `
		INSERT INTO businesses (
			name, category, location, description,
			phone, email, website, hours, image,
			latitude, longitude, status
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, 'pending'
		)
		RETURNING id, status, created_at
	`

	b := &Business{
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
	}

	err := r.db.QueryRow(ctx, q,
		in.Name,
		in.Category,
		in.Location,
		in.Description,
		in.Phone,
		in.Email,
		in.Website,
		in.Hours,
		in.Image,
		in.Latitude,
		in.Longitude,
	).Scan(&b.ID, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	return b, nil
}

// List returns businesses matching filter, each with its review aggregate.
func (r *Repository) List(ctx context.Context, filter Filter) ([]Business, error) {
	var (
		where      []string
		args       []any
		argCounter = 1
	)

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("b.status = $%d", argCounter))
		args = append(args, string(*filter.Status))
		argCounter++
	}

	if filter.Category != "" {
		where = append(where, fmt.Sprintf("LOWER(b.category) = LOWER($%d)", argCounter))
		args = append(args, filter.Category)
		argCounter++
	}

	query := `
		WITH review_stats AS (
			SELECT business_id, COUNT(*) AS review_count, AVG(rating)::float8 AS average_rating
			FROM reviews
			GROUP BY business_id
		)
		SELECT ` + businessColumns + `, ` + statsColumns + `
		FROM businesses b
		LEFT JOIN review_stats rs ON rs.business_id = b.id
	`

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	if filter.NewestFirst {
		query += " ORDER BY b.created_at DESC, b.id DESC"
	} else {
		query += " ORDER BY b.name, b.id"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	out := []Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		out = append(out, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows businesses: %w", err)
	}

	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, businessID int64) (*Business, error) {
	query := `
		SELECT ` + businessColumns + `, ` + statsColumns + `
		FROM businesses b
		` + reviewStatsJoin + `
		WHERE b.id = $1
	`

	b, err := scanBusiness(r.db.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return b, nil
}

// UpdateStatus sets the moderation status in one statement. Setting the
// current status again succeeds without change.
func (r *Repository) UpdateStatus(ctx context.Context, businessID int64, status Status) (*Business, error) {
	query := `
		WITH b AS (
			UPDATE businesses SET status = $1
			WHERE id = $2
			RETURNING *
		)
		SELECT ` + businessColumns + `, ` + statsColumns + `
		FROM b
		` + reviewStatsJoin

	b, err := scanBusiness(r.db.QueryRow(ctx, query, string(status), businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("update business status: %w", err)
	}
	return b, nil
}

// Delete removes the business. Its reviews go with it through the
// ON DELETE CASCADE foreign key, inside the same statement. The returned
// aggregate describes the reviews as they were just before deletion.
func (r *Repository) Delete(ctx context.Context, businessID int64) (*Business, error) {
	query := `
		WITH b AS (
			DELETE FROM businesses
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + businessColumns + `, ` + statsColumns + `
		FROM b
		` + reviewStatsJoin

	b, err := scanBusiness(r.db.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("delete business: %w", err)
	}
	return b, nil
}
