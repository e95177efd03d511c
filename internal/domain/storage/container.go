package storage

import (
	"context"
	"fmt"

	"townlink/internal/domain/businesses"
	"townlink/internal/domain/reviews"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool       *pgxpool.Pool // nil for the in-memory container
	Businesses businesses.Store
	Reviews    reviews.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:       db,
		Businesses: businesses.NewRepository(db),
		Reviews:    reviews.NewRepository(db),
	}
}

// Ping checks the pool. Containers without a pool are always healthy.
func (c *Container) Ping(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	return c.pool.Ping(ctx)
}

// DirectoryTx is a tx-scoped set of repositories for multi-statement work
// such as seeding.
type DirectoryTx struct {
	Businesses businesses.Store
	Reviews    reviews.Store
}

// WithTx runs fn atomically. Without a pool, fn runs against the container's
// own stores.
func (c *Container) WithTx(ctx context.Context, fn func(s *DirectoryTx) error) error {
	if c.pool == nil {
		return fn(&DirectoryTx{Businesses: c.Businesses, Reviews: c.Reviews})
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &DirectoryTx{
		Businesses: businesses.NewRepository(tx),
		Reviews:    reviews.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
