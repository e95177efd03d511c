package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateOptions selects the migration to run. Steps of 0 means all the way
// up (or down when Down is set).
type MigrateOptions struct {
	Down  bool
	Steps int
}

// MigrateResult reports the schema version after a run.
type MigrateResult struct {
	Version uint
	Dirty   bool
	Changed bool
}

func newMigrator(addr string) (*migrate.Migrate, *sql.DB, error) {
	conn, err := sql.Open("postgres", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("migrator: %w", err)
	}

	return m, conn, nil
}

// Migrate applies the embedded schema migrations to the database at addr.
func Migrate(addr string, opts MigrateOptions) (MigrateResult, error) {
	m, conn, err := newMigrator(addr)
	if err != nil {
		return MigrateResult{}, err
	}
	defer conn.Close()
	defer m.Close()

	switch {
	case opts.Steps != 0 && opts.Down:
		err = m.Steps(-opts.Steps)
	case opts.Steps != 0:
		err = m.Steps(opts.Steps)
	case opts.Down:
		err = m.Down()
	default:
		err = m.Up()
	}

	changed := true
	if errors.Is(err, migrate.ErrNoChange) {
		changed = false
		err = nil
	}
	if err != nil {
		return MigrateResult{}, fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrateResult{Changed: changed}, nil
	}
	if err != nil {
		return MigrateResult{}, fmt.Errorf("read schema version: %w", err)
	}

	return MigrateResult{Version: version, Dirty: dirty, Changed: changed}, nil
}
