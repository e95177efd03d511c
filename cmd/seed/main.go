// seed loads a YAML fixture file of businesses and reviews into the
// directory database in one transaction. Every fixture goes through the
// same validation as the public API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"townlink/internal/db"
	"townlink/internal/domain/storage"
	"townlink/internal/moderation"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_ = godotenv.Load()

	var (
		dsn        string
		file       string
		approveAll bool
	)

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVar(&dsn, "dsn", os.Getenv("DB_ADDR"), "postgres connection string (default $DB_ADDR)")
	flagSet.StringVarP(&file, "file", "f", "seed/businesses.yaml", "fixture file to load")
	flagSet.BoolVar(&approveAll, "approve", false, "approve every seeded business regardless of the fixture")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if dsn == "" {
		return fmt.Errorf("no database: pass --dsn or set DB_ADDR")
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	logger := zl.Sugar()
	defer logger.Sync()

	fh, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fh.Close()

	fixtures, err := loadFixtures(fh)
	if err != nil {
		return err
	}

	pool, err := db.New(dsn, 2, "1m")
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store := storage.NewContainer(pool)
	n, err := seed(ctx, store, fixtures, approveAll, logger)
	if err != nil {
		return err
	}

	logger.Infow("seed complete", "file", file, "businesses", n)
	return nil
}

// seed stores all fixtures or none of them.
func seed(ctx context.Context, store *storage.Container, f *fixtureFile, approveAll bool, logger *zap.SugaredLogger) (int, error) {
	count := 0
	err := store.WithTx(ctx, func(tx *storage.DirectoryTx) error {
		svc := moderation.New(tx.Businesses, tx.Reviews, logger)

		for i, fx := range f.Businesses {
			b, err := svc.Submit(ctx, fx.input())
			if err != nil {
				return fmt.Errorf("business %d (%s): %w", i, fx.Name, err)
			}

			if fx.Approved || approveAll {
				if _, err := svc.Approve(ctx, b.ID); err != nil {
					return fmt.Errorf("approve %s: %w", fx.Name, err)
				}
			}

			for j, rv := range fx.Reviews {
				if _, err := svc.SubmitReview(ctx, moderation.AdminView, rv.input(b.ID)); err != nil {
					return fmt.Errorf("business %s review %d: %w", fx.Name, j, err)
				}
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
