// migrate applies the embedded schema migrations to the directory database.
//
//	migrate                 # all the way up
//	migrate --steps 1       # one step up
//	migrate --down --steps 1
//
// The DSN comes from --dsn or DB_ADDR (a .env file is honoured).
package main

import (
	"fmt"
	"os"

	"townlink/internal/db"

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
		dsn   string
		down  bool
		steps int
	)

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&dsn, "dsn", os.Getenv("DB_ADDR"), "postgres connection string (default $DB_ADDR)")
	flagSet.BoolVar(&down, "down", false, "roll migrations back instead of applying them")
	flagSet.IntVar(&steps, "steps", 0, "number of migrations to apply or roll back (0 = all)")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if dsn == "" {
		return fmt.Errorf("no database: pass --dsn or set DB_ADDR")
	}
	if steps < 0 {
		return fmt.Errorf("--steps must not be negative")
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	logger := zl.Sugar()
	defer logger.Sync()

	res, err := db.Migrate(dsn, db.MigrateOptions{Down: down, Steps: steps})
	if err != nil {
		return err
	}

	if !res.Changed {
		logger.Infow("no change", "version", res.Version, "dirty", res.Dirty)
		return nil
	}
	logger.Infow("migrations applied", "version", res.Version, "dirty", res.Dirty, "down", down)
	return nil
}
