package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"

	"townlink/internal/auth"
	"townlink/internal/db"
	"townlink/internal/domain/storage"
	"townlink/internal/moderation"
	"townlink/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger(level string) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), lvl)

	return zap.New(core).Sugar(), nil
}

var version = "1.0.0"

//	@title			TownLink API
//	@description	Local business directory with moderated submissions and reviews.

//	@BasePath					/
//	@securityDefinitions.apikey	AdminKey
//	@in							header
//	@name						X-Admin-Key

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, using process environment: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := NewLogger(cfg.logLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	// Admin gate
	authenticator, err := auth.NewKeyAuthenticator(cfg.auth.adminKey, cfg.auth.adminKeyHash)
	if err != nil {
		logger.Fatal(err)
	}

	if cfg.db.autoMigrate {
		res, err := db.Migrate(cfg.db.addr, db.MigrateOptions{})
		if err != nil {
			logger.Fatal(err)
		}
		logger.Infow("database schema up to date", "version", res.Version, "changed", res.Changed)
	}

	// Database
	pool, err := db.New(
		cfg.db.addr,
		cfg.db.maxConns,
		cfg.db.maxIdleTime,
	)
	if err != nil {
		logger.Fatal(err)
	}

	defer pool.Close()
	logger.Info("database connection pool established")

	store := storage.NewContainer(pool)

	rateLimiter := ratelimiter.NewWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:        cfg,
		logger:        logger,
		store:         store,
		moderation:    moderation.New(store.Businesses, store.Reviews, logger),
		authenticator: authenticator,
		rateLimiter:   rateLimiter,
	}

	// Served at /debug/vars behind the admin gate
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		stat := pool.Stat()
		return map[string]any{
			"acquired_conns": stat.AcquiredConns(),
			"idle_conns":     stat.IdleConns(),
			"total_conns":    stat.TotalConns(),
			"max_conns":      stat.MaxConns(),
			"acquire_count":  stat.AcquireCount(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
