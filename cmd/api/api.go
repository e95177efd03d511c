package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"townlink/docs" //this is required to generate swagger docs
	"townlink/internal/auth"
	"townlink/internal/domain/storage"
	"townlink/internal/metrics"
	"townlink/internal/moderation"
	"townlink/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	moderation    *moderation.Service
	logger        *zap.SugaredLogger
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.cors.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", auth.AdminKeyHeader},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.NotFound(app.routeNotFoundHandler)
	r.MethodNotAllowed(app.methodNotAllowedHandler)

	r.Get("/health", app.healthCheckHandler)
	r.Handle("/metrics", metrics.Handler())
	r.With(app.AdminKeyMiddleware).Get("/debug/vars", expvar.Handler().ServeHTTP)

	docsURL := fmt.Sprintf("http://%s/swagger/doc.json", app.config.apiURL)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	r.Route("/api", func(r chi.Router) {
		r.Route("/businesses", func(r chi.Router) {
			r.With(app.RateLimiterMiddleware).Post("/", app.createBusinessHandler)
			r.Get("/", app.listBusinessesHandler)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.getBusinessHandler)
				r.Get("/reviews", app.listReviewsHandler)
				r.With(app.RateLimiterMiddleware).Post("/reviews", app.createReviewHandler)

				r.Group(func(r chi.Router) {
					r.Use(app.AdminKeyMiddleware)
					r.Post("/approve", app.approveBusinessHandler)
					r.Put("/approve", app.approveBusinessHandler)
					r.Post("/reject", app.rejectBusinessHandler)
					r.Put("/reject", app.rejectBusinessHandler)
					r.Delete("/", app.deleteBusinessHandler)
				})
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.With(app.RateLimiterMiddleware).Post("/", app.createReviewHandler)
			// Older clients fetch reviews by business id here.
			r.Get("/{id}", app.listReviewsHandler)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(app.AdminKeyMiddleware)
		r.Get("/pending-businesses", app.listPendingBusinessesHandler)
		r.Post("/approve/{id}", app.approveBusinessHandler)
		r.Put("/approve/{id}", app.approveBusinessHandler)
		r.Post("/reject/{id}", app.rejectBusinessHandler)
		r.Put("/reject/{id}", app.rejectBusinessHandler)
		r.Delete("/delete/{id}", app.deleteBusinessHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
