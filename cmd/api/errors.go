package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"townlink/internal/domain/businesses"
	"townlink/internal/moderation"
	"townlink/internal/rating"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, err.Error())
}

// forbiddenResponse never says why the key was refused.
func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)

	writeJSONError(w, http.StatusForbidden, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)

	seconds := int(retryAfter.Seconds() + 0.999)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", fmt.Sprint(seconds))

	writeJSONError(w, http.StatusTooManyRequests, fmt.Sprintf("rate limit exceeded, retry after: %ds", seconds))
}

// moderationError maps directory and validation failures onto HTTP statuses.
func (app *application) moderationError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *moderation.ValidationError
	switch {
	case errors.As(err, &vErr), errors.Is(err, rating.ErrOutOfRange):
		app.badRequestResponse(w, r, err)
	case errors.Is(err, businesses.ErrBusinessNotFound):
		app.notFoundResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

func (app *application) routeNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "the requested resource could not be found")
}

func (app *application) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusMethodNotAllowed, fmt.Sprintf("the %s method is not supported for this resource", r.Method))
}
