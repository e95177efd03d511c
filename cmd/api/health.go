package main

import (
	"context"
	"net/http"
	"time"
)

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports whether the API and its database are reachable.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	error
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.store.Ping(ctx); err != nil {
		app.logger.Errorw("health check failed", "error", err.Error())
		writeJSONError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
