package main

import (
	"net"
	"net/http"

	"townlink/internal/auth"
	"townlink/internal/moderation"
)

// AdminKeyMiddleware lets a request through only when it carries the admin
// secret. A missing and a wrong key get the same 403.
func (app *application) AdminKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.isAdmin(r) {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) isAdmin(r *http.Request) bool {
	return app.authenticator.Authenticate(r.Header.Get(auth.AdminKeyHeader))
}

// viewFor widens public read routes for callers holding the admin key.
// A wrong key is not an error here; the caller just gets the public view.
func (app *application) viewFor(r *http.Request) moderation.View {
	if app.isAdmin(r) {
		return moderation.AdminView
	}
	return moderation.PublicView
}

// RateLimiterMiddleware throttles public submissions per client IP. RealIP
// has already rewritten RemoteAddr when a proxy header is present.
func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.config.rateLimiter.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		if allow, retryAfter := app.rateLimiter.Allow(clientIP(r)); !allow {
			app.rateLimitExceededResponse(w, r, retryAfter)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
