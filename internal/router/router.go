// Package router sets up all HTTP routes and middleware chains for the
// storefront server. It organizes routes into the customization API and
// the public store page with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(customize *handlers.Customize, storefront *handlers.Storefront) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Customization API — rate limited per client IP.
	apiLimiter := middleware.NewRateLimiter(120, time.Minute)
	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Get("/blocks/types", customize.BlockTypes)

		r.Route("/stores/{storeID}", func(r chi.Router) {
			r.Get("/theme", customize.ThemeGet)
			r.Patch("/theme", customize.ThemeUpdate)

			r.Get("/blocks", customize.BlocksList)
			r.Post("/blocks", customize.BlockAdd)
			r.Put("/blocks/order", customize.BlocksReorder)

			r.Get("/versions", customize.VersionsList)
			r.Post("/versions", customize.VersionSave)
		})

		r.Route("/blocks/{id}", func(r chi.Router) {
			r.Get("/form", customize.BlockForm)
			r.Put("/content", customize.BlockUpdateContent)
			r.Put("/active", customize.BlockSetActive)
			r.Delete("/", customize.BlockRemove)
		})

		r.Route("/versions/{id}", func(r chi.Router) {
			r.Post("/load", customize.VersionLoad)
			r.Post("/live", customize.VersionSetLive)
			r.Delete("/", customize.VersionDelete)
		})
	})

	// Public store page.
	r.Get("/stores/{storeID}/preview", storefront.Preview)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
