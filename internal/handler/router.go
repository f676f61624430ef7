package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mergington-hs/activities/internal/metrics"
)

// NewRouter builds the full routing table. Tests use it too, so the
// routes exercised there are exactly the ones served in production.
func NewRouter(h *ActivityHandler, log *zap.Logger, staticDir string) chi.Router {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(RequestID)               // attach request IDs
	r.Use(AccessLog(log))          // structured access log
	r.Use(metrics.Collect)         // prometheus counters

	// Health and metrics
	r.Get("/health", HealthCheck)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Root redirect to the static landing page
	r.Get("/", h.RootRedirect)

	// API routes
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{name}/signup", h.Signup)
		r.Delete("/{name}/unregister", h.Unregister)
	})

	// Static HTML/CSS/JS for the landing page
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
	r.Handle("/static/*", fs)

	return r
}
