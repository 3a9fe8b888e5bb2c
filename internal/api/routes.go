package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ignite/working-date-service/internal/pkg/httputil"
)

// SetupRoutes configures the router, middleware, and the JSON 404/405
// handlers so every error leaves through the same envelope.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/working-date", h.GetWorkingDate)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httputil.NotFound(w, fmt.Sprintf("route %s %s not found", req.Method, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httputil.Error(w, http.StatusMethodNotAllowed, "NotFound",
			fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	return r
}
