// Package router sets up the HTTP routes and middleware chain for the
// BrandCraft server.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandcraft/internal/handlers"
	"brandcraft/internal/middleware"
)

// New creates and returns the configured Chi router. static is served under
// /static/ and may be nil.
func New(brand *handlers.Brand, static fs.FS) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	if static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
	}

	r.Get("/", brand.Index)
	r.Post("/generate", brand.Generate)
	r.Get("/history", brand.History)
	r.Get("/api/history", brand.HistoryJSON)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
