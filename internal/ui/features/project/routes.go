// Package project provides project-level handlers: import/export of the
// whole aggregate, disk save/load and dialect selection.
package project

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/canvasql/canvasql/internal/state"
)

// SetupRoutes registers the project feature routes.
func SetupRoutes(router chi.Router, store *state.Store, projectFile string, logger *slog.Logger) error {
	handlers := NewHandlers(store, projectFile, logger)

	router.Route("/api/project", func(r chi.Router) {
		r.Get("/", handlers.Get)
		r.Put("/", handlers.Import)
		r.Post("/save", handlers.Save)
		r.Post("/load", handlers.Load)
		r.Post("/dialect", handlers.SetDialect)
	})
	router.Get("/api/dialects", handlers.ListDialects)

	return nil
}
