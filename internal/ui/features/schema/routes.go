// Package schema provides CRUD handlers for the canvas entities:
// tables, relationships and indexes.
package schema

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/canvasql/canvasql/internal/state"
)

// SetupRoutes registers the schema feature routes.
func SetupRoutes(router chi.Router, store *state.Store, logger *slog.Logger) error {
	handlers := NewHandlers(store, logger)

	router.Route("/api/tables", func(r chi.Router) {
		r.Post("/", handlers.AddTable)
		r.Put("/{id}", handlers.UpdateTable)
		r.Delete("/{id}", handlers.DeleteTable)
	})
	router.Route("/api/relationships", func(r chi.Router) {
		r.Post("/", handlers.AddRelationship)
		r.Delete("/{id}", handlers.DeleteRelationship)
	})
	router.Route("/api/indexes", func(r chi.Router) {
		r.Post("/", handlers.AddIndex)
		r.Put("/{id}", handlers.UpdateIndex)
		r.Delete("/{id}", handlers.DeleteIndex)
	})

	return nil
}
