// Package catalog provides CRUD handlers for the non-canvas entities:
// databases, views, stored routines, triggers and users.
package catalog

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/canvasql/canvasql/internal/state"
)

// SetupRoutes registers the catalog feature routes.
func SetupRoutes(router chi.Router, store *state.Store, logger *slog.Logger) error {
	handlers := NewHandlers(store, logger)

	router.Route("/api/databases", func(r chi.Router) {
		r.Post("/", handlers.AddDatabase)
		r.Put("/{id}", handlers.UpdateDatabase)
		r.Delete("/{id}", handlers.DeleteDatabase)
		r.Post("/{id}/use", handlers.UseDatabase)
	})
	router.Route("/api/views", func(r chi.Router) {
		r.Post("/", handlers.AddView)
		r.Put("/{id}", handlers.UpdateView)
		r.Delete("/{id}", handlers.DeleteView)
	})
	router.Route("/api/procedures", func(r chi.Router) {
		r.Post("/", handlers.AddProcedure)
		r.Put("/{id}", handlers.UpdateProcedure)
		r.Delete("/{id}", handlers.DeleteProcedure)
	})
	router.Route("/api/triggers", func(r chi.Router) {
		r.Post("/", handlers.AddTrigger)
		r.Put("/{id}", handlers.UpdateTrigger)
		r.Delete("/{id}", handlers.DeleteTrigger)
	})
	router.Route("/api/users", func(r chi.Router) {
		r.Post("/", handlers.AddUser)
		r.Put("/{id}", handlers.UpdateUser)
		r.Delete("/{id}", handlers.DeleteUser)
	})

	return nil
}
