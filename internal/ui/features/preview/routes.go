// Package preview provides the SQL preview panel: the generated
// whole-schema script streamed over SSE, per-entity statements and the
// canned query runner.
package preview

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/canvasql/canvasql/internal/state"
)

// SetupRoutes registers the preview feature routes.
func SetupRoutes(router chi.Router, store *state.Store, sessionStore sessions.Store, logger *slog.Logger) error {
	handlers := NewHandlers(store, sessionStore, logger)

	router.Route("/api/preview", func(r chi.Router) {
		r.Get("/sql", handlers.FullSQLSSE)
		r.Get("/statements", handlers.Statements)
		r.Post("/query", handlers.RunQuery)
	})

	return nil
}
