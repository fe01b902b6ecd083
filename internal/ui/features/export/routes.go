// Package export provides the .sql file download of the generated
// schema script.
package export

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/canvasql/canvasql/internal/state"
)

// SetupRoutes registers the export feature routes.
func SetupRoutes(router chi.Router, store *state.Store, logger *slog.Logger) error {
	handlers := NewHandlers(store, logger)

	router.Get("/api/export/sql", handlers.DownloadSQL)

	return nil
}
