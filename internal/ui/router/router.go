// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/canvasql/canvasql/internal/state"
	catalogFeature "github.com/canvasql/canvasql/internal/ui/features/catalog"
	exportFeature "github.com/canvasql/canvasql/internal/ui/features/export"
	previewFeature "github.com/canvasql/canvasql/internal/ui/features/preview"
	projectFeature "github.com/canvasql/canvasql/internal/ui/features/project"
	schemaFeature "github.com/canvasql/canvasql/internal/ui/features/schema"
	"github.com/canvasql/canvasql/internal/ui/resources"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(
	router chi.Router,
	store *state.Store,
	sessionStore *sessions.CookieStore,
	projectFile string,
	logger *slog.Logger,
) error {
	// Static assets and the canvas entry point.
	router.Handle("/static/*", resources.Handler())
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	if err := projectFeature.SetupRoutes(router, store, projectFile, logger); err != nil {
		return err
	}
	if err := schemaFeature.SetupRoutes(router, store, logger); err != nil {
		return err
	}
	if err := catalogFeature.SetupRoutes(router, store, logger); err != nil {
		return err
	}
	if err := previewFeature.SetupRoutes(router, store, sessionStore, logger); err != nil {
		return err
	}
	if err := exportFeature.SetupRoutes(router, store, logger); err != nil {
		return err
	}
	return nil
}
