package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/pkg/sqlgen"
)

// Handlers provides HTTP handlers for the export feature.
type Handlers struct {
	store  *state.Store
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *state.Store, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, logger: logger}
}

// DownloadSQL serves the whole-schema script as a .sql attachment. An
// optional ?dialect= query parameter overrides the project dialect.
func (h *Handlers) DownloadSQL(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	tag := snap.Dialect
	if q := r.URL.Query().Get("dialect"); q != "" {
		tag = q
	}
	gen := sqlgen.New(tag, sqlgen.WithLogger(h.logger))
	script := gen.GenerateFullSQL(snap.Tables, snap.Relationships)

	name := strings.ReplaceAll(snap.Name, " ", "_")
	if name == "" {
		name = "schema"
	}
	w.Header().Set("Content-Type", "application/sql")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".sql"))
	if _, err := w.Write([]byte(script)); err != nil {
		h.logger.Error("export write failed", "error", err)
	}
}
