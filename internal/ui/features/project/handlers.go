package project

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/pkg/dialect"
)

// Handlers provides HTTP handlers for the project feature.
type Handlers struct {
	store       *state.Store
	projectFile string
	logger      *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *state.Store, projectFile string, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, projectFile: projectFile, logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Get returns the whole project tree as JSON.
func (h *Handlers) Get(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.store.Export(w); err != nil {
		h.logger.Error("project export failed", "error", err)
	}
}

// Import replaces the project tree with the request body. Malformed
// JSON is reported as a single invalid-file error.
func (h *Handlers) Import(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Import(r.Body); err != nil {
		h.logger.Warn("project import rejected", "error", err)
		writeError(w, http.StatusBadRequest, "invalid project file")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

// Save writes the project tree to the configured project file.
func (h *Handlers) Save(w http.ResponseWriter, _ *http.Request) {
	if h.projectFile == "" {
		writeError(w, http.StatusBadRequest, "no project file configured")
		return
	}
	if err := state.SaveFile(h.store, h.projectFile); err != nil {
		h.logger.Error("project save failed", "file", h.projectFile, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved", "file": h.projectFile})
}

// Load replaces the project tree from the configured project file.
func (h *Handlers) Load(w http.ResponseWriter, _ *http.Request) {
	if h.projectFile == "" {
		writeError(w, http.StatusBadRequest, "no project file configured")
		return
	}
	if err := state.LoadFile(h.store, h.projectFile); err != nil {
		h.logger.Error("project load failed", "file", h.projectFile, "error", err)
		writeError(w, http.StatusBadRequest, "invalid project file")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "file": h.projectFile})
}

// SetDialect switches the project's active dialect.
func (h *Handlers) SetDialect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Dialect string `json:"dialect"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, ok := dialect.Get(body.Dialect); !ok {
		writeError(w, http.StatusBadRequest, "unknown dialect: "+body.Dialect)
		return
	}
	h.store.SetDialect(body.Dialect)
	writeJSON(w, http.StatusOK, map[string]string{"dialect": body.Dialect})
}

// ListDialects returns the registered dialect names and their type
// vocabularies for the column editors.
func (h *Handlers) ListDialects(w http.ResponseWriter, _ *http.Request) {
	type dialectInfo struct {
		Name      string   `json:"name"`
		DataTypes []string `json:"dataTypes"`
	}
	infos := make([]dialectInfo, 0)
	for _, name := range dialect.List() {
		d, _ := dialect.Get(name)
		infos = append(infos, dialectInfo{Name: d.Name, DataTypes: d.DataTypes})
	}
	writeJSON(w, http.StatusOK, infos)
}
