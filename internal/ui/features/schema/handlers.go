package schema

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/internal/state"
)

// Handlers provides HTTP handlers for the schema feature.
type Handlers struct {
	store  *state.Store
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *state.Store, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// AddTable adds a table record from the request body.
func (h *Handlers) AddTable(w http.ResponseWriter, r *http.Request) {
	var t model.Table
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid table")
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddTable(t))
}

// UpdateTable replaces a table record by ID.
func (h *Handlers) UpdateTable(w http.ResponseWriter, r *http.Request) {
	var t model.Table
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeError(w, http.StatusBadRequest, "invalid table")
		return
	}
	t.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateTable(t); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DeleteTable removes a table and its dependents.
func (h *Handlers) DeleteTable(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteTable(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddRelationship draws a relationship edge; the target column is
// marked as a foreign key by the store.
func (h *Handlers) AddRelationship(w http.ResponseWriter, r *http.Request) {
	var rel model.Relationship
	if err := json.NewDecoder(r.Body).Decode(&rel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid relationship")
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddRelationship(rel))
}

// DeleteRelationship removes an edge and clears the foreign-key mark.
func (h *Handlers) DeleteRelationship(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteRelationship(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddIndex adds an index record.
func (h *Handlers) AddIndex(w http.ResponseWriter, r *http.Request) {
	var idx model.Index
	if err := json.NewDecoder(r.Body).Decode(&idx); err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddIndex(idx))
}

// UpdateIndex replaces an index record by ID.
func (h *Handlers) UpdateIndex(w http.ResponseWriter, r *http.Request) {
	var idx model.Index
	if err := json.NewDecoder(r.Body).Decode(&idx); err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}
	idx.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateIndex(idx); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, idx)
}

// DeleteIndex removes an index record.
func (h *Handlers) DeleteIndex(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteIndex(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
