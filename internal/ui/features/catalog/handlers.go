package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/internal/state"
)

// Handlers provides HTTP handlers for the catalog feature.
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

func decode[T any](w http.ResponseWriter, r *http.Request, kind string) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+kind)
		return v, false
	}
	return v, true
}

// AddDatabase adds a database record.
func (h *Handlers) AddDatabase(w http.ResponseWriter, r *http.Request) {
	db, ok := decode[model.Database](w, r, "database")
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddDatabase(db))
}

// UpdateDatabase replaces a database record by ID.
func (h *Handlers) UpdateDatabase(w http.ResponseWriter, r *http.Request) {
	db, ok := decode[model.Database](w, r, "database")
	if !ok {
		return
	}
	db.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateDatabase(db); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, db)
}

// DeleteDatabase removes a database record.
func (h *Handlers) DeleteDatabase(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteDatabase(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// UseDatabase moves the current-database pointer.
func (h *Handlers) UseDatabase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.store.SetCurrentDatabase(id)
	writeJSON(w, http.StatusOK, map[string]string{"currentDatabaseId": id})
}

// AddView adds a view record.
func (h *Handlers) AddView(w http.ResponseWriter, r *http.Request) {
	v, ok := decode[model.View](w, r, "view")
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddView(v))
}

// UpdateView replaces a view record by ID.
func (h *Handlers) UpdateView(w http.ResponseWriter, r *http.Request) {
	v, ok := decode[model.View](w, r, "view")
	if !ok {
		return
	}
	v.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateView(v); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// DeleteView removes a view record.
func (h *Handlers) DeleteView(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteView(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddProcedure adds a stored-routine record.
func (h *Handlers) AddProcedure(w http.ResponseWriter, r *http.Request) {
	p, ok := decode[model.Procedure](w, r, "procedure")
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddProcedure(p))
}

// UpdateProcedure replaces a stored-routine record by ID.
func (h *Handlers) UpdateProcedure(w http.ResponseWriter, r *http.Request) {
	p, ok := decode[model.Procedure](w, r, "procedure")
	if !ok {
		return
	}
	p.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateProcedure(p); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProcedure removes a stored-routine record.
func (h *Handlers) DeleteProcedure(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteProcedure(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddTrigger adds a trigger record.
func (h *Handlers) AddTrigger(w http.ResponseWriter, r *http.Request) {
	t, ok := decode[model.Trigger](w, r, "trigger")
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddTrigger(t))
}

// UpdateTrigger replaces a trigger record by ID.
func (h *Handlers) UpdateTrigger(w http.ResponseWriter, r *http.Request) {
	t, ok := decode[model.Trigger](w, r, "trigger")
	if !ok {
		return
	}
	t.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateTrigger(t); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DeleteTrigger removes a trigger record.
func (h *Handlers) DeleteTrigger(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteTrigger(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// AddUser adds a user record.
func (h *Handlers) AddUser(w http.ResponseWriter, r *http.Request) {
	u, ok := decode[model.User](w, r, "user")
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, h.store.AddUser(u))
}

// UpdateUser replaces a user record by ID.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	u, ok := decode[model.User](w, r, "user")
	if !ok {
		return
	}
	u.ID = chi.URLParam(r, "id")
	if err := h.store.UpdateUser(u); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// DeleteUser removes a user record.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteUser(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
