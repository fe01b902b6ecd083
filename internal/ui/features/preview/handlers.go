package preview

import (
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/internal/runner"
	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/pkg/sqlgen"
)

const sessionName = "canvasql"

// Handlers provides HTTP handlers for the preview feature.
type Handlers struct {
	store        *state.Store
	sessionStore sessions.Store
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *state.Store, sessionStore sessions.Store, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, sessionStore: sessionStore, logger: logger}
}

// dialectFor picks the preview dialect: an explicit ?dialect= override
// is remembered in the session, otherwise the project's dialect is used.
func (h *Handlers) dialectFor(w http.ResponseWriter, r *http.Request, p *model.Project) string {
	session, _ := h.sessionStore.Get(r, sessionName)
	if tag := r.URL.Query().Get("dialect"); tag != "" {
		session.Values["preview_dialect"] = tag
		_ = session.Save(r, w)
		return tag
	}
	if tag, ok := session.Values["preview_dialect"].(string); ok && tag != "" {
		return tag
	}
	return p.Dialect
}

// FullSQLSSE streams the regenerated whole-schema script into the
// preview panel.
func (h *Handlers) FullSQLSSE(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	snap := h.store.Snapshot()
	tag := h.dialectFor(w, r, snap)
	gen := sqlgen.New(tag, sqlgen.WithLogger(h.logger))

	script := gen.GenerateFullSQL(snap.Tables, snap.Relationships)
	if script == "" {
		script = "-- no tables yet"
	}
	elem := fmt.Sprintf(`<pre id="sql-preview">%s</pre>`, html.EscapeString(script))
	if err := sse.PatchElements(elem); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// statementsResponse groups per-entity statements by kind.
type statementsResponse struct {
	Dialect    string   `json:"dialect"`
	Databases  []string `json:"databases,omitempty"`
	Tables     []string `json:"tables,omitempty"`
	Indexes    []string `json:"indexes,omitempty"`
	Views      []string `json:"views,omitempty"`
	Procedures []string `json:"procedures,omitempty"`
	Triggers   []string `json:"triggers,omitempty"`
	Users      []string `json:"users,omitempty"`
}

// Statements returns one generated statement per entity in the project.
func (h *Handlers) Statements(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	tag := h.dialectFor(w, r, snap)
	gen := sqlgen.New(tag, sqlgen.WithLogger(h.logger))

	resp := statementsResponse{Dialect: gen.Dialect()}
	for _, db := range snap.Databases {
		resp.Databases = append(resp.Databases, gen.CreateDatabase(db))
	}
	for _, t := range snap.Tables {
		resp.Tables = append(resp.Tables, gen.CreateTable(t, snap.Relationships, snap.Tables))
	}
	for _, idx := range snap.Indexes {
		tableName := ""
		if t, ok := snap.TableByID(idx.TableID); ok {
			tableName = t.Name
		}
		resp.Indexes = append(resp.Indexes, gen.CreateIndex(idx, tableName))
	}
	for _, v := range snap.Views {
		resp.Views = append(resp.Views, gen.CreateView(v))
	}
	for _, p := range snap.Procedures {
		resp.Procedures = append(resp.Procedures, gen.CreateProcedure(p))
	}
	for _, trg := range snap.Triggers {
		tableName := ""
		if t, ok := snap.TableByID(trg.TableID); ok {
			tableName = t.Name
		}
		resp.Triggers = append(resp.Triggers, gen.CreateTrigger(trg, tableName))
	}
	var currentDB string
	if db, ok := snap.CurrentDatabase(); ok {
		currentDB = db.Name
	}
	for _, u := range snap.Users {
		resp.Users = append(resp.Users,
			gen.CreateUser(u),
			gen.GrantPrivileges(u, currentDB, ""))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

type queryRequest struct {
	TableID string   `json:"tableId"`
	Columns []string `json:"columns,omitempty"`
	Where   string   `json:"where,omitempty"`
	OrderBy string   `json:"orderBy,omitempty"`
	Limit   int      `json:"limit,omitempty"`
}

type queryResponse struct {
	Statement string     `json:"statement"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
}

// RunQuery builds a SELECT for the table and serves it from the canned
// runner. The rows are fixed samples, not real data.
func (h *Handlers) RunQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snap := h.store.Snapshot()
	tbl, ok := snap.TableByID(req.TableID)
	if !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	tag := h.dialectFor(w, r, snap)
	gen := sqlgen.New(tag, sqlgen.WithLogger(h.logger))
	stmt := gen.Select(tbl.Name, req.Columns, req.Where, req.OrderBy, req.Limit)

	run, err := runner.New()
	if err != nil {
		h.logger.Error("query runner unavailable", "error", err)
		http.Error(w, "query runner unavailable", http.StatusInternalServerError)
		return
	}
	defer func() { _ = run.Close() }()

	res, err := run.Query(r.Context(), *tbl, stmt)
	if err != nil {
		h.logger.Error("canned query failed", "statement", stmt, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(queryResponse{Statement: stmt, Columns: res.Columns, Rows: res.Rows})
}
