package project

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/internal/testutil"

	_ "github.com/canvasql/canvasql/pkg/dialects/all"
)

func setupTestRouter(t *testing.T, projectFile string) (*chi.Mux, *state.Store) {
	t.Helper()

	store := state.New(&model.Project{Name: "shop", Dialect: "mysql"}, testutil.NewTestLogger(t))
	mux := chi.NewMux()
	require.NoError(t, SetupRoutes(mux, store, projectFile, testutil.NewTestLogger(t)))
	return mux, store
}

func TestGetProject(t *testing.T) {
	mux, store := setupTestRouter(t, "")
	store.AddTable(model.Table{Name: "users"})

	req := httptest.NewRequest(http.MethodGet, "/api/project", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"name": "shop"`)
	assert.Contains(t, rec.Body.String(), `"users"`)
}

func TestImportProject(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid project replaces the tree",
			body:       `{"name":"imported","dialect":"sqlite","tables":[{"id":"t1","name":"orders","columns":[]}]}`,
			wantStatus: http.StatusOK,
			wantBody:   "imported",
		},
		{
			name:       "malformed JSON is rejected",
			body:       `{"name": "broken`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid project file",
		},
		{
			name:       "unknown fields are tolerated",
			body:       `{"name":"tolerant","futureField":42,"tables":[]}`,
			wantStatus: http.StatusOK,
			wantBody:   "imported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := setupTestRouter(t, "")

			req := httptest.NewRequest(http.MethodPut, "/api/project", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestSaveAndLoadProject(t *testing.T) {
	projectFile := filepath.Join(t.TempDir(), "project.canvasql.json")
	mux, store := setupTestRouter(t, projectFile)
	store.AddTable(model.Table{Name: "users"})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/project/save", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// Wipe in memory, then load back from disk
	store.Replace(&model.Project{Name: "empty", Dialect: "mysql"})

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/project/load", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	snap := store.Snapshot()
	require.Len(t, snap.Tables, 1)
	assert.Equal(t, "users", snap.Tables[0].Name)
}

func TestSetDialect(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"known dialect", `{"dialect":"postgresql"}`, http.StatusOK},
		{"unknown dialect", `{"dialect":"mssql"}`, http.StatusBadRequest},
		{"malformed body", `dialect=mysql`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, store := setupTestRouter(t, "")

			req := httptest.NewRequest(http.MethodPost, "/api/project/dialect", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "postgresql", store.Snapshot().Dialect)
			}
		})
	}
}

func TestListDialects(t *testing.T) {
	mux, _ := setupTestRouter(t, "")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dialects", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, name := range []string{"mysql", "mariadb", "postgresql", "sqlite", "oracle"} {
		assert.Contains(t, body, name)
	}
	assert.Contains(t, body, "VARCHAR")
}
