package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasql/canvasql/internal/config"
	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/internal/testutil"
	"github.com/canvasql/canvasql/pkg/sqlgen"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "CanvaSQL v1.2.3")
	assert.Contains(t, buf.String(), "Visual Schema Designer")
}

func TestNewServeCommand(t *testing.T) {
	cmd := NewServeCommand()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"port", "no-browser", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewGenerateCommand(t *testing.T) {
	cmd := NewGenerateCommand()

	assert.Equal(t, "generate", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("statements"), "flag statements should exist")
}

func TestNewExportCommand(t *testing.T) {
	cmd := NewExportCommand()

	assert.Equal(t, "export", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"output", "remote"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewProbeCommand(t *testing.T) {
	cmd := NewProbeCommand()

	assert.Equal(t, "probe [supabase|postgres|githost]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewReplCommand(t *testing.T) {
	cmd := NewReplCommand()

	assert.Equal(t, "repl", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("limit"), "flag limit should exist")
}

// writeTestProject saves a one-table project file and returns its path.
func writeTestProject(t *testing.T) string {
	t.Helper()

	store := state.New(&model.Project{Name: "shop", Dialect: "mysql"}, testutil.NewTestLogger(t))
	store.AddTable(model.Table{
		Name: "users",
		Columns: []model.Column{
			{Name: "id", Type: "INT", PrimaryKey: true, NotNull: true, AutoIncrement: true},
		},
	})

	path := filepath.Join(t.TempDir(), "project.canvasql.json")
	require.NoError(t, state.SaveFile(store, path))
	return path
}

// testCommandContext wires a config and logger the way the root command
// does in PersistentPreRunE.
func testCommandContext(t *testing.T, cmd *cobra.Command, cfg *config.Config) {
	t.Helper()
	cmd.SetContext(config.NewContext(context.Background(), cfg, testutil.NewTestLogger(t)))
}

func TestRunGenerate(t *testing.T) {
	cmd := NewGenerateCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	testCommandContext(t, cmd, &config.Config{
		ProjectFile: writeTestProject(t),
		Dialect:     "mysql",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "CREATE TABLE `users`")
	assert.Contains(t, buf.String(), "AUTO_INCREMENT")
}

func TestRunGenerateMissingTables(t *testing.T) {
	store := state.New(nil, testutil.NewTestLogger(t))
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, state.SaveFile(store, path))

	cmd := NewGenerateCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	testCommandContext(t, cmd, &config.Config{ProjectFile: path, Dialect: "mysql"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tables")
}

func TestRunExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "schema.sql")

	cmd := NewExportCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--output", output})
	testCommandContext(t, cmd, &config.Config{
		ProjectFile: writeTestProject(t),
		Dialect:     "mysql",
	})

	require.NoError(t, cmd.Execute())

	script, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(script), "CREATE TABLE `users`")
	assert.Contains(t, buf.String(), "schema.sql")
}

func TestRunProbeNothingConfigured(t *testing.T) {
	cmd := NewProbeCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	testCommandContext(t, cmd, &config.Config{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No remote backends configured")
}

func TestLoadStoreMissingFileStartsEmpty(t *testing.T) {
	cfg := &config.Config{
		ProjectFile: filepath.Join(t.TempDir(), "does-not-exist.json"),
		Dialect:     "sqlite",
	}

	store, err := loadStore(cfg, testutil.NewTestLogger(t))
	require.NoError(t, err)

	snap := store.Snapshot()
	assert.Empty(t, snap.Tables)
	assert.Equal(t, "sqlite", snap.Dialect)
}

func TestFindTable(t *testing.T) {
	p := &model.Project{Tables: []model.Table{{ID: "t1", Name: "users"}}}

	assert.NotNil(t, findTable(p, "users"))
	assert.Nil(t, findTable(p, "orders"))
}

func TestAllStatementsOrder(t *testing.T) {
	store := state.New(&model.Project{Name: "shop", Dialect: "mysql"}, testutil.NewTestLogger(t))
	db := store.AddDatabase(model.Database{Name: "shop"})
	store.SetCurrentDatabase(db.ID)
	tbl := store.AddTable(model.Table{
		Name:    "users",
		Columns: []model.Column{{Name: "id", Type: "INT", PrimaryKey: true}},
	})
	store.AddIndex(model.Index{Name: "idx_users_id", TableID: tbl.ID, Columns: []string{"id"}})
	store.AddUser(model.User{Username: "app"})

	gen := sqlgen.New("mysql", sqlgen.WithLogger(testutil.NewTestLogger(t)))
	stmts := allStatements(gen, store.Snapshot())

	require.Len(t, stmts, 5)
	assert.True(t, strings.HasPrefix(stmts[0], "CREATE DATABASE"))
	assert.True(t, strings.HasPrefix(stmts[1], "CREATE TABLE"))
	assert.True(t, strings.HasPrefix(stmts[2], "CREATE INDEX"))
	assert.True(t, strings.HasPrefix(stmts[3], "CREATE USER"))
	assert.True(t, strings.HasPrefix(stmts[4], "GRANT"))
}
