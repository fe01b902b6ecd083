package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultProjectFile, cfg.ProjectFile)
	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.True(t, cfg.Server.Watch)
	assert.Equal(t, DefaultGitBranch, cfg.Remote.GitHost.Branch)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvasql.yaml")
	content := `
dialect: postgresql
server:
  port: 3000
remote:
  supabase:
    url: https://example.supabase.co
    anon_key: anon123
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "postgresql", cfg.Dialect)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://example.supabase.co", cfg.Remote.Supabase.URL)
	assert.Equal(t, "anon123", cfg.Remote.Supabase.AnonKey)
	assert.Equal(t, path, ConfigFileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvasql.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: sqlite\n"), 0o644))

	t.Setenv("CANVASQL_DIALECT", "oracle")
	t.Setenv("CANVASQL_SERVER__PORT", "9000")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "oracle", cfg.Dialect)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	t.Setenv("CANVASQL_DIALECT", "oracle")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "", "")
	flags.String("project", "", "")
	flags.Int("port", 0, "")
	require.NoError(t, flags.Parse([]string{"--dialect=mariadb", "--project=my.json", "--port=4242"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "mariadb", cfg.Dialect)
	assert.Equal(t, "my.json", cfg.ProjectFile)
	assert.Equal(t, 4242, cfg.Server.Port)
}

func TestLoadUnsetFlagsDoNotOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "sqlite", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultDialect, cfg.Dialect)
}
