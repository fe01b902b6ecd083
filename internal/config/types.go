// Package config provides configuration loading for CanvaSQL.
// Precedence: defaults < config file < environment < CLI flags.
package config

// ServerConfig holds the designer UI server settings.
type ServerConfig struct {
	Port          int    `koanf:"port"`
	SessionSecret string `koanf:"session_secret"`
	Watch         bool   `koanf:"watch"`
}

// SupabaseConfig holds the backend-as-a-service connector settings.
type SupabaseConfig struct {
	URL     string `koanf:"url"`
	AnonKey string `koanf:"anon_key"`
}

// GitHostConfig holds the source-hosting connector settings: a single
// JSON project file at a repository path.
type GitHostConfig struct {
	Token  string `koanf:"token"`
	Owner  string `koanf:"owner"`
	Repo   string `koanf:"repo"`
	Path   string `koanf:"path"`
	Branch string `koanf:"branch"`
}

// PostgresConfig holds the Postgres-backed remote store settings used
// for connectivity probing and schema sync.
type PostgresConfig struct {
	DSN string `koanf:"dsn"`
}

// RemoteConfig groups the remote connector settings.
type RemoteConfig struct {
	Supabase SupabaseConfig `koanf:"supabase"`
	GitHost  GitHostConfig  `koanf:"githost"`
	Postgres PostgresConfig `koanf:"postgres"`
}

// Config is the root configuration.
type Config struct {
	ProjectFile string       `koanf:"project_file"`
	Dialect     string       `koanf:"dialect"`
	Verbose     bool         `koanf:"verbose"`
	Server      ServerConfig `koanf:"server"`
	Remote      RemoteConfig `koanf:"remote"`
}
