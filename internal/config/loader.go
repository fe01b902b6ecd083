package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultProjectFile = "project.canvasql.json"
	DefaultDialect     = "mysql"
	DefaultPort        = 8765
	DefaultGitBranch   = "main"
)

var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > canvasql.yaml > canvasql.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"canvasql.yaml", "canvasql.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ConfigFileUsed returns the path of the config file loaded by the last
// Load call, or empty when none was found.
func ConfigFileUsed() string {
	return configFileUsed
}

// Load loads configuration from file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"project_file":          DefaultProjectFile,
		"dialect":               DefaultDialect,
		"verbose":               false,
		"server.port":           DefaultPort,
		"server.watch":          true,
		"remote.githost.branch": DefaultGitBranch,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// Double underscore separates nesting levels:
	// CANVASQL_SERVER__PORT -> server.port, CANVASQL_PROJECT_FILE -> project_file
	if err := k.Load(env.Provider("CANVASQL_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "CANVASQL_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			switch f.Name {
			case "project":
				return "project_file", posflag.FlagVal(flags, f)
			case "port":
				return "server.port", posflag.FlagVal(flags, f)
			case "watch":
				return "server.watch", posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
