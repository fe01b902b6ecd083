// Package commands contains the CanvaSQL CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/canvasql/canvasql/internal/config"
	"github.com/canvasql/canvasql/internal/state"

	_ "github.com/canvasql/canvasql/pkg/dialects/all"
)

// loadStore creates a project store and loads the project file when it
// exists. A missing file is not an error; the store starts empty so a
// fresh workspace works without setup.
func loadStore(cfg *config.Config, logger *slog.Logger) (*state.Store, error) {
	store := state.New(nil, logger)
	store.SetDialect(cfg.Dialect)

	if _, err := os.Stat(cfg.ProjectFile); os.IsNotExist(err) {
		logger.Debug("project file not found, starting empty", "file", cfg.ProjectFile)
		return store, nil
	}

	if err := state.LoadFile(store, cfg.ProjectFile); err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	logger.Debug("project loaded", "file", cfg.ProjectFile)
	return store, nil
}

// resolveDialect picks the generation dialect. An explicit --dialect
// flag wins, then the project file's own dialect, then the configured
// default.
func resolveDialect(cmd *cobra.Command, cfg *config.Config, projectDialect string) string {
	if cmd.Root().PersistentFlags().Changed("dialect") {
		return cfg.Dialect
	}
	if projectDialect != "" {
		return projectDialect
	}
	return cfg.Dialect
}
