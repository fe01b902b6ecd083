package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canvasql/canvasql/internal/config"
	"github.com/canvasql/canvasql/internal/remote/githost"
	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/pkg/sqlgen"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Output string
	Remote bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the generated SQL script to a file",
		Long: `Generate the whole-schema SQL script and write it to a .sql file.

With --remote the project file itself is also pushed to the configured
git host, updating the existing file when one is already there.`,
		Example: `  # Write <project name>.sql in the current directory
  canvasql export

  # Write to an explicit path, regenerated for SQLite
  canvasql export --output schema.sql --dialect sqlite

  # Also push the project file to the configured git host
  canvasql export --remote`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output path (default: <project name>.sql)")
	cmd.Flags().BoolVar(&opts.Remote, "remote", false, "Push the project file to the configured git host")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}
	snap := store.Snapshot()

	tag := resolveDialect(cmd, cfg, snap.Dialect)
	gen := sqlgen.New(tag, sqlgen.WithLogger(logger))
	script := gen.GenerateFullSQL(snap.Tables, snap.Relationships)
	if script == "" {
		return fmt.Errorf("project has no tables: %s", cfg.ProjectFile)
	}

	output := opts.Output
	if output == "" {
		name := strings.ReplaceAll(snap.Name, " ", "_")
		if name == "" {
			name = "schema"
		}
		output = name + ".sql"
	}

	if err := os.WriteFile(output, []byte(script+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", output, gen.Dialect())

	if opts.Remote {
		return pushProject(cmd, cfg, store)
	}
	return nil
}

// pushProject uploads the project JSON to the configured git host. An
// existing remote file is updated in place using its revision marker.
func pushProject(cmd *cobra.Command, cfg *config.Config, store *state.Store) error {
	gh := cfg.Remote.GitHost
	if gh.Token == "" || gh.Owner == "" || gh.Repo == "" || gh.Path == "" {
		return errors.New("git host is not configured (remote.githost)")
	}

	client := githost.New(gh.Token, gh.Owner, gh.Repo, gh.Branch)

	var revision string
	existing, err := client.Get(cmd.Context(), gh.Path)
	switch {
	case err == nil:
		revision = existing.Revision
	case errors.Is(err, githost.ErrNotFound):
		// First push creates the file
	default:
		return fmt.Errorf("failed to check remote project: %w", err)
	}

	var buf bytes.Buffer
	if err := store.Export(&buf); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	newRevision, err := client.Put(cmd.Context(), gh.Path, "Update schema project", buf.Bytes(), revision)
	if err != nil {
		return fmt.Errorf("failed to push project: %w", err)
	}

	branch := gh.Branch
	if branch == "" {
		branch = config.DefaultGitBranch
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %s to %s/%s@%s (%s)\n",
		gh.Path, gh.Owner, gh.Repo, branch, shortRevision(newRevision))
	return nil
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
