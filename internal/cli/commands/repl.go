package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/canvasql/canvasql/internal/config"
	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/internal/runner"
	"github.com/canvasql/canvasql/internal/state"
	"github.com/canvasql/canvasql/pkg/dialect"
	"github.com/canvasql/canvasql/pkg/sqlgen"
)

// ReplOptions holds options for the repl command.
type ReplOptions struct {
	Limit int
}

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	opts := &ReplOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive schema explorer",
		Long: `Start an interactive shell over the project's schema.

Type a table name to see the generated SELECT and sample rows from the
canned runner. The rows are fixed previews, not real data.`,
		Example: `  # Explore the default project
  canvasql repl

  # Explore with PostgreSQL generation
  canvasql repl --dialect postgresql`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "Row limit for generated SELECTs")

	return cmd
}

func runRepl(cmd *cobra.Command, opts *ReplOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}
	snap := store.Snapshot()
	tag := resolveDialect(cmd, cfg, snap.Dialect)
	gen := sqlgen.New(tag, sqlgen.WithLogger(logger))

	historyFile := filepath.Join(filepath.Dir(cfg.ProjectFile), ".canvasql_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "canvasql> ",
		HistoryFile:     historyFile,
		AutoComplete:    newTableCompleter(snap),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "CanvaSQL schema explorer (project: %s, dialect: %s)\n", cfg.ProjectFile, gen.Dialect())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type a table name for a preview, .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			gen = handleDotCommand(cmd, store, gen, line)
			continue
		}

		if err := previewTable(cmd, store, gen, line, opts.Limit); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// previewTable generates a SELECT for the named table and renders the
// canned rows. Anything after the table name is a verbatim WHERE clause.
func previewTable(cmd *cobra.Command, store *state.Store, gen *sqlgen.Generator, line string, limit int) error {
	name, where, _ := strings.Cut(line, " ")

	snap := store.Snapshot()
	tbl := findTable(snap, name)
	if tbl == nil {
		return fmt.Errorf("unknown table: %s", name)
	}

	stmt := gen.Select(tbl.Name, nil, strings.TrimSpace(where), "", limit)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), stmt)

	run, err := runner.New()
	if err != nil {
		return fmt.Errorf("query runner unavailable: %w", err)
	}
	defer func() { _ = run.Close() }()

	res, err := run.Query(cmd.Context(), *tbl, stmt)
	if err != nil {
		return err
	}
	runner.Render(cmd.OutOrStdout(), res)
	return nil
}

func handleDotCommand(cmd *cobra.Command, store *state.Store, gen *sqlgen.Generator, line string) *sqlgen.Generator {
	out := cmd.OutOrStdout()
	parts := strings.Fields(line)

	switch strings.ToLower(parts[0]) {
	case ".help":
		printReplHelp(out)

	case ".tables":
		listTables(out, store.Snapshot())

	case ".schema":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .schema <table>")
			return gen
		}
		snap := store.Snapshot()
		tbl := findTable(snap, parts[1])
		if tbl == nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown table: %s\n", parts[1])
			return gen
		}
		_, _ = fmt.Fprintln(out, gen.CreateTable(*tbl, snap.Relationships, snap.Tables))

	case ".sql":
		snap := store.Snapshot()
		script := gen.GenerateFullSQL(snap.Tables, snap.Relationships)
		if script == "" {
			script = "-- no tables yet"
		}
		_, _ = fmt.Fprintln(out, script)

	case ".dialect":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(out, "Current dialect: %s (available: %s)\n", gen.Dialect(), strings.Join(dialect.List(), ", "))
			return gen
		}
		if _, ok := dialect.Get(parts[1]); !ok {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown dialect: %s\n", parts[1])
			return gen
		}
		return sqlgen.New(parts[1], sqlgen.WithLogger(config.GetLogger(cmd.Context())))

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", parts[0])
	}

	return gen
}

func listTables(w io.Writer, p *model.Project) {
	if len(p.Tables) == 0 {
		_, _ = fmt.Fprintln(w, "No tables in project")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Table", "Columns"})
	for _, tbl := range p.Tables {
		t.AppendRow(table.Row{tbl.Name, len(tbl.Columns)})
	}
	t.Render()
}

func findTable(p *model.Project, name string) *model.Table {
	for i := range p.Tables {
		if p.Tables[i].Name == name {
			return &p.Tables[i]
		}
	}
	return nil
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .tables          List tables in the project
  .schema <table>  Show the CREATE TABLE statement for a table
  .sql             Show the whole-schema script
  .dialect [tag]   Show or switch the generation dialect
  .clear           Clear the screen
  .quit / .exit    Exit

Tips:
  - Type a table name to preview a SELECT with sample rows
  - Anything after the table name becomes the WHERE clause
  - Tab completion works for table names
`
	_, _ = fmt.Fprintln(w, help)
}

// newTableCompleter creates a readline completer for table names.
func newTableCompleter(p *model.Project) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, t := range p.Tables {
		items = append(items, readline.PcItem(t.Name))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".schema"),
		readline.PcItem(".sql"),
		readline.PcItem(".dialect"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
