package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvasql/canvasql/internal/config"
	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/pkg/sqlgen"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	Statements bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the generated SQL script",
		Long: `Generate the whole-schema SQL script from the project file and print
it to stdout.

The dialect comes from --dialect, the project file, or the configured
default, in that order.`,
		Example: `  # Print the script for the project's dialect
  canvasql generate

  # Regenerate for PostgreSQL
  canvasql generate --dialect postgresql

  # One statement per schema object instead of the table script
  canvasql generate --statements`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Statements, "statements", false, "Print one statement per schema object")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	store, err := loadStore(cfg, logger)
	if err != nil {
		return err
	}
	snap := store.Snapshot()

	tag := resolveDialect(cmd, cfg, snap.Dialect)
	gen := sqlgen.New(tag, sqlgen.WithLogger(logger))
	logger.Debug("generating SQL", "dialect", gen.Dialect(), "tables", len(snap.Tables))

	out := cmd.OutOrStdout()
	if !opts.Statements {
		script := gen.GenerateFullSQL(snap.Tables, snap.Relationships)
		if script == "" {
			return fmt.Errorf("project has no tables: %s", cfg.ProjectFile)
		}
		_, _ = fmt.Fprintln(out, script)
		return nil
	}

	for _, stmt := range allStatements(gen, snap) {
		_, _ = fmt.Fprintln(out, stmt)
		_, _ = fmt.Fprintln(out)
	}
	return nil
}

// allStatements generates one statement per schema object, in catalog
// order: databases, tables, indexes, views, routines, triggers, users.
func allStatements(gen *sqlgen.Generator, p *model.Project) []string {
	var stmts []string

	for _, db := range p.Databases {
		stmts = append(stmts, gen.CreateDatabase(db))
	}
	for _, t := range p.Tables {
		stmts = append(stmts, gen.CreateTable(t, p.Relationships, p.Tables))
	}
	for _, idx := range p.Indexes {
		tableName := ""
		if t, ok := p.TableByID(idx.TableID); ok {
			tableName = t.Name
		}
		stmts = append(stmts, gen.CreateIndex(idx, tableName))
	}
	for _, v := range p.Views {
		stmts = append(stmts, gen.CreateView(v))
	}
	for _, proc := range p.Procedures {
		stmts = append(stmts, gen.CreateProcedure(proc))
	}
	for _, trg := range p.Triggers {
		tableName := ""
		if t, ok := p.TableByID(trg.TableID); ok {
			tableName = t.Name
		}
		stmts = append(stmts, gen.CreateTrigger(trg, tableName))
	}
	var currentDB string
	if db, ok := p.CurrentDatabase(); ok {
		currentDB = db.Name
	}
	for _, u := range p.Users {
		stmts = append(stmts, gen.CreateUser(u), gen.GrantPrivileges(u, currentDB, ""))
	}

	return stmts
}
