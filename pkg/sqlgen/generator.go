// Package sqlgen translates schema entity records into dialect-flavored
// SQL text. The generator is stateless aside from the dialect bound at
// construction: it never mutates its inputs, performs no I/O and never
// returns an error. Malformed input degrades to omitted clauses, with a
// diagnostic on the generator's logger.
package sqlgen

import (
	"log/slog"
	"strings"

	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/pkg/dialect"
)

// Generator emits DDL and DML statements for one SQL dialect.
type Generator struct {
	d      *dialect.Dialect
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for dangling-reference diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New returns a generator bound to the given dialect tag. Unrecognized
// tags fall back to unquoted identifiers and default clause rules.
func New(dialectTag string, opts ...Option) *Generator {
	g := &Generator{
		d:      dialect.GetOrFallback(dialectTag),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dialect returns the name of the bound dialect.
func (g *Generator) Dialect() string {
	return g.d.Name
}

func (g *Generator) quote(name string) string {
	return g.d.QuoteIdentifier(name)
}

// GenerateFullSQL produces one CREATE TABLE statement per table, in
// input order, joined by blank lines. This is the whole-schema entry
// point used by the preview panel and the export action.
func (g *Generator) GenerateFullSQL(tables []model.Table, relationships []model.Relationship) string {
	stmts := make([]string, 0, len(tables))
	for _, t := range tables {
		stmts = append(stmts, g.CreateTable(t, relationships, tables))
	}
	return strings.Join(stmts, "\n\n")
}
