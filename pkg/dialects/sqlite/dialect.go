// Package sqlite provides the SQLite SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package sqlite

import "github.com/canvasql/canvasql/pkg/dialect"

func init() {
	dialect.Register(SQLite)
}

// Types is the SQLite affinity vocabulary.
var Types = []string{
	"INTEGER", "REAL", "NUMERIC", "TEXT", "BLOB",
	"VARCHAR", "CHAR", "BOOLEAN", "DATE", "DATETIME",
}

// SQLite is the SQLite dialect: double-quoted identifiers and the
// AUTOINCREMENT keyword (no underscore).
var SQLite = &dialect.Dialect{
	Name:          "sqlite",
	QuoteOpen:     `"`,
	QuoteClose:    `"`,
	AutoIncrement: " AUTOINCREMENT",
	DataTypes:     Types,
}
