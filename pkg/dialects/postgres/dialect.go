// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import "github.com/canvasql/canvasql/pkg/dialect"

func init() {
	dialect.Register(Postgres)
}

// Types is the PostgreSQL base-type vocabulary. Serial types stand in
// for auto-increment, which has no column-level token in this dialect.
var Types = []string{
	"SMALLINT", "INTEGER", "BIGINT",
	"SMALLSERIAL", "SERIAL", "BIGSERIAL",
	"DECIMAL", "NUMERIC", "REAL", "DOUBLE PRECISION", "MONEY",
	"CHAR", "VARCHAR", "TEXT", "BYTEA",
	"DATE", "TIME", "TIMETZ", "TIMESTAMP", "TIMESTAMPTZ", "INTERVAL",
	"BOOLEAN", "UUID", "JSON", "JSONB", "XML",
	"CIDR", "INET", "MACADDR",
	"POINT", "LINE", "LSEG", "BOX", "PATH", "POLYGON", "CIRCLE",
}

// Postgres is the PostgreSQL dialect: double-quoted identifiers, no
// auto-increment token, no inline charset or table options.
var Postgres = &dialect.Dialect{
	Name:       "postgresql",
	QuoteOpen:  `"`,
	QuoteClose: `"`,
	DataTypes:  Types,
}
