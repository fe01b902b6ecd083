// Package mysql provides the MySQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package mysql

import "github.com/canvasql/canvasql/pkg/dialect"

func init() {
	dialect.Register(MySQL)
}

// Types is the MySQL base-type vocabulary offered by the column editor.
var Types = []string{
	"INT", "TINYINT", "SMALLINT", "MEDIUMINT", "BIGINT",
	"DECIMAL", "NUMERIC", "FLOAT", "DOUBLE", "BIT",
	"CHAR", "VARCHAR", "BINARY", "VARBINARY",
	"TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT",
	"TINYBLOB", "BLOB", "MEDIUMBLOB", "LONGBLOB",
	"DATE", "TIME", "DATETIME", "TIMESTAMP", "YEAR",
	"ENUM", "SET", "JSON",
	"GEOMETRY", "POINT", "LINESTRING", "POLYGON",
}

// MySQL is the MySQL dialect: backtick quoting, inline charset on
// CREATE DATABASE, table options and index USING clauses.
var MySQL = &dialect.Dialect{
	Name:                  "mysql",
	QuoteOpen:             "`",
	QuoteClose:            "`",
	AutoIncrement:         " AUTO_INCREMENT",
	SupportsInlineCharset: true,
	SupportsTableOptions:  true,
	SupportsIndexMethod:   true,
	DataTypes:             Types,
}
