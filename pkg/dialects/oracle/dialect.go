// Package oracle provides the Oracle SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package oracle

import "github.com/canvasql/canvasql/pkg/dialect"

func init() {
	dialect.Register(Oracle)
}

// Types is the Oracle base-type vocabulary.
var Types = []string{
	"NUMBER", "BINARY_FLOAT", "BINARY_DOUBLE",
	"CHAR", "NCHAR", "VARCHAR2", "NVARCHAR2",
	"CLOB", "NCLOB", "BLOB", "BFILE", "RAW", "LONG RAW",
	"DATE", "TIMESTAMP", "INTERVAL YEAR TO MONTH", "INTERVAL DAY TO SECOND",
	"ROWID", "UROWID", "XMLTYPE",
}

// Oracle is the Oracle dialect: double-quoted identifiers forced to
// upper case, following the data dictionary's case folding.
var Oracle = &dialect.Dialect{
	Name:                 "oracle",
	QuoteOpen:            `"`,
	QuoteClose:           `"`,
	UppercaseIdentifiers: true,
	AutoIncrement:        " AUTO_INCREMENT",
	DataTypes:            Types,
}
