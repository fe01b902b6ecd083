// Package mariadb provides the MariaDB SQL dialect definition.
// MariaDB follows the MySQL rules for quoting, auto-increment and
// schema-level charset clauses; only the type vocabulary differs.
package mariadb

import (
	"github.com/canvasql/canvasql/pkg/dialect"
	"github.com/canvasql/canvasql/pkg/dialects/mysql"
)

func init() {
	dialect.Register(MariaDB)
}

// Types extends the MySQL vocabulary with MariaDB-specific types.
var Types = append([]string{"INET4", "INET6", "UUID"}, mysql.Types...)

// MariaDB is the MariaDB dialect.
var MariaDB = &dialect.Dialect{
	Name:                  "mariadb",
	QuoteOpen:             "`",
	QuoteClose:            "`",
	AutoIncrement:         " AUTO_INCREMENT",
	SupportsInlineCharset: true,
	SupportsTableOptions:  true,
	SupportsIndexMethod:   true,
	DataTypes:             Types,
}
