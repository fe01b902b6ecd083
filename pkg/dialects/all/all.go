// Package all registers every built-in SQL dialect.
// Import this package for its side effects to make the full dialect set
// available through the registry:
//
//	import _ "github.com/canvasql/canvasql/pkg/dialects/all"
package all

import (
	_ "github.com/canvasql/canvasql/pkg/dialects/mariadb"
	_ "github.com/canvasql/canvasql/pkg/dialects/mysql"
	_ "github.com/canvasql/canvasql/pkg/dialects/oracle"
	_ "github.com/canvasql/canvasql/pkg/dialects/postgres"
	_ "github.com/canvasql/canvasql/pkg/dialects/sqlite"
)
