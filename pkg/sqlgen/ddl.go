package sqlgen

import (
	"strconv"
	"strings"

	"github.com/canvasql/canvasql/internal/model"
)

// CreateDatabase emits a CREATE DATABASE statement. Character set and
// collation clauses are appended only for dialects with inline
// schema-level charset support.
func (g *Generator) CreateDatabase(db model.Database) string {
	var b strings.Builder
	b.WriteString("CREATE DATABASE ")
	b.WriteString(g.quote(db.Name))
	if g.d.SupportsInlineCharset {
		if db.Charset != "" {
			b.WriteString(" CHARACTER SET ")
			b.WriteString(db.Charset)
		}
		if db.Collation != "" {
			b.WriteString(" COLLATE ")
			b.WriteString(db.Collation)
		}
	}
	if db.Comment != "" {
		b.WriteString(" COMMENT '")
		b.WriteString(escapeString(db.Comment))
		b.WriteString("'")
	}
	b.WriteString(";")
	return b.String()
}

// columnDefinition renders one column clause of a CREATE TABLE body.
func (g *Generator) columnDefinition(c model.Column) string {
	var b strings.Builder
	b.WriteString(g.quote(c.Name))
	b.WriteString(" ")
	b.WriteString(formatType(c))
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if c.AutoIncrement {
		b.WriteString(g.d.AutoIncrement)
	}
	if c.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(formatLiteral(c.Default))
	}
	if c.Comment != "" && g.d.SupportsTableOptions {
		b.WriteString(" COMMENT '")
		b.WriteString(escapeString(c.Comment))
		b.WriteString("'")
	}
	return b.String()
}

// CreateTable emits the table's column definitions in order, a PRIMARY
// KEY constraint over all primary-key columns, one UNIQUE constraint per
// unique non-primary column, and one FOREIGN KEY constraint per
// relationship whose source table is this table. Relationships whose
// column or table references do not resolve are skipped.
func (g *Generator) CreateTable(t model.Table, relationships []model.Relationship, allTables []model.Table) string {
	defs := make([]string, 0, len(t.Columns)+2)
	var pks []string
	for _, c := range t.Columns {
		defs = append(defs, g.columnDefinition(c))
		if c.PrimaryKey {
			pks = append(pks, g.quote(c.Name))
		}
	}
	if len(pks) > 0 {
		defs = append(defs, "PRIMARY KEY ("+strings.Join(pks, ", ")+")")
	}
	for _, c := range t.Columns {
		if c.Unique && !c.PrimaryKey {
			defs = append(defs, "UNIQUE ("+g.quote(c.Name)+")")
		}
	}
	for _, rel := range relationships {
		if rel.SourceTableID != t.ID {
			continue
		}
		if fk, ok := g.foreignKeyClause(t, rel, allTables); ok {
			defs = append(defs, fk)
		}
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(g.quote(t.Name))
	if len(defs) == 0 {
		b.WriteString(" ()")
	} else {
		b.WriteString(" (\n  ")
		b.WriteString(strings.Join(defs, ",\n  "))
		b.WriteString("\n)")
	}
	if g.d.SupportsTableOptions {
		b.WriteString(g.tableOptions(t))
	}
	b.WriteString(";")
	return b.String()
}

// foreignKeyClause resolves the relationship's column references against
// the owning table and allTables. A failed lookup omits the clause; this
// is the generator's only failure-tolerance behavior.
func (g *Generator) foreignKeyClause(t model.Table, rel model.Relationship, allTables []model.Table) (string, bool) {
	srcCol, ok := t.ColumnByID(rel.SourceColumnID)
	if !ok {
		g.logger.Warn("skipping foreign key: source column not found",
			"table", t.Name, "relationship", rel.ID, "columnId", rel.SourceColumnID)
		return "", false
	}
	var target *model.Table
	for i := range allTables {
		if allTables[i].ID == rel.TargetTableID {
			target = &allTables[i]
			break
		}
	}
	if target == nil {
		g.logger.Warn("skipping foreign key: target table not found",
			"table", t.Name, "relationship", rel.ID, "tableId", rel.TargetTableID)
		return "", false
	}
	tgtCol, ok := target.ColumnByID(rel.TargetColumnID)
	if !ok {
		g.logger.Warn("skipping foreign key: target column not found",
			"table", t.Name, "relationship", rel.ID, "columnId", rel.TargetColumnID)
		return "", false
	}

	var b strings.Builder
	b.WriteString("FOREIGN KEY (")
	b.WriteString(g.quote(srcCol.Name))
	b.WriteString(") REFERENCES ")
	b.WriteString(g.quote(target.Name))
	b.WriteString(" (")
	b.WriteString(g.quote(tgtCol.Name))
	b.WriteString(")")
	if rel.OnUpdate != "" {
		b.WriteString(" ON UPDATE ")
		b.WriteString(string(rel.OnUpdate))
	}
	if rel.OnDelete != "" {
		b.WriteString(" ON DELETE ")
		b.WriteString(string(rel.OnDelete))
	}
	return b.String(), true
}

// tableOptions renders the MySQL-family table options suffix.
func (g *Generator) tableOptions(t model.Table) string {
	var b strings.Builder
	if t.Engine != "" {
		b.WriteString(" ENGINE=")
		b.WriteString(t.Engine)
	}
	if t.Charset != "" {
		b.WriteString(" DEFAULT CHARSET=")
		b.WriteString(t.Charset)
	}
	if t.Collation != "" {
		b.WriteString(" COLLATE=")
		b.WriteString(t.Collation)
	}
	if t.AutoIncrementStart > 0 {
		b.WriteString(" AUTO_INCREMENT=")
		b.WriteString(strconv.Itoa(t.AutoIncrementStart))
	}
	if t.Comment != "" {
		b.WriteString(" COMMENT='")
		b.WriteString(escapeString(t.Comment))
		b.WriteString("'")
	}
	return b.String()
}

// AlterOperation identifies the single operation of an ALTER statement.
type AlterOperation string

const (
	AddColumn    AlterOperation = "ADD_COLUMN"
	DropColumn   AlterOperation = "DROP_COLUMN"
	ModifyColumn AlterOperation = "MODIFY_COLUMN"
	RenameColumn AlterOperation = "RENAME_COLUMN"
	AddIndex     AlterOperation = "ADD_INDEX"
	DropIndexOp  AlterOperation = "DROP_INDEX"
)

// AlterDetails carries the operand of an ALTER operation. Only the
// fields relevant to the operation are read.
type AlterDetails struct {
	Column     model.Column // ADD_COLUMN, MODIFY_COLUMN
	ColumnName string       // DROP_COLUMN, RENAME_COLUMN (old name)
	NewName    string       // RENAME_COLUMN
	Index      model.Index  // ADD_INDEX
	IndexName  string       // DROP_INDEX
}

// AlterTable emits a single-operation ALTER TABLE statement. An
// unrecognized operation yields a bare `ALTER TABLE <name>;`.
func (g *Generator) AlterTable(t model.Table, op AlterOperation, d AlterDetails) string {
	var b strings.Builder
	b.WriteString("ALTER TABLE ")
	b.WriteString(g.quote(t.Name))
	switch op {
	case AddColumn:
		b.WriteString(" ADD COLUMN ")
		b.WriteString(g.columnDefinition(d.Column))
	case DropColumn:
		b.WriteString(" DROP COLUMN ")
		b.WriteString(g.quote(d.ColumnName))
	case ModifyColumn:
		b.WriteString(" MODIFY COLUMN ")
		b.WriteString(g.columnDefinition(d.Column))
	case RenameColumn:
		b.WriteString(" RENAME COLUMN ")
		b.WriteString(g.quote(d.ColumnName))
		b.WriteString(" TO ")
		b.WriteString(g.quote(d.NewName))
	case AddIndex:
		b.WriteString(" ADD INDEX ")
		b.WriteString(g.quote(d.Index.Name))
		b.WriteString(" (")
		b.WriteString(g.quoteList(d.Index.Columns))
		b.WriteString(")")
	case DropIndexOp:
		b.WriteString(" DROP INDEX ")
		b.WriteString(g.quote(d.IndexName))
	default:
		g.logger.Debug("unrecognized alter operation", "table", t.Name, "operation", string(op))
	}
	b.WriteString(";")
	return b.String()
}

func (g *Generator) quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = g.quote(n)
	}
	return strings.Join(quoted, ", ")
}

// CreateIndex emits a CREATE INDEX statement. The statement form varies
// by index type; a USING clause is appended only for dialects that
// support an index method.
func (g *Generator) CreateIndex(idx model.Index, tableName string) string {
	var b strings.Builder
	switch idx.Type {
	case model.IndexUnique:
		b.WriteString("CREATE UNIQUE INDEX ")
	case model.IndexFulltext:
		b.WriteString("CREATE FULLTEXT INDEX ")
	case model.IndexSpatial:
		b.WriteString("CREATE SPATIAL INDEX ")
	default:
		b.WriteString("CREATE INDEX ")
	}
	b.WriteString(g.quote(idx.Name))
	b.WriteString(" ON ")
	b.WriteString(g.quote(tableName))
	b.WriteString(" (")
	b.WriteString(g.quoteList(idx.Columns))
	b.WriteString(")")
	if idx.Method != "" && g.d.SupportsIndexMethod {
		b.WriteString(" USING ")
		b.WriteString(idx.Method)
	}
	b.WriteString(";")
	return b.String()
}

// CreateView emits a CREATE VIEW statement. The ALGORITHM prefix is
// omitted for the default/undefined algorithm; the view definition is
// inserted verbatim.
func (g *Generator) CreateView(v model.View) string {
	var b strings.Builder
	b.WriteString("CREATE")
	if v.Algorithm != "" && !strings.EqualFold(v.Algorithm, "UNDEFINED") {
		b.WriteString(" ALGORITHM = ")
		b.WriteString(v.Algorithm)
	}
	b.WriteString(" SQL SECURITY ")
	b.WriteString(sqlSecurity(v.SQLSecurity))
	b.WriteString(" VIEW ")
	b.WriteString(g.quote(v.Name))
	b.WriteString(" AS ")
	b.WriteString(v.Definition)
	if v.Updatable {
		b.WriteString(" WITH CHECK OPTION")
	}
	b.WriteString(";")
	return b.String()
}

func sqlSecurity(s string) string {
	if s == "" {
		return "DEFINER"
	}
	return s
}

// CreateProcedure emits a CREATE PROCEDURE or CREATE FUNCTION statement
// with a parenthesized parameter list. The body is wrapped verbatim in a
// BEGIN/END block.
func (g *Generator) CreateProcedure(p model.Procedure) string {
	params := make([]string, len(p.Parameters))
	for i, param := range p.Parameters {
		params[i] = string(param.Direction) + " " + g.quote(param.Name) + " " + param.Type
	}

	var b strings.Builder
	b.WriteString("CREATE ")
	b.WriteString(string(p.Kind))
	b.WriteString(" ")
	b.WriteString(g.quote(p.Name))
	b.WriteString(" (")
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(")")
	if p.Kind == model.KindFunction && p.Returns != "" {
		b.WriteString(" RETURNS ")
		b.WriteString(p.Returns)
	}
	if p.Deterministic {
		b.WriteString(" DETERMINISTIC")
	}
	b.WriteString(" SQL SECURITY ")
	b.WriteString(sqlSecurity(p.SQLSecurity))
	b.WriteString(" BEGIN\n")
	b.WriteString(p.Body)
	b.WriteString("\nEND;")
	return b.String()
}

// CreateTrigger emits a row-level trigger statement.
func (g *Generator) CreateTrigger(t model.Trigger, tableName string) string {
	var b strings.Builder
	b.WriteString("CREATE TRIGGER ")
	b.WriteString(g.quote(t.Name))
	b.WriteString(" ")
	b.WriteString(string(t.Timing))
	b.WriteString(" ")
	b.WriteString(string(t.Event))
	b.WriteString(" ON ")
	b.WriteString(g.quote(tableName))
	b.WriteString(" FOR EACH ROW BEGIN\n")
	b.WriteString(t.Body)
	b.WriteString("\nEND;")
	return b.String()
}

// CreateUser emits a CREATE USER statement.
func (g *Generator) CreateUser(u model.User) string {
	var b strings.Builder
	b.WriteString("CREATE USER ")
	b.WriteString(g.account(u))
	if u.Password != "" {
		b.WriteString(" IDENTIFIED BY '")
		b.WriteString(escapeString(u.Password))
		b.WriteString("'")
	}
	b.WriteString(";")
	return b.String()
}

// GrantPrivileges emits a GRANT statement. The target scope narrows from
// `*.*` to `db.*` to `db.table` as the optional arguments are supplied.
func (g *Generator) GrantPrivileges(u model.User, database, table string) string {
	privs := "ALL PRIVILEGES"
	if len(u.Privileges) > 0 {
		privs = strings.Join(u.Privileges, ", ")
	}
	scope := "*.*"
	switch {
	case database != "" && table != "":
		scope = g.quote(database) + "." + g.quote(table)
	case database != "":
		scope = g.quote(database) + ".*"
	}
	return "GRANT " + privs + " ON " + scope + " TO " + g.account(u) + ";"
}

func (g *Generator) account(u model.User) string {
	host := u.Host
	if host == "" {
		host = "%"
	}
	return "'" + escapeString(u.Username) + "'@'" + escapeString(host) + "'"
}

// Single-purpose statement emitters.

func (g *Generator) DropTable(name string) string     { return "DROP TABLE " + g.quote(name) + ";" }
func (g *Generator) TruncateTable(name string) string { return "TRUNCATE TABLE " + g.quote(name) + ";" }
func (g *Generator) DropDatabase(name string) string  { return "DROP DATABASE " + g.quote(name) + ";" }
func (g *Generator) UseDatabase(name string) string   { return "USE " + g.quote(name) + ";" }
func (g *Generator) DropView(name string) string      { return "DROP VIEW " + g.quote(name) + ";" }
func (g *Generator) DropProcedure(name string) string { return "DROP PROCEDURE " + g.quote(name) + ";" }
func (g *Generator) DropTrigger(name string) string   { return "DROP TRIGGER " + g.quote(name) + ";" }

// DropUser emits a DROP USER statement for the account.
func (g *Generator) DropUser(u model.User) string {
	return "DROP USER " + g.account(u) + ";"
}

// DropIndex emits a DROP INDEX statement. MySQL-family dialects scope
// the drop to the owning table.
func (g *Generator) DropIndex(name, tableName string) string {
	if g.d.SupportsTableOptions {
		return "DROP INDEX " + g.quote(name) + " ON " + g.quote(tableName) + ";"
	}
	return "DROP INDEX " + g.quote(name) + ";"
}
