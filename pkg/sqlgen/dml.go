package sqlgen

import (
	"sort"
	"strconv"
	"strings"
)

// Select emits a SELECT statement. Empty columns selects *. The where
// and orderBy fragments are inserted verbatim; a non-positive limit is
// omitted.
func (g *Generator) Select(table string, columns []string, where, orderBy string, limit int) string {
	cols := "*"
	if len(columns) > 0 {
		cols = g.quoteList(columns)
	}
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(cols)
	b.WriteString(" FROM ")
	b.WriteString(g.quote(table))
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	if limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(limit))
	}
	b.WriteString(";")
	return b.String()
}

// Insert emits an INSERT statement. Fields are ordered by name so the
// output is deterministic.
func (g *Generator) Insert(table string, fields map[string]string) string {
	names := sortedKeys(fields)
	cols := make([]string, len(names))
	vals := make([]string, len(names))
	for i, n := range names {
		cols[i] = g.quote(n)
		vals[i] = formatLiteral(fields[n])
	}
	return "INSERT INTO " + g.quote(table) +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(vals, ", ") + ");"
}

// Update emits an UPDATE statement with a verbatim WHERE fragment.
func (g *Generator) Update(table string, fields map[string]string, where string) string {
	names := sortedKeys(fields)
	sets := make([]string, len(names))
	for i, n := range names {
		sets[i] = g.quote(n) + " = " + formatLiteral(fields[n])
	}
	stmt := "UPDATE " + g.quote(table) + " SET " + strings.Join(sets, ", ")
	if where != "" {
		stmt += " WHERE " + where
	}
	return stmt + ";"
}

// Delete emits a DELETE statement with a verbatim WHERE fragment.
func (g *Generator) Delete(table, where string) string {
	stmt := "DELETE FROM " + g.quote(table)
	if where != "" {
		stmt += " WHERE " + where
	}
	return stmt + ";"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
