package sqlgen

import (
	"strconv"
	"strings"

	"github.com/canvasql/canvasql/internal/model"
)

// escapeString doubles embedded single quotes. This is applied only to
// values the generator itself quotes; verbatim fragments (WHERE clauses,
// routine bodies, view definitions) pass through untouched.
func escapeString(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	return strings.ReplaceAll(s, "'", "''")
}

// passthroughDefaults are emitted unquoted regardless of case.
var passthroughDefaults = []string{
	"NOW()", "CURRENT_TIMESTAMP", "CURRENT_DATE", "CURRENT_TIME", "NULL",
}

// formatLiteral renders a default value or DML literal: well-known time
// tokens, NULL and numbers pass through unquoted, everything else is a
// quoted, escaped string literal.
func formatLiteral(v string) string {
	for _, t := range passthroughDefaults {
		if strings.EqualFold(v, t) {
			return strings.ToUpper(v)
		}
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return v
	}
	return "'" + escapeString(v) + "'"
}

// lengthTypes is the allow-list of base types that take a (N) or (N,M)
// suffix. ENUM and SET are handled separately as value lists.
var lengthTypes = map[string]bool{
	"CHAR": true, "NCHAR": true, "VARCHAR": true, "NVARCHAR": true,
	"VARCHAR2": true, "NVARCHAR2": true,
	"BINARY": true, "VARBINARY": true,
	"DECIMAL": true, "NUMERIC": true,
}

// formatType renders the column's type with its length/precision spec.
func formatType(c model.Column) string {
	base := strings.ToUpper(strings.TrimSpace(c.Type))
	if c.Length == "" {
		return c.Type
	}
	switch base {
	case "ENUM", "SET":
		values := strings.Split(c.Length, ",")
		for i, v := range values {
			values[i] = "'" + escapeString(strings.TrimSpace(v)) + "'"
		}
		return c.Type + "(" + strings.Join(values, ", ") + ")"
	}
	if lengthTypes[base] {
		return c.Type + "(" + c.Length + ")"
	}
	return c.Type
}
