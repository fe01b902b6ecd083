// Package dialect provides SQL dialect configuration for the generator.
//
// This package contains the public contract for dialect definitions used by
// the SQL generator and the UI. Concrete dialect implementations are
// registered from pkg/dialects/*/ packages.
package dialect

import "strings"

// Dialect represents a SQL dialect configuration: how identifiers are
// quoted, which clauses are available and which data types are legal.
type Dialect struct {
	Name string

	// Identifier quoting. Empty QuoteOpen/QuoteClose means no quoting.
	QuoteOpen            string
	QuoteClose           string
	UppercaseIdentifiers bool

	// AutoIncrement is the column-level token, including its leading
	// space (" AUTO_INCREMENT"). Empty when the dialect expresses
	// auto-increment through the base type (Postgres serial types).
	AutoIncrement string

	// MySQL-family capabilities.
	SupportsInlineCharset bool // CREATE DATABASE ... CHARACTER SET
	SupportsTableOptions  bool // ENGINE=, AUTO_INCREMENT=, table COMMENT
	SupportsIndexMethod   bool // USING BTREE / USING HASH

	// DataTypes is the legal base-type vocabulary, used by the editors
	// for completion. The generator itself accepts any type token.
	DataTypes []string
}

// QuoteIdentifier quotes an identifier according to the dialect rules.
// Dialects without quote characters return the identifier unchanged.
func (d *Dialect) QuoteIdentifier(name string) string {
	if d.UppercaseIdentifiers {
		name = strings.ToUpper(name)
	}
	if d.QuoteOpen == "" {
		return name
	}
	return d.QuoteOpen + name + d.QuoteClose
}

// HasType reports whether the base type token is part of the dialect's
// vocabulary. Matching is case-insensitive.
func (d *Dialect) HasType(t string) bool {
	for _, dt := range d.DataTypes {
		if strings.EqualFold(dt, t) {
			return true
		}
	}
	return false
}
