// Package model defines the project aggregate edited by the designer:
// databases, tables, columns, relationships, indexes, views, stored
// routines, triggers and users. Entities are immutable-by-replacement;
// an edit produces a new record that replaces the old one by ID.
package model

import "github.com/google/uuid"

// NewID returns a fresh opaque entity identifier.
func NewID() string {
	return uuid.NewString()
}

// Cardinality tags a relationship between two tables.
type Cardinality string

const (
	OneToOne   Cardinality = "one_to_one"
	OneToMany  Cardinality = "one_to_many"
	ManyToMany Cardinality = "many_to_many"
)

// ReferentialAction is an ON UPDATE / ON DELETE rule.
type ReferentialAction string

const (
	NoAction   ReferentialAction = "NO ACTION"
	Cascade    ReferentialAction = "CASCADE"
	SetNull    ReferentialAction = "SET NULL"
	SetDefault ReferentialAction = "SET DEFAULT"
	Restrict   ReferentialAction = "RESTRICT"
)

// IndexType classifies a secondary index.
type IndexType string

const (
	IndexPrimary  IndexType = "PRIMARY"
	IndexUnique   IndexType = "UNIQUE"
	IndexPlain    IndexType = "INDEX"
	IndexFulltext IndexType = "FULLTEXT"
	IndexSpatial  IndexType = "SPATIAL"
)

// Database is a named schema/catalog.
type Database struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Charset   string `json:"charset,omitempty"`
	Collation string `json:"collation,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// Column is a table attribute. Type holds the dialect-specific base type
// token; Length carries the optional length/precision spec, or the
// comma-separated value list for ENUM/SET types.
type Column struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Length        string `json:"length,omitempty"`
	PrimaryKey    bool   `json:"primaryKey"`
	NotNull       bool   `json:"notNull"`
	AutoIncrement bool   `json:"autoIncrement"`
	Unique        bool   `json:"unique"`
	Default       string `json:"default,omitempty"`
	Comment       string `json:"comment,omitempty"`

	// Foreign-key back-reference, maintained by relationship commands.
	IsForeignKey bool   `json:"isForeignKey"`
	RefTableID   string `json:"refTableId,omitempty"`
	RefColumnID  string `json:"refColumnId,omitempty"`
}

// Position is canvas layout data only; it never affects generated SQL.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Table is a named relation with an ordered column list.
type Table struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Columns            []Column `json:"columns"`
	Position           Position `json:"position"`
	Engine             string   `json:"engine,omitempty"`
	Charset            string   `json:"charset,omitempty"`
	Collation          string   `json:"collation,omitempty"`
	Comment            string   `json:"comment,omitempty"`
	AutoIncrementStart int      `json:"autoIncrementStart,omitempty"`
}

// ColumnByID returns the column with the given ID, or false.
func (t *Table) ColumnByID(id string) (Column, bool) {
	for _, c := range t.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// Relationship is a foreign-key link: the target column references the
// source column.
type Relationship struct {
	ID             string            `json:"id"`
	Name           string            `json:"name,omitempty"`
	SourceTableID  string            `json:"sourceTableId"`
	SourceColumnID string            `json:"sourceColumnId"`
	TargetTableID  string            `json:"targetTableId"`
	TargetColumnID string            `json:"targetColumnId"`
	Cardinality    Cardinality       `json:"cardinality"`
	OnUpdate       ReferentialAction `json:"onUpdate,omitempty"`
	OnDelete       ReferentialAction `json:"onDelete,omitempty"`
}

// Index is a secondary structure on a table.
type Index struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	TableID string    `json:"tableId"`
	Columns []string  `json:"columns"`
	Type    IndexType `json:"type"`
	Method  string    `json:"method,omitempty"` // BTREE or HASH
}

// View is a named query.
type View struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Definition  string `json:"definition"`
	Updatable   bool   `json:"updatable"`
	Algorithm   string `json:"algorithm,omitempty"` // MERGE, TEMPTABLE
	SQLSecurity string `json:"sqlSecurity,omitempty"`
}

// ParamDirection is a routine parameter direction.
type ParamDirection string

const (
	ParamIn    ParamDirection = "IN"
	ParamOut   ParamDirection = "OUT"
	ParamInOut ParamDirection = "INOUT"
)

// Parameter is a stored-routine parameter.
type Parameter struct {
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Direction ParamDirection `json:"direction"`
}

// RoutineKind distinguishes procedures from functions.
type RoutineKind string

const (
	KindProcedure RoutineKind = "PROCEDURE"
	KindFunction  RoutineKind = "FUNCTION"
)

// Procedure is a stored routine.
type Procedure struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Parameters    []Parameter `json:"parameters"`
	Body          string      `json:"body"`
	Kind          RoutineKind `json:"kind"`
	Returns       string      `json:"returns,omitempty"`
	Deterministic bool        `json:"deterministic"`
	SQLSecurity   string      `json:"sqlSecurity,omitempty"`
}

// TriggerTiming is BEFORE or AFTER.
type TriggerTiming string

const (
	Before TriggerTiming = "BEFORE"
	After  TriggerTiming = "AFTER"
)

// TriggerEvent is the row event a trigger fires on.
type TriggerEvent string

const (
	OnInsert TriggerEvent = "INSERT"
	OnUpdate TriggerEvent = "UPDATE"
	OnDelete TriggerEvent = "DELETE"
)

// Trigger is a row-level hook on a table.
type Trigger struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	TableID string        `json:"tableId"`
	Timing  TriggerTiming `json:"timing"`
	Event   TriggerEvent  `json:"event"`
	Body    string        `json:"body"`
}

// User is an account with grantable privileges.
type User struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Host       string   `json:"host"`
	Password   string   `json:"password,omitempty"`
	Privileges []string `json:"privileges"`
}

// Project is the aggregate root: everything the designer edits, held as
// one in-memory tree. Dialect selects the generator rules and legal
// data-type vocabulary.
type Project struct {
	Name          string         `json:"name"`
	Dialect       string         `json:"dialect"`
	CurrentDBID   string         `json:"currentDatabaseId,omitempty"`
	Databases     []Database     `json:"databases"`
	Tables        []Table        `json:"tables"`
	Relationships []Relationship `json:"relationships"`
	Indexes       []Index        `json:"indexes"`
	Views         []View         `json:"views"`
	Procedures    []Procedure    `json:"procedures"`
	Triggers      []Trigger      `json:"triggers"`
	Users         []User         `json:"users"`
}

// TableByID returns the table with the given ID, or false.
func (p *Project) TableByID(id string) (*Table, bool) {
	for i := range p.Tables {
		if p.Tables[i].ID == id {
			return &p.Tables[i], true
		}
	}
	return nil, false
}

// CurrentDatabase returns the database the current-database pointer
// refers to, or false when unset or dangling.
func (p *Project) CurrentDatabase() (Database, bool) {
	for _, db := range p.Databases {
		if db.ID == p.CurrentDBID {
			return db, true
		}
	}
	return Database{}, false
}
