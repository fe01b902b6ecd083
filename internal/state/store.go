// Package state holds the project aggregate edited by the designer.
// The store is the single writer: every command replaces whole entity
// records keyed by ID and readers receive deep-copied snapshots, so the
// generator always works on plain immutable input.
package state

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/canvasql/canvasql/internal/model"
)

// Store manages one in-memory Project tree.
type Store struct {
	mu      sync.RWMutex
	project *model.Project
	logger  *slog.Logger
}

// New creates a store around the given project. A nil project starts an
// empty one.
func New(p *model.Project, logger *slog.Logger) *Store {
	if p == nil {
		p = &model.Project{Name: "untitled", Dialect: "mysql"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{project: p, logger: logger}
}

// Snapshot returns a deep copy of the current project.
func (s *Store) Snapshot() *model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project.Clone()
}

// Replace swaps in a whole new project tree (project import).
func (s *Store) Replace(p *model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = p.Clone()
}

// Export writes the current project as JSON.
func (s *Store) Export(w io.Writer) error {
	snap := s.Snapshot()
	return model.Encode(w, snap)
}

// Import reads a project from JSON and replaces the current tree.
// Documents with missing or extra fields are accepted as-is.
func (s *Store) Import(r io.Reader) error {
	p, err := model.Decode(r)
	if err != nil {
		return err
	}
	s.Replace(p)
	return nil
}

// SetDialect switches the active dialect tag.
func (s *Store) SetDialect(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Dialect = tag
}

// SetCurrentDatabase moves the current-database pointer.
func (s *Store) SetCurrentDatabase(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.CurrentDBID = id
}

// AddDatabase adds a database record, assigning a fresh ID when unset.
func (s *Store) AddDatabase(db model.Database) model.Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	if db.ID == "" {
		db.ID = model.NewID()
	}
	s.project.Databases = append(s.project.Databases, db)
	return db
}

// UpdateDatabase replaces the database record with the same ID.
func (s *Store) UpdateDatabase(db model.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Databases {
		if s.project.Databases[i].ID == db.ID {
			s.project.Databases[i] = db
			return nil
		}
	}
	return fmt.Errorf("database %s not found", db.ID)
}

// DeleteDatabase removes a database record.
func (s *Store) DeleteDatabase(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Databases = deleteByID(s.project.Databases, id, func(d model.Database) string { return d.ID })
	if s.project.CurrentDBID == id {
		s.project.CurrentDBID = ""
	}
}

// AddTable adds a table record, assigning a fresh ID when unset.
func (s *Store) AddTable(t model.Table) model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = model.NewID()
	}
	for i := range t.Columns {
		if t.Columns[i].ID == "" {
			t.Columns[i].ID = model.NewID()
		}
	}
	s.project.Tables = append(s.project.Tables, t)
	return t
}

// UpdateTable replaces the table record with the same ID.
func (s *Store) UpdateTable(t model.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Tables {
		if s.project.Tables[i].ID == t.ID {
			s.project.Tables[i] = t
			return nil
		}
	}
	return fmt.Errorf("table %s not found", t.ID)
}

// DeleteTable removes a table and cascades to its relationships,
// indexes and triggers.
func (s *Store) DeleteTable(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Tables = deleteByID(s.project.Tables, id, func(t model.Table) string { return t.ID })

	kept := s.project.Relationships[:0]
	for _, r := range s.project.Relationships {
		if r.SourceTableID == id || r.TargetTableID == id {
			s.clearForeignKey(r)
			continue
		}
		kept = append(kept, r)
	}
	s.project.Relationships = kept

	idxKept := s.project.Indexes[:0]
	for _, idx := range s.project.Indexes {
		if idx.TableID != id {
			idxKept = append(idxKept, idx)
		}
	}
	s.project.Indexes = idxKept

	trgKept := s.project.Triggers[:0]
	for _, trg := range s.project.Triggers {
		if trg.TableID != id {
			trgKept = append(trgKept, trg)
		}
	}
	s.project.Triggers = trgKept
}

// AddRelationship adds a relationship and marks the target column as a
// foreign key referencing the source column.
func (s *Store) AddRelationship(r model.Relationship) model.Relationship {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = model.NewID()
	}
	s.project.Relationships = append(s.project.Relationships, r)

	if t, ok := s.project.TableByID(r.TargetTableID); ok {
		for i := range t.Columns {
			if t.Columns[i].ID == r.TargetColumnID {
				t.Columns[i].IsForeignKey = true
				t.Columns[i].RefTableID = r.SourceTableID
				t.Columns[i].RefColumnID = r.SourceColumnID
				break
			}
		}
	} else {
		s.logger.Warn("relationship target table not found", "relationship", r.ID, "tableId", r.TargetTableID)
	}
	return r
}

// DeleteRelationship removes a relationship and clears the foreign-key
// mark on its target column.
func (s *Store) DeleteRelationship(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.project.Relationships[:0]
	for _, r := range s.project.Relationships {
		if r.ID == id {
			s.clearForeignKey(r)
			continue
		}
		kept = append(kept, r)
	}
	s.project.Relationships = kept
}

// clearForeignKey unmarks the target column of a removed relationship.
// Callers hold the write lock.
func (s *Store) clearForeignKey(r model.Relationship) {
	t, ok := s.project.TableByID(r.TargetTableID)
	if !ok {
		return
	}
	for i := range t.Columns {
		if t.Columns[i].ID == r.TargetColumnID {
			t.Columns[i].IsForeignKey = false
			t.Columns[i].RefTableID = ""
			t.Columns[i].RefColumnID = ""
			return
		}
	}
}

// AddIndex adds an index record.
func (s *Store) AddIndex(idx model.Index) model.Index {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx.ID == "" {
		idx.ID = model.NewID()
	}
	s.project.Indexes = append(s.project.Indexes, idx)
	return idx
}

// UpdateIndex replaces the index record with the same ID.
func (s *Store) UpdateIndex(idx model.Index) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Indexes {
		if s.project.Indexes[i].ID == idx.ID {
			s.project.Indexes[i] = idx
			return nil
		}
	}
	return fmt.Errorf("index %s not found", idx.ID)
}

// DeleteIndex removes an index record.
func (s *Store) DeleteIndex(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Indexes = deleteByID(s.project.Indexes, id, func(i model.Index) string { return i.ID })
}

// AddView adds a view record.
func (s *Store) AddView(v model.View) model.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == "" {
		v.ID = model.NewID()
	}
	s.project.Views = append(s.project.Views, v)
	return v
}

// UpdateView replaces the view record with the same ID.
func (s *Store) UpdateView(v model.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Views {
		if s.project.Views[i].ID == v.ID {
			s.project.Views[i] = v
			return nil
		}
	}
	return fmt.Errorf("view %s not found", v.ID)
}

// DeleteView removes a view record.
func (s *Store) DeleteView(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Views = deleteByID(s.project.Views, id, func(v model.View) string { return v.ID })
}

// AddProcedure adds a stored-routine record.
func (s *Store) AddProcedure(p model.Procedure) model.Procedure {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = model.NewID()
	}
	s.project.Procedures = append(s.project.Procedures, p)
	return p
}

// UpdateProcedure replaces the routine record with the same ID.
func (s *Store) UpdateProcedure(p model.Procedure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Procedures {
		if s.project.Procedures[i].ID == p.ID {
			s.project.Procedures[i] = p
			return nil
		}
	}
	return fmt.Errorf("procedure %s not found", p.ID)
}

// DeleteProcedure removes a routine record.
func (s *Store) DeleteProcedure(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Procedures = deleteByID(s.project.Procedures, id, func(p model.Procedure) string { return p.ID })
}

// AddTrigger adds a trigger record.
func (s *Store) AddTrigger(t model.Trigger) model.Trigger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = model.NewID()
	}
	s.project.Triggers = append(s.project.Triggers, t)
	return t
}

// UpdateTrigger replaces the trigger record with the same ID.
func (s *Store) UpdateTrigger(t model.Trigger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Triggers {
		if s.project.Triggers[i].ID == t.ID {
			s.project.Triggers[i] = t
			return nil
		}
	}
	return fmt.Errorf("trigger %s not found", t.ID)
}

// DeleteTrigger removes a trigger record.
func (s *Store) DeleteTrigger(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Triggers = deleteByID(s.project.Triggers, id, func(t model.Trigger) string { return t.ID })
}

// AddUser adds a user record.
func (s *Store) AddUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = model.NewID()
	}
	s.project.Users = append(s.project.Users, u)
	return u
}

// UpdateUser replaces the user record with the same ID.
func (s *Store) UpdateUser(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.project.Users {
		if s.project.Users[i].ID == u.ID {
			s.project.Users[i] = u
			return nil
		}
	}
	return fmt.Errorf("user %s not found", u.ID)
}

// DeleteUser removes a user record.
func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project.Users = deleteByID(s.project.Users, id, func(u model.User) string { return u.ID })
}

func deleteByID[T any](items []T, id string, key func(T) string) []T {
	kept := items[:0]
	for _, it := range items {
		if key(it) != id {
			kept = append(kept, it)
		}
	}
	return kept
}
