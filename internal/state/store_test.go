package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasql/canvasql/internal/model"
	"github.com/canvasql/canvasql/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(nil, testutil.NewTestLogger(t))
}

func TestAddTableAssignsIDs(t *testing.T) {
	s := newTestStore(t)
	tbl := s.AddTable(model.Table{
		Name:    "users",
		Columns: []model.Column{{Name: "id", Type: "INT"}},
	})
	assert.NotEmpty(t, tbl.ID)
	assert.NotEmpty(t, tbl.Columns[0].ID)
	assert.Len(t, s.Snapshot().Tables, 1)
}

func TestUpdateTableReplacesByID(t *testing.T) {
	s := newTestStore(t)
	tbl := s.AddTable(model.Table{Name: "users"})

	tbl.Name = "people"
	require.NoError(t, s.UpdateTable(tbl))
	assert.Equal(t, "people", s.Snapshot().Tables[0].Name)

	err := s.UpdateTable(model.Table{ID: "nope"})
	assert.Error(t, err)
}

func TestRelationshipMarksForeignKey(t *testing.T) {
	s := newTestStore(t)
	a := s.AddTable(model.Table{Name: "a", Columns: []model.Column{{Name: "a_id", Type: "INT"}}})
	b := s.AddTable(model.Table{Name: "b", Columns: []model.Column{{Name: "b_id", Type: "INT"}}})

	rel := s.AddRelationship(model.Relationship{
		SourceTableID:  a.ID,
		SourceColumnID: a.Columns[0].ID,
		TargetTableID:  b.ID,
		TargetColumnID: b.Columns[0].ID,
		Cardinality:    model.OneToMany,
	})

	snap := s.Snapshot()
	target, ok := snap.TableByID(b.ID)
	require.True(t, ok)
	col := target.Columns[0]
	assert.True(t, col.IsForeignKey)
	assert.Equal(t, a.ID, col.RefTableID)
	assert.Equal(t, a.Columns[0].ID, col.RefColumnID)

	s.DeleteRelationship(rel.ID)

	snap = s.Snapshot()
	target, _ = snap.TableByID(b.ID)
	col = target.Columns[0]
	assert.False(t, col.IsForeignKey)
	assert.Empty(t, col.RefTableID)
	assert.Empty(t, col.RefColumnID)
	assert.Empty(t, snap.Relationships)
}

func TestDeleteTableCascades(t *testing.T) {
	s := newTestStore(t)
	a := s.AddTable(model.Table{Name: "a", Columns: []model.Column{{Name: "a_id", Type: "INT"}}})
	b := s.AddTable(model.Table{Name: "b", Columns: []model.Column{{Name: "b_id", Type: "INT"}}})
	s.AddRelationship(model.Relationship{
		SourceTableID: a.ID, SourceColumnID: a.Columns[0].ID,
		TargetTableID: b.ID, TargetColumnID: b.Columns[0].ID,
	})
	s.AddIndex(model.Index{Name: "idx_a", TableID: a.ID, Columns: []string{"a_id"}, Type: model.IndexPlain})
	s.AddTrigger(model.Trigger{Name: "trg_a", TableID: a.ID, Timing: model.Before, Event: model.OnInsert})
	s.AddIndex(model.Index{Name: "idx_b", TableID: b.ID, Columns: []string{"b_id"}, Type: model.IndexPlain})

	s.DeleteTable(a.ID)

	snap := s.Snapshot()
	assert.Len(t, snap.Tables, 1)
	assert.Empty(t, snap.Relationships)
	assert.Empty(t, snap.Triggers)
	require.Len(t, snap.Indexes, 1)
	assert.Equal(t, "idx_b", snap.Indexes[0].Name)

	// Cascade also cleared the FK mark on b's column.
	target, _ := snap.TableByID(b.ID)
	assert.False(t, target.Columns[0].IsForeignKey)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newTestStore(t)
	s.AddTable(model.Table{Name: "users", Columns: []model.Column{{Name: "id", Type: "INT"}}})

	snap := s.Snapshot()
	snap.Tables[0].Columns[0].Name = "mutated"
	assert.Equal(t, "id", s.Snapshot().Tables[0].Columns[0].Name)
}

func TestProjectRoundTrip(t *testing.T) {
	s := newTestStore(t)
	s.SetDialect("postgresql")
	db := s.AddDatabase(model.Database{Name: "shop", Charset: "utf8mb4", Comment: "main"})
	s.SetCurrentDatabase(db.ID)
	tbl := s.AddTable(model.Table{
		Name: "users",
		Columns: []model.Column{
			{Name: "id", Type: "INT", PrimaryKey: true, NotNull: true, AutoIncrement: true},
			{Name: "email", Type: "VARCHAR", Length: "255", Unique: true, Default: "none"},
		},
		Position: model.Position{X: 120, Y: 48},
		Engine:   "InnoDB",
	})
	s.AddIndex(model.Index{Name: "idx_email", TableID: tbl.ID, Columns: []string{"email"}, Type: model.IndexUnique, Method: "BTREE"})
	s.AddView(model.View{Name: "v", Definition: "SELECT 1", Updatable: true, Algorithm: "MERGE"})
	s.AddProcedure(model.Procedure{
		Name: "p", Kind: model.KindFunction, Returns: "INT", Deterministic: true,
		Parameters: []model.Parameter{{Name: "x", Type: "INT", Direction: model.ParamIn}},
		Body:       "RETURN x;",
	})
	s.AddTrigger(model.Trigger{Name: "trg", TableID: tbl.ID, Timing: model.After, Event: model.OnUpdate, Body: "SET @x = 1;"})
	s.AddUser(model.User{Username: "app", Host: "%", Privileges: []string{"SELECT"}})

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))

	restored := New(nil, testutil.NewTestLogger(t))
	require.NoError(t, restored.Import(&buf))

	assert.Equal(t, s.Snapshot(), restored.Snapshot())
}

func TestImportToleratesUnknownFields(t *testing.T) {
	s := newTestStore(t)
	doc := `{"name":"x","dialect":"mysql","unknownField":true,"tables":[{"id":"t1","name":"users","extra":1}]}`
	require.NoError(t, s.Import(bytes.NewReader([]byte(doc))))
	snap := s.Snapshot()
	assert.Equal(t, "x", snap.Name)
	require.Len(t, snap.Tables, 1)
	assert.Equal(t, "users", snap.Tables[0].Name)
}

func TestImportInvalidJSON(t *testing.T) {
	s := newTestStore(t)
	err := s.Import(bytes.NewReader([]byte("{not json")))
	assert.Error(t, err)
}
