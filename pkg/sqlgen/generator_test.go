package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasql/canvasql/internal/model"
	_ "github.com/canvasql/canvasql/pkg/dialects/mariadb"
	_ "github.com/canvasql/canvasql/pkg/dialects/mysql"
	_ "github.com/canvasql/canvasql/pkg/dialects/oracle"
	_ "github.com/canvasql/canvasql/pkg/dialects/postgres"
	_ "github.com/canvasql/canvasql/pkg/dialects/sqlite"
)

func usersTable() model.Table {
	return model.Table{
		ID:   "t1",
		Name: "users",
		Columns: []model.Column{
			{ID: "c1", Name: "id", Type: "INT", PrimaryKey: true, AutoIncrement: true, NotNull: true},
		},
	}
}

func TestCreateTableMySQL(t *testing.T) {
	g := New("mysql")
	got := g.CreateTable(usersTable(), nil, nil)
	assert.Equal(t, "CREATE TABLE `users` (\n  `id` INT NOT NULL AUTO_INCREMENT,\n  PRIMARY KEY (`id`)\n);", got)
}

func TestCreateTablePostgres(t *testing.T) {
	g := New("postgresql")
	got := g.CreateTable(usersTable(), nil, nil)
	assert.Equal(t, "CREATE TABLE \"users\" (\n  \"id\" INT NOT NULL,\n  PRIMARY KEY (\"id\")\n);", got)
	assert.NotContains(t, got, "AUTO_INCREMENT")
}

func TestCreateTableEmptyBody(t *testing.T) {
	empty := model.Table{ID: "t9", Name: "empty"}
	for _, tag := range []string{"mysql", "mariadb", "postgresql", "sqlite", "oracle"} {
		t.Run(tag, func(t *testing.T) {
			got := New(tag).CreateTable(empty, nil, nil)
			assert.Contains(t, got, "()")
			assert.True(t, got[len(got)-1] == ';', "statement must be terminated: %q", got)
		})
	}
}

func TestCreateTableCompositePrimaryKey(t *testing.T) {
	tbl := model.Table{
		ID:   "t2",
		Name: "order_items",
		Columns: []model.Column{
			{ID: "c1", Name: "order_id", Type: "INT", PrimaryKey: true, NotNull: true},
			{ID: "c2", Name: "product_id", Type: "INT", PrimaryKey: true, NotNull: true},
			{ID: "c3", Name: "qty", Type: "INT"},
		},
	}
	got := New("mysql").CreateTable(tbl, nil, nil)
	assert.Contains(t, got, "PRIMARY KEY (`order_id`, `product_id`)")
}

func TestCreateTableUniqueColumns(t *testing.T) {
	tbl := model.Table{
		ID:   "t3",
		Name: "accounts",
		Columns: []model.Column{
			{ID: "c1", Name: "id", Type: "INT", PrimaryKey: true, Unique: true},
			{ID: "c2", Name: "email", Type: "VARCHAR", Length: "255", Unique: true},
		},
	}
	got := New("mysql").CreateTable(tbl, nil, nil)
	assert.Contains(t, got, "UNIQUE (`email`)")
	// Primary columns never get a redundant UNIQUE constraint.
	assert.NotContains(t, got, "UNIQUE (`id`)")
	assert.Contains(t, got, "`email` VARCHAR(255)")
}

func TestCreateTableForeignKey(t *testing.T) {
	orders := model.Table{
		ID:   "t-orders",
		Name: "orders",
		Columns: []model.Column{
			{ID: "c-oid", Name: "id", Type: "INT", PrimaryKey: true},
			{ID: "c-uid", Name: "user_id", Type: "INT", NotNull: true},
		},
	}
	users := usersTable()
	rels := []model.Relationship{{
		ID:             "r1",
		SourceTableID:  "t-orders",
		SourceColumnID: "c-uid",
		TargetTableID:  "t1",
		TargetColumnID: "c1",
		Cardinality:    model.OneToMany,
		OnUpdate:       model.Cascade,
		OnDelete:       model.SetNull,
	}}
	got := New("mysql").CreateTable(orders, rels, []model.Table{users, orders})
	assert.Contains(t, got, "FOREIGN KEY (`user_id`) REFERENCES `users` (`id`) ON UPDATE CASCADE ON DELETE SET NULL")
}

func TestCreateTableDanglingReferenceOmitsClause(t *testing.T) {
	orders := model.Table{
		ID:      "t-orders",
		Name:    "orders",
		Columns: []model.Column{{ID: "c-oid", Name: "id", Type: "INT", PrimaryKey: true}},
	}
	rels := []model.Relationship{{
		ID:             "r-dangling",
		SourceTableID:  "t-orders",
		SourceColumnID: "missing-column",
		TargetTableID:  "missing-table",
		TargetColumnID: "missing-column",
	}}
	var got string
	require.NotPanics(t, func() {
		got = New("mysql").CreateTable(orders, rels, []model.Table{orders})
	})
	assert.NotContains(t, got, "FOREIGN KEY")
	assert.Equal(t, "CREATE TABLE `orders` (\n  `id` INT,\n  PRIMARY KEY (`id`)\n);", got)
}

func TestCreateTableOptionsMySQLOnly(t *testing.T) {
	tbl := usersTable()
	tbl.Engine = "InnoDB"
	tbl.Charset = "utf8mb4"
	tbl.Collation = "utf8mb4_general_ci"
	tbl.AutoIncrementStart = 1000
	tbl.Comment = "all users"

	mysqlOut := New("mysql").CreateTable(tbl, nil, nil)
	assert.Contains(t, mysqlOut, "ENGINE=InnoDB")
	assert.Contains(t, mysqlOut, "DEFAULT CHARSET=utf8mb4")
	assert.Contains(t, mysqlOut, "COLLATE=utf8mb4_general_ci")
	assert.Contains(t, mysqlOut, "AUTO_INCREMENT=1000")
	assert.Contains(t, mysqlOut, "COMMENT='all users'")

	pgOut := New("postgresql").CreateTable(tbl, nil, nil)
	assert.NotContains(t, pgOut, "ENGINE")
	assert.NotContains(t, pgOut, "CHARSET")
}

func TestQuotingIsDialectPure(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{"mysql", "`order`"},
		{"mariadb", "`order`"},
		{"postgresql", `"order"`},
		{"sqlite", `"order"`},
		{"oracle", `"ORDER"`},
		{"no-such-dialect", "order"},
	}
	seen := map[string][]string{}
	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			g := New(tt.dialect)
			assert.Equal(t, tt.want, g.quote("order"))
			seen[tt.want] = append(seen[tt.want], tt.dialect)
		})
	}
	// MySQL, Postgres and Oracle quoting must all differ from each other.
	assert.NotEqual(t, New("mysql").quote("order"), New("postgresql").quote("order"))
	assert.NotEqual(t, New("postgresql").quote("order"), New("oracle").quote("order"))
}

func TestGenerateFullSQL(t *testing.T) {
	users := usersTable()
	posts := model.Table{
		ID:      "t-posts",
		Name:    "posts",
		Columns: []model.Column{{ID: "c-pid", Name: "id", Type: "INT", PrimaryKey: true}},
	}
	got := New("mysql").GenerateFullSQL([]model.Table{users, posts}, nil)
	assert.Contains(t, got, "CREATE TABLE `users`")
	assert.Contains(t, got, "CREATE TABLE `posts`")
	// Input order, one blank line between statements.
	assert.Regexp(t, "(?s)`users`.*;\n\nCREATE TABLE `posts`", got)
}

func TestGenerateFullSQLEmpty(t *testing.T) {
	assert.Equal(t, "", New("mysql").GenerateFullSQL(nil, nil))
}
