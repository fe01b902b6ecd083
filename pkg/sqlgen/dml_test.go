package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	g := New("mysql")

	assert.Equal(t, "SELECT * FROM `users`;", g.Select("users", nil, "", "", 0))
	assert.Equal(t,
		"SELECT `id`, `name` FROM `users` WHERE age > 18 ORDER BY name ASC LIMIT 10;",
		g.Select("users", []string{"id", "name"}, "age > 18", "name ASC", 10))
}

func TestSelectVerbatimFragments(t *testing.T) {
	// WHERE and ORDER BY are caller-supplied fragments; the generator
	// inserts them untouched, quotes and all.
	g := New("mysql")
	got := g.Select("users", nil, "name = 'O'Brien'", "", 0)
	assert.Equal(t, "SELECT * FROM `users` WHERE name = 'O'Brien';", got)
}

func TestInsert(t *testing.T) {
	g := New("mysql")
	got := g.Insert("users", map[string]string{
		"name":       "O'Brien",
		"age":        "30",
		"created_at": "NOW()",
	})
	// Fields sorted by name for deterministic output.
	assert.Equal(t, "INSERT INTO `users` (`age`, `created_at`, `name`) VALUES (30, NOW(), 'O''Brien');", got)
}

func TestUpdate(t *testing.T) {
	g := New("mysql")
	got := g.Update("users", map[string]string{"name": "Ada", "age": "31"}, "id = 1")
	assert.Equal(t, "UPDATE `users` SET `age` = 31, `name` = 'Ada' WHERE id = 1;", got)

	got = g.Update("users", map[string]string{"age": "31"}, "")
	assert.Equal(t, "UPDATE `users` SET `age` = 31;", got)
}

func TestDelete(t *testing.T) {
	g := New("mysql")
	assert.Equal(t, "DELETE FROM `users` WHERE id = 1;", g.Delete("users", "id = 1"))
	assert.Equal(t, "DELETE FROM `users`;", g.Delete("users", ""))
}
