package dialect

import (
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Fallback is the zero-rule dialect used for unrecognized tags: no
// quoting, default auto-increment token, no MySQL-family clauses.
var Fallback = &Dialect{
	Name:          "generic",
	AutoIncrement: " AUTO_INCREMENT",
}

// Get returns a dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// GetOrFallback returns the named dialect, or the no-quoting fallback
// when the tag is not registered.
func GetOrFallback(name string) *Dialect {
	if d, ok := Get(name); ok {
		return d
	}
	return Fallback
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
