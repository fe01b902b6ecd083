package state

import (
	"fmt"
	"os"
)

// SaveFile writes the store's current project tree to path as JSON.
func SaveFile(s *Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create project file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := s.Export(f); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	return nil
}

// LoadFile replaces the store's project tree with the JSON document at
// path.
func LoadFile(s *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open project file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := s.Import(f); err != nil {
		return fmt.Errorf("read project file: %w", err)
	}
	return nil
}
