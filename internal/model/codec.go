package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// Encode writes the project as indented JSON. The format carries no
// version field; the whole tree round-trips as-is.
func Encode(w io.Writer, p *Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	return nil
}

// Decode reads a project from JSON. Unknown fields are ignored and
// missing fields keep their zero values; imported documents are merged
// into state verbatim, without validation.
func Decode(r io.Reader) (*Project, error) {
	var p Project
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}
