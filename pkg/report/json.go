package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/tetrado/pkg/quadruplex"
)

// WriteJSON writes the analysis as indented JSON.
func WriteJSON(w io.Writer, a *quadruplex.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes an analysis written by WriteJSON.
func ReadJSON(r io.Reader) (*quadruplex.Analysis, error) {
	var a quadruplex.Analysis
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &a, nil
}
