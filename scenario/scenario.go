// Package scenario loads example-program inputs (initial fact lists, named
// variable assignments) from YAML or JSON files, auto-detecting format by
// file extension.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk shape of a scenario file:
//
//	metadata:
//	  name: sieve-to-100
//	facts:
//	  - "Upto(100)"
//	assignments:
//	  a: 2
//	  b: 7
//	events:
//	  start: "2024-01-15"
//	  end: "Jan 20, 2024"
//
// facts feeds a Registry-driven predicate parser (registry.go); assignments
// and events are consumed directly by the examples that need them
// (magicsquare, schedule) via their own decoding.
type Definition struct {
	Metadata    map[string]interface{} `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Facts       []string               `json:"facts,omitempty" yaml:"facts,omitempty"`
	Assignments map[string]int         `json:"assignments,omitempty" yaml:"assignments,omitempty"`
	Events      map[string]string      `json:"events,omitempty" yaml:"events,omitempty"`
}

// Load reads and decodes a scenario file, choosing a JSON or YAML decoder
// by the file's extension.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var def Definition
	switch ext {
	case "json":
		if err := json.NewDecoder(f).Decode(&def); err != nil {
			return nil, fmt.Errorf("scenario: error parsing JSON: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(f).Decode(&def); err != nil {
			return nil, fmt.Errorf("scenario: error parsing YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("scenario: unsupported file type: %q", ext)
	}
	return &def, nil
}
