package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML layout of a catalog file.
type File struct {
	Missions []Mission `yaml:"missions"`
	Concepts []Concept `yaml:"concepts"`
}

// LoadFile reads and validates a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c, err := New(f.Missions, f.Concepts)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	for _, m := range f.Missions {
		if _, err := c.ConceptByID(m.ConceptID); err != nil {
			return nil, fmt.Errorf("invalid catalog: mission %q references unknown concept %q", m.ID, m.ConceptID)
		}
	}
	return c, nil
}
