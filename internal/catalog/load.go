package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a catalog override. Sections missing from the payload
// keep their built-in values; present sections replace them wholesale.
func ParseYAML(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: override payload is empty")
	}
	var t Tables
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("catalog: decode override: %w", err)
	}

	base := BuiltinTables()
	if t.CoverageRatio == 0 {
		t.CoverageRatio = base.CoverageRatio
	}
	if len(t.Rules) == 0 {
		t.Rules = base.Rules
	}
	if len(t.Templates) == 0 {
		t.Templates = base.Templates
	}
	if len(t.Geometry) == 0 {
		t.Geometry = base.Geometry
	}
	if t.Extras == nil {
		t.Extras = base.Extras
	}
	return New(t)
}

// LoadFile reads a YAML catalog override from disk. An empty path returns
// the built-in catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// MarshalYAML renders the catalog's tables, the same shape ParseYAML reads.
func (c *Catalog) MarshalYAML() (any, error) {
	return c.Tables(), nil
}
