package variables

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var defaultSchemaData []byte

// Entry describes one recognised variable.
type Entry struct {
	Name    string `yaml:"name"`
	Kind    Kind   `yaml:"kind"`
	Default string `yaml:"default"`
	Doc     string `yaml:"doc"`
}

// Schema is the fixed table of recognised variables. It is never mutated
// after construction.
type Schema struct {
	entries []Entry
	index   map[string]int
}

type schemaFile struct {
	Variables []Entry `yaml:"variables"`
}

// NewSchema builds a schema from entries. Names must be unique and non-empty.
func NewSchema(entries []Entry) (*Schema, error) {
	s := &Schema{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(s.entries, entries)

	for i, e := range s.entries {
		if e.Name == "" {
			return nil, fmt.Errorf("schema entry %d has no name", i)
		}
		if _, dup := s.index[e.Name]; dup {
			return nil, fmt.Errorf("duplicate schema entry %q", e.Name)
		}
		s.index[e.Name] = i
	}
	return s, nil
}

// LoadSchema decodes a YAML schema document.
func LoadSchema(data []byte) (*Schema, error) {
	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse variable schema: %w", err)
	}
	return NewSchema(file.Variables)
}

var (
	defaultSchema     *Schema
	defaultSchemaOnce sync.Once
)

// DefaultSchema returns the schema compiled into the binary.
func DefaultSchema() *Schema {
	defaultSchemaOnce.Do(func() {
		s, err := LoadSchema(defaultSchemaData)
		if err != nil {
			panic(err)
		}
		defaultSchema = s
	})
	return defaultSchema
}

// Entries returns a copy of the schema entries in declaration order.
func (s *Schema) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup returns the entry for name.
func (s *Schema) Lookup(name string) (Entry, bool) {
	i, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// KindOf returns the declared kind of name; unknown names are Plain.
func (s *Schema) KindOf(name string) Kind {
	if e, ok := s.Lookup(name); ok {
		return e.Kind
	}
	return Plain
}

// Len returns the number of entries.
func (s *Schema) Len() int {
	return len(s.entries)
}
