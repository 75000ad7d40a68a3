// Package variables implements zile's typed variable table.
//
// A Store maps names to kind-tagged values. Its schema supplies defaults and
// declared kinds; names outside the schema may still be set and are Plain.
// The table is owned by the editor session; nothing here is global except the
// compiled-in default schema.
package variables

import (
	"github.com/charmbracelet/log"

	"zile/internal/logger"
)

// Store is the variable table. It is not safe for concurrent use.
type Store struct {
	schema *Schema
	table  map[string]Value
	log    *log.Logger
}

// NewStore returns an empty, uninitialised store over schema.
// A nil schema means DefaultSchema.
func NewStore(schema *Schema) *Store {
	if schema == nil {
		schema = DefaultSchema()
	}
	return &Store{
		schema: schema,
		log:    logger.NewStyledLogger("Variables"),
	}
}

// Schema returns the store's schema.
func (s *Store) Schema() *Schema {
	return s.schema
}

// Init allocates the table and sets every schema entry to its default.
// Calling Init on a live store discards its current contents.
func (s *Store) Init() {
	s.table = make(map[string]Value, s.schema.Len())
	for _, e := range s.schema.entries {
		s.Set(e.Name, e.Default)
	}
	s.log.Debug("variables initialised", "count", len(s.table))
}

// Initialized reports whether the table is live.
func (s *Store) Initialized() bool {
	return s.table != nil
}

// Teardown unsets every entry and releases the table.
// The store must not be used again until Init is called.
func (s *Store) Teardown() {
	for name := range s.table {
		s.Unset(name)
	}
	s.table = nil
	s.log.Debug("variables torn down")
}

// Set replaces the value of name, tagging it with the schema kind.
func (s *Store) Set(name, value string) {
	s.SetValue(name, NewValue(s.schema.KindOf(name), value))
}

// SetValue replaces the value of name with v as given.
func (s *Store) SetValue(name string, v Value) {
	if s.table == nil {
		s.log.Error("set on uninitialised variable table", "name", name)
		return
	}
	s.Unset(name)
	s.table[name] = v
	logger.VariableOperation("set", name, v.String())
}

// Unset removes name. Removing an absent name does nothing.
func (s *Store) Unset(name string) {
	if _, ok := s.table[name]; !ok {
		return
	}
	delete(s.table, name)
	logger.VariableOperation("unset", name, "")
}

// Get returns the text of name. The schema is not consulted.
func (s *Store) Get(name string) (string, bool) {
	v, ok := s.table[name]
	if !ok {
		s.log.Debug("getting unknown variable", "name", name)
		return "", false
	}
	s.log.Debug("getting variable", "name", name, "value", v.String())
	return v.String(), true
}

// Value returns the tagged value of name.
func (s *Store) Value(name string) (Value, bool) {
	v, ok := s.table[name]
	return v, ok
}

// IsEqual reports whether name is set and its text equals value.
func (s *Store) IsEqual(name, value string) bool {
	v, ok := s.table[name]
	return ok && v.String() == value
}

// LookupBool reports whether name is set to "true". An unset name is false;
// at debug verbosity it is also reported as a warning.
func (s *Store) LookupBool(name string) bool {
	if v, ok := s.table[name]; ok {
		return v.Bool()
	}
	if logger.IsDebug() {
		s.log.Warn("used uninitialized variable", "name", name)
	}
	return false
}

// KindOf returns the schema kind of name; unknown names are Plain.
func (s *Store) KindOf(name string) Kind {
	return s.schema.KindOf(name)
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	return len(s.table)
}

// Names returns every live name in table enumeration order.
// The slice belongs to the caller.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.table))
	for name := range s.table {
		names = append(names, name)
	}
	return names
}
