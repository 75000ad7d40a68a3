package variables

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const nameColumn = "%-30s %s\n"

// Listing renders every variable sorted by name, followed by the active
// buffer's values for the buffer-local settings. Those come from o, not from
// the table, so the shadowing is visible.
func Listing(s *Store, o Overrides) string {
	var sb strings.Builder

	sb.WriteString("Global variables:\n\n")
	writeHeader(&sb)

	names := s.Names()
	sort.Strings(names)
	for _, name := range names {
		if v, ok := s.Value(name); ok {
			fmt.Fprintf(&sb, nameColumn, name, `"`+v.String()+`"`)
		}
	}

	sb.WriteString("\nLocal buffer variables:\n\n")
	writeHeader(&sb)
	for _, l := range Locals {
		fmt.Fprintf(&sb, nameColumn, l.Name(), fmt.Sprintf("\"%d\"", Resolve(o, s, l)))
	}

	return sb.String()
}

// WriteListing writes Listing to w.
func WriteListing(w io.Writer, s *Store, o Overrides) error {
	_, err := io.WriteString(w, Listing(s, o))
	return err
}

func writeHeader(sb *strings.Builder) {
	fmt.Fprintf(sb, nameColumn, "Variable", "Value")
	fmt.Fprintf(sb, nameColumn, "--------", "-----")
}
