package variables

import (
	"fmt"
	"strings"
)

// Describe returns a markdown description of name: its kind, current value
// and, for schema variables, the documentation. The buffer-local settings
// show the active buffer's value next to the global default.
func Describe(s *Store, o Overrides, name string) (string, error) {
	text, ok := s.Get(name)
	if !ok {
		return "", fmt.Errorf("undefined variable name `%s'", name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)
	fmt.Fprintf(&sb, "`%s` is a %s variable.\n\n", name, s.KindOf(name))

	if l, local := LocalByName(name); local {
		fmt.Fprintf(&sb, "Its value in the current buffer is `%d`.\n\n", Resolve(o, s, l))
		fmt.Fprintf(&sb, "Its global default is `%q`.\n\n", text)
	} else {
		fmt.Fprintf(&sb, "Its value is `%q`.\n\n", text)
	}

	if e, ok := s.schema.Lookup(name); ok && strings.TrimSpace(e.Doc) != "" {
		sb.WriteString("## Documentation\n\n")
		sb.WriteString(strings.TrimSpace(e.Doc))
		sb.WriteString("\n")
	} else {
		sb.WriteString("Not documented.\n")
	}
	return sb.String(), nil
}
