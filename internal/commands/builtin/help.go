package builtin

import (
	"fmt"
	"strings"

	"zile/internal/commands"
	"zile/internal/editor"
)

// HelpCommand lists the registered commands.
type HelpCommand struct {
	Registry *commands.Registry
}

// Name returns "help".
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of the command.
func (c *HelpCommand) Description() string {
	return "List available commands"
}

// Usage returns the argument syntax.
func (c *HelpCommand) Usage() string {
	return "help"
}

// Execute prints one line per command with its usage and description.
func (c *HelpCommand) Execute(sess *editor.Session, _ []string) error {
	var sb strings.Builder
	for _, cmd := range c.Registry.GetAll() {
		fmt.Fprintf(&sb, "%-32s %s\n", cmd.Usage(), cmd.Description())
	}
	sb.WriteString("\nLines starting with ( are evaluated as Lisp.\n")
	_, err := fmt.Fprint(sess.Out, sb.String())
	return err
}
