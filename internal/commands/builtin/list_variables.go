package builtin

import (
	"fmt"

	"zile/internal/editor"
)

// VariableListBufferName is the temporary buffer list-variables fills.
const VariableListBufferName = "*Variable List*"

// ListVariablesCommand implements list-variables.
type ListVariablesCommand struct{}

// Name returns "list-variables".
func (c *ListVariablesCommand) Name() string {
	return "list-variables"
}

// Description returns a brief description of the command.
func (c *ListVariablesCommand) Description() string {
	return "List all variables and the current buffer's local values"
}

// Usage returns the argument syntax.
func (c *ListVariablesCommand) Usage() string {
	return "list-variables"
}

// Execute writes the listing into the variable list buffer and shows it.
// The local values come from the buffer that was current when it ran.
func (c *ListVariablesCommand) Execute(sess *editor.Session, _ []string) error {
	b := sess.WriteTempBuffer(VariableListBufferName, sess.Listing())
	_, err := fmt.Fprint(sess.Out, b.String())
	return err
}
