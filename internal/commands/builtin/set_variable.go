// Package builtin holds zile's built-in editor commands.
package builtin

import (
	"fmt"
	"strconv"

	"zile/internal/commands"
	"zile/internal/editor"
	"zile/internal/variables"
)

// SetVariableCommand implements set-variable. It reads a variable name with
// completion, then a value shaped by the variable's kind, then applies it.
// tab-width and fill-column are set on the current buffer only.
type SetVariableCommand struct{}

// Name returns "set-variable".
func (c *SetVariableCommand) Name() string {
	return "set-variable"
}

// Description returns a brief description of the command.
func (c *SetVariableCommand) Description() string {
	return "Set a variable value"
}

// Usage returns the argument syntax.
func (c *SetVariableCommand) Usage() string {
	return "set-variable [name [value]]"
}

// Execute runs the prompt-name, prompt-value, apply sequence. Cancelling
// either prompt fails the command. A rejected tab-width or fill-column is
// reported and dropped, and the command still succeeds.
func (c *SetVariableCommand) Execute(sess *editor.Session, args []string) error {
	in := commands.NewInput(sess, args)

	name, err := c.promptName(sess, in)
	if err != nil {
		return err
	}

	value, err := c.promptValue(sess, in, name)
	if err != nil {
		return err
	}

	c.apply(sess, name, value)
	return nil
}

func (c *SetVariableCommand) promptName(sess *editor.Session, in *commands.Input) (string, error) {
	for {
		name, err := in.Completion("Set variable: ", variables.Candidates(sess.Vars))
		if err != nil {
			return "", err
		}
		if name == "" {
			commands.Report(sess, "No variable name given")
			return "", commands.ErrNoVariableName
		}
		if _, ok := sess.Vars.Get(name); ok {
			return name, nil
		}
		commands.Report(sess, "Undefined variable name `%s'", name)
	}
}

func (c *SetVariableCommand) promptValue(sess *editor.Session, in *commands.Input, name string) (string, error) {
	prompt := fmt.Sprintf("Set %s to value: ", name)

	switch sess.Vars.KindOf(name) {
	case variables.Color:
		return in.Color(prompt)
	case variables.Boolean:
		yes, err := in.Boolean(prompt)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(yes), nil
	}

	def, _ := sess.Vars.Get(name)
	if l, ok := variables.LocalByName(name); ok {
		def = strconv.Itoa(sess.CurrentBuffer().Local(l))
	}
	return in.Text(prompt, def)
}

func (c *SetVariableCommand) apply(sess *editor.Session, name, value string) {
	if l, ok := variables.LocalByName(name); ok {
		n, err := l.Parse(value)
		if err != nil {
			commands.Report(sess, "%v", err)
			return
		}
		sess.CurrentBuffer().SetLocal(l, n)
		return
	}

	sess.Vars.Set(name, value)
	sess.Display.RefreshCachedVariables()
}
