package builtin

import (
	"fmt"

	"zile/internal/commands"
	"zile/internal/editor"
	"zile/internal/output"
	"zile/internal/variables"
)

// HelpBufferName is the temporary buffer describe-variable fills.
const HelpBufferName = "*Help*"

// DescribeVariableCommand implements describe-variable.
type DescribeVariableCommand struct{}

// Name returns "describe-variable".
func (c *DescribeVariableCommand) Name() string {
	return "describe-variable"
}

// Description returns a brief description of the command.
func (c *DescribeVariableCommand) Description() string {
	return "Show a variable's kind, value and documentation"
}

// Usage returns the argument syntax.
func (c *DescribeVariableCommand) Usage() string {
	return "describe-variable [name]"
}

// Execute describes one variable into the help buffer.
func (c *DescribeVariableCommand) Execute(sess *editor.Session, args []string) error {
	in := commands.NewInput(sess, args)

	name, err := in.Completion("Describe variable: ", variables.Candidates(sess.Vars))
	if err != nil {
		return err
	}
	if name == "" {
		commands.Report(sess, "No variable name given")
		return commands.ErrNoVariableName
	}

	text, err := variables.Describe(sess.Vars, sess.CurrentBuffer(), name)
	if err != nil {
		commands.Report(sess, "%v", err)
		return err
	}
	sess.WriteTempBuffer(HelpBufferName, text)

	p, ok := sess.Out.(*output.Printer)
	if !ok {
		_, err = fmt.Fprint(sess.Out, text)
		return err
	}
	if err := p.Markdown(text); err != nil {
		return err
	}
	if sess.Vars.KindOf(name) == variables.Color {
		value, _ := sess.Vars.Get(name)
		if hex, err := variables.ColorHex(value); err == nil {
			p.Swatch(value, hex)
		}
	}
	return nil
}
