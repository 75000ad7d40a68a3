package builtin

import (
	"fmt"

	"zile/internal/commands"
	"zile/internal/editor"
	"zile/internal/lisp"
)

// EvalExpressionCommand implements eval-expression.
type EvalExpressionCommand struct{}

// Name returns "eval-expression".
func (c *EvalExpressionCommand) Name() string {
	return "eval-expression"
}

// Description returns a brief description of the command.
func (c *EvalExpressionCommand) Description() string {
	return "Read and evaluate Lisp forms, printing each result"
}

// Usage returns the argument syntax.
func (c *EvalExpressionCommand) Usage() string {
	return "eval-expression [expression]"
}

// Execute evaluates every form in the expression. Evaluation stops at the
// first error.
func (c *EvalExpressionCommand) Execute(sess *editor.Session, args []string) error {
	in := commands.NewInput(sess, args)

	text, err := in.Text("Eval: ", "")
	if err != nil {
		return err
	}

	for _, form := range lisp.Forms(lisp.ReadString(text)) {
		result, err := sess.Eval(form)
		if err != nil {
			commands.Report(sess, "%v", err)
			return fmt.Errorf("failed to evaluate %s: %w", lisp.Print(form), err)
		}
		if _, err := fmt.Fprintln(sess.Out, lisp.Print(result)); err != nil {
			return err
		}
	}
	return nil
}
