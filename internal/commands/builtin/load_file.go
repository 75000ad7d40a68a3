package builtin

import (
	"fmt"

	"zile/internal/commands"
	"zile/internal/editor"
)

// LoadFileCommand implements load-file.
type LoadFileCommand struct{}

// Name returns "load-file".
func (c *LoadFileCommand) Name() string {
	return "load-file"
}

// Description returns a brief description of the command.
func (c *LoadFileCommand) Description() string {
	return "Load a Lisp file, applying its setq forms"
}

// Usage returns the argument syntax.
func (c *LoadFileCommand) Usage() string {
	return "load-file [path]"
}

// Execute loads the file the way the init file is loaded.
func (c *LoadFileCommand) Execute(sess *editor.Session, args []string) error {
	in := commands.NewInput(sess, args)

	path, err := in.Text("Load file: ", "")
	if err != nil {
		return err
	}
	if !sess.LoadInitFile(path) {
		commands.Report(sess, "Cannot open load file: %s", path)
		return fmt.Errorf("cannot open load file: %s", path)
	}
	return nil
}
