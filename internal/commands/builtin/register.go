package builtin

import (
	"fmt"

	"zile/internal/commands"
)

// RegisterAll adds every built-in command to r.
func RegisterAll(r *commands.Registry) error {
	all := []commands.Command{
		&SetVariableCommand{},
		&ListVariablesCommand{},
		&DescribeVariableCommand{},
		&EvalExpressionCommand{},
		&LoadFileCommand{},
		&HelpCommand{Registry: r},
	}
	for _, cmd := range all {
		if err := r.Register(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.Name(), err)
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in commands.
func NewRegistry() (*commands.Registry, error) {
	r := commands.NewRegistry()
	if err := RegisterAll(r); err != nil {
		return nil, err
	}
	return r, nil
}
