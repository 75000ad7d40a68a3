// Package commands provides the named, interactively invoked editor commands
// and the registry that dispatches them.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"zile/internal/editor"
	"zile/internal/logger"
)

var (
	// ErrNoVariableName is returned when a variable prompt is answered with nothing.
	ErrNoVariableName = errors.New("no variable name given")
	// ErrUnknownCommand is returned by Execute for an unregistered name.
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a named editor command.
type Command interface {
	Name() string
	Description() string
	Usage() string
	// Execute runs the command against sess. Arguments stand in for prompt
	// answers; commands prompt through the session's minibuffer for any that
	// are missing.
	Execute(sess *editor.Session, args []string) error
}

// Registry manages command registration and lookup.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a registry with no commands.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds cmd. The name must be non-empty and not already taken.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name() == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name())
	}

	r.commands[cmd.Name()] = cmd
	return nil
}

// Unregister removes the command called name, if any.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, name)
}

// Get returns the command called name.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns every command sorted by name.
func (r *Registry) GetAll() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		all = append(all, cmd)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

// Names returns the sorted command names, for completion.
func (r *Registry) Names() []string {
	all := r.GetAll()
	names := make([]string, len(all))
	for i, cmd := range all {
		names[i] = cmd.Name()
	}
	return names
}

// Execute runs the command called name.
func (r *Registry) Execute(name string, sess *editor.Session, args []string) error {
	cmd, exists := r.Get(name)
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	logger.CommandExecution(name, args)
	return cmd.Execute(sess, args)
}

// IsValidCommand reports whether name is registered.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}
