package commands

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zile/internal/editor"
)

// MockCommand implements Command for testing.
type MockCommand struct {
	name        string
	executeFunc func(sess *editor.Session, args []string) error
}

func NewMockCommand(name string) *MockCommand {
	return &MockCommand{name: name}
}

func (m *MockCommand) Name() string        { return m.name }
func (m *MockCommand) Description() string { return fmt.Sprintf("Mock command: %s", m.name) }
func (m *MockCommand) Usage() string       { return m.name }

func (m *MockCommand) Execute(sess *editor.Session, args []string) error {
	if m.executeFunc != nil {
		return m.executeFunc(sess, args)
	}
	return nil
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		wantErr string
	}{
		{name: "valid command", cmd: "set-variable"},
		{name: "empty name", cmd: "", wantErr: "command name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(NewMockCommand(tt.cmd))
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.IsValidCommand(tt.cmd))
		})
	}
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewMockCommand("dup")))

	err := r.Register(NewMockCommand("dup"))
	assert.EqualError(t, err, "command dup already registered")
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewMockCommand("gone")))

	r.Unregister("gone")
	r.Unregister("never-there")

	_, ok := r.Get("gone")
	assert.False(t, ok)
}

func TestRegistry_GetAllSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"load-file", "describe-variable", "set-variable"} {
		require.NoError(t, r.Register(NewMockCommand(name)))
	}

	assert.Equal(t, []string{"describe-variable", "load-file", "set-variable"}, r.Names())
	assert.Len(t, r.GetAll(), 3)
}

func TestRegistry_Execute(t *testing.T) {
	r := NewRegistry()
	var gotArgs []string
	cmd := NewMockCommand("echo")
	cmd.executeFunc = func(_ *editor.Session, args []string) error {
		gotArgs = args
		return nil
	}
	require.NoError(t, r.Register(cmd))

	require.NoError(t, r.Execute("echo", nil, []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, gotArgs)

	err := r.Execute("missing", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_Execute_CommandError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	cmd := NewMockCommand("fail")
	cmd.executeFunc = func(*editor.Session, []string) error { return boom }
	require.NoError(t, r.Register(cmd))

	assert.ErrorIs(t, r.Execute("fail", nil, nil), boom)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	numGoroutines := 10
	commandsPerGoroutine := 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < commandsPerGoroutine; j++ {
				assert.NoError(t, r.Register(NewMockCommand(fmt.Sprintf("cmd-%d-%d", id, j))))
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.GetAll(), numGoroutines*commandsPerGoroutine)

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < commandsPerGoroutine; j++ {
				name := fmt.Sprintf("cmd-%d-%d", id, j)
				cmd, ok := r.Get(name)
				assert.True(t, ok)
				assert.Equal(t, name, cmd.Name())
			}
		}(i)
	}
	wg.Wait()
}
