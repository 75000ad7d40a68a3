package minibuf

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"zile/pkg/ziletypes"
)

// Terminal is the line editor behind the minibuffer.
type Terminal interface {
	// Prompt reads one line. completer may be nil.
	Prompt(prompt, def string, completer readline.AutoCompleter) (string, error)
	// Message shows a line of feedback.
	Message(text string)
}

// ReadlineTerminal drives a shared readline instance, swapping the
// completer for each prompt.
type ReadlineTerminal struct {
	rl *readline.Instance
}

// NewReadlineTerminal wraps rl.
func NewReadlineTerminal(rl *readline.Instance) *ReadlineTerminal {
	return &ReadlineTerminal{rl: rl}
}

// Prompt implements Terminal. Ctrl-C and Ctrl-D cancel.
func (t *ReadlineTerminal) Prompt(prompt, def string, completer readline.AutoCompleter) (string, error) {
	prev := t.rl.Config.AutoComplete
	prevPrompt := t.rl.Config.Prompt
	defer func() {
		t.rl.Config.AutoComplete = prev
		t.rl.SetPrompt(prevPrompt)
	}()

	t.rl.Config.AutoComplete = completer
	t.rl.SetPrompt(prompt)

	line, err := t.rl.ReadlineWithDefault(def)
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ziletypes.ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return line, nil
}

// Message implements Terminal.
func (t *ReadlineTerminal) Message(text string) {
	_, _ = fmt.Fprintln(t.rl.Stderr(), text)
}
