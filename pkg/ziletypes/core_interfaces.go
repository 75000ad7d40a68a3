// Package ziletypes defines the interfaces zile's core consumes from its
// collaborators: the minibuffer prompt and the display.
package ziletypes

import "errors"

// ErrCancelled is returned by a Prompter when the user cancels a prompt.
var ErrCancelled = errors.New("quit")

// Prompter is the interactive minibuffer. Every read may return ErrCancelled.
type Prompter interface {
	// Read reads free text, offering def as the initial contents.
	Read(prompt string, def string) (string, error)
	// ReadCompletion reads text with tab completion over candidates.
	// Any text is accepted; validating it is the caller's job.
	ReadCompletion(prompt string, candidates []string) (string, error)
	// ReadBoolean asks a yes/no question.
	ReadBoolean(prompt string) (bool, error)
	// ReadColor reads a color name or "#rrggbb" value.
	ReadColor(prompt string) (string, error)
	// Error shows a message in the minibuffer error line.
	Error(format string, args ...interface{})
	// Clear clears the minibuffer.
	Clear()
}

// Display caches variables that rendering depends on.
type Display interface {
	// RefreshCachedVariables re-reads display-related variables after a change.
	RefreshCachedVariables()
}
