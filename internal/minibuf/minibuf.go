// Package minibuf implements the interactive prompt commands read their
// answers from.
package minibuf

import (
	"fmt"

	"github.com/charmbracelet/log"

	"zile/internal/logger"
	"zile/internal/variables"
	"zile/pkg/ziletypes"
)

var _ ziletypes.Prompter = (*Minibuf)(nil)

// Minibuf implements ziletypes.Prompter over a Terminal.
type Minibuf struct {
	term Terminal
	log  *log.Logger
}

// New returns a minibuffer reading from term.
func New(term Terminal) *Minibuf {
	return &Minibuf{
		term: term,
		log:  logger.NewStyledLogger("Minibuf"),
	}
}

// Read reads free text with def as the initial contents.
func (m *Minibuf) Read(prompt, def string) (string, error) {
	return m.term.Prompt(prompt, def, nil)
}

// ReadCompletion reads text, completing over candidates on Tab.
func (m *Minibuf) ReadCompletion(prompt string, candidates []string) (string, error) {
	return m.term.Prompt(prompt, "", NewCompleter(candidates))
}

// ReadBoolean asks until the answer is yes or no.
func (m *Minibuf) ReadBoolean(prompt string) (bool, error) {
	completer := NewCompleter([]string{"yes", "no"})
	for {
		answer, err := m.term.Prompt(prompt+"(yes or no) ", "", completer)
		if err != nil {
			return false, err
		}
		yes, err := variables.ParseYesNo(answer)
		if err == nil {
			return yes, nil
		}
		m.term.Message(err.Error())
	}
}

// ReadColor asks until the answer is a known color, returned normalised.
func (m *Minibuf) ReadColor(prompt string) (string, error) {
	completer := NewCompleter(variables.ColorNames())
	for {
		answer, err := m.term.Prompt(prompt, "", completer)
		if err != nil {
			return "", err
		}
		color, err := variables.ParseColor(answer)
		if err == nil {
			return color, nil
		}
		m.term.Message(err.Error())
	}
}

// Error shows a message on the error line.
func (m *Minibuf) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	m.log.Debug("minibuffer error", "message", msg)
	m.term.Message(msg)
}

// Clear blanks the message line.
func (m *Minibuf) Clear() {
	m.term.Message("")
}
