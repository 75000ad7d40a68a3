package commands

import (
	"errors"
	"fmt"

	"zile/internal/editor"
	"zile/internal/logger"
	"zile/internal/variables"
)

// ErrNotInteractive is returned when a command needs an answer that was not
// given as an argument and the session has no minibuffer.
var ErrNotInteractive = errors.New("argument required in a non-interactive session")

// Input feeds a command its answers: explicit arguments first, then the
// session's minibuffer.
type Input struct {
	sess *editor.Session
	args []string
}

// NewInput returns an Input over args.
func NewInput(sess *editor.Session, args []string) *Input {
	return &Input{sess: sess, args: args}
}

func (in *Input) next() (string, bool) {
	if len(in.args) == 0 {
		return "", false
	}
	a := in.args[0]
	in.args = in.args[1:]
	return a, true
}

// Completion reads an answer offering candidates for completion.
func (in *Input) Completion(prompt string, candidates []string) (string, error) {
	if a, ok := in.next(); ok {
		return a, nil
	}
	if in.sess.Minibuf == nil {
		return "", ErrNotInteractive
	}
	return in.sess.Minibuf.ReadCompletion(prompt, candidates)
}

// Text reads free text with def as the initial contents.
func (in *Input) Text(prompt, def string) (string, error) {
	if a, ok := in.next(); ok {
		return a, nil
	}
	if in.sess.Minibuf == nil {
		return "", ErrNotInteractive
	}
	return in.sess.Minibuf.Read(prompt, def)
}

// Boolean reads a yes/no answer.
func (in *Input) Boolean(prompt string) (bool, error) {
	if a, ok := in.next(); ok {
		return variables.ParseYesNo(a)
	}
	if in.sess.Minibuf == nil {
		return false, ErrNotInteractive
	}
	return in.sess.Minibuf.ReadBoolean(prompt)
}

// Color reads a color. Argument colors are validated here; the minibuffer
// validates its own.
func (in *Input) Color(prompt string) (string, error) {
	if a, ok := in.next(); ok {
		return variables.ParseColor(a)
	}
	if in.sess.Minibuf == nil {
		return "", ErrNotInteractive
	}
	return in.sess.Minibuf.ReadColor(prompt)
}

// Report shows a message on the minibuffer error line, or logs it when the
// session has no minibuffer.
func Report(sess *editor.Session, format string, args ...interface{}) {
	if sess.Minibuf != nil {
		sess.Minibuf.Error(format, args...)
		return
	}
	logger.Warn(fmt.Sprintf(format, args...))
}
