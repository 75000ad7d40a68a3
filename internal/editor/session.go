// Package editor ties zile's core state together: the variable store, the
// Lisp runtime, buffers and the minibuffer/display collaborators.
package editor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/steelseries/golisp"

	"zile/internal/lisp"
	"zile/internal/logger"
	"zile/internal/variables"
	"zile/pkg/ziletypes"
)

// ScratchBufferName is the buffer every session starts in.
const ScratchBufferName = "*scratch*"

// Options configures a new Session.
type Options struct {
	// Schema defaults to variables.DefaultSchema.
	Schema *variables.Schema
	// Variables are applied over the schema defaults after Init.
	Variables map[string]string
	// Prompter is the minibuffer. It may be nil for non-interactive sessions.
	Prompter ziletypes.Prompter
	// Display defaults to a DisplayCache over the session's store.
	Display ziletypes.Display
	// Out receives command output such as temporary buffers. Defaults to io.Discard.
	Out io.Writer
}

// Session is one running editor.
type Session struct {
	Vars    *variables.Store
	Lisp    *lisp.Runtime
	Minibuf ziletypes.Prompter
	Display ziletypes.Display
	Out     io.Writer

	buffers []*Buffer
	current *Buffer
	log     *log.Logger
}

// New initialises the Lisp runtime and the variable table and opens the
// scratch buffer.
func New(opts Options) (*Session, error) {
	s := &Session{
		Vars:    variables.NewStore(opts.Schema),
		Lisp:    lisp.NewRuntime(),
		Minibuf: opts.Prompter,
		Out:     opts.Out,
		log:     logger.NewStyledLogger("Session"),
	}

	if err := s.Lisp.Init(); err != nil {
		return nil, fmt.Errorf("failed to start lisp runtime: %w", err)
	}
	s.Vars.Init()

	for name, value := range opts.Variables {
		if err := s.setFromConfig(name, value); err != nil {
			s.log.Warn("ignoring configured variable", "name", name, "error", err)
		}
	}

	if s.Out == nil {
		s.Out = io.Discard
	}

	s.Display = opts.Display
	if s.Display == nil {
		s.Display = NewDisplayCache(s.Vars)
	}

	s.current = s.CreateBuffer(ScratchBufferName)
	return s, nil
}

// Close tears down the variable table and the Lisp runtime.
func (s *Session) Close() {
	s.Vars.Teardown()
	s.Lisp.Finalise()
	s.buffers = nil
	s.current = nil
}

// CurrentBuffer returns the buffer commands act on.
func (s *Session) CurrentBuffer() *Buffer {
	return s.current
}

// SwitchTo makes b the current buffer.
func (s *Session) SwitchTo(b *Buffer) {
	s.current = b
}

// Buffers returns the open buffers in creation order.
func (s *Session) Buffers() []*Buffer {
	out := make([]*Buffer, len(s.buffers))
	copy(out, s.buffers)
	return out
}

// FindBuffer returns the buffer called name, or nil.
func (s *Session) FindBuffer(name string) *Buffer {
	for _, b := range s.buffers {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// CreateBuffer opens a new empty buffer.
func (s *Session) CreateBuffer(name string) *Buffer {
	b := NewBuffer(name, s.Vars)
	s.buffers = append(s.buffers, b)
	s.log.Debug("buffer created", "name", name, "id", b.ID)
	return b
}

// WriteTempBuffer fills the temporary buffer called name with content,
// creating it if needed. The current buffer does not change.
func (s *Session) WriteTempBuffer(name, content string) *Buffer {
	b := s.FindBuffer(name)
	if b == nil {
		b = s.CreateBuffer(name)
	}
	b.Temporary = true
	b.text.Reset()
	b.Insert(content)
	return b
}

// Listing renders the variable table with the current buffer's locals.
func (s *Session) Listing() string {
	return variables.Listing(s.Vars, s.current)
}

// Dump evaluates list and appends the variable listing, for diagnostics.
func (s *Session) Dump(list *golisp.Data) string {
	return s.Lisp.Dump(list, s.Listing())
}

// LoadInitFile reads path and applies its forms. Setq forms assign
// variables directly; anything else is evaluated. It reports false when the
// file cannot be read.
func (s *Session) LoadInitFile(path string) bool {
	list := lisp.ReadFile(path)
	if list == nil {
		return false
	}
	s.log.Debug("loading init file", "path", path)
	s.Apply(list)
	return true
}

// Apply runs every top-level form of list and returns how many variables
// were assigned.
func (s *Session) Apply(list *golisp.Data) int {
	assigned := 0
	for _, form := range lisp.Forms(list) {
		if isSetq(form) {
			n, _ := s.applySetq(form)
			assigned += n
			continue
		}
		if _, err := s.Lisp.Eval(form); err != nil {
			s.log.Warn("form failed", "form", lisp.Print(form), "error", err)
		}
	}
	if assigned > 0 {
		s.Display.RefreshCachedVariables()
	}
	return assigned
}

// Eval runs one form. A setq form assigns variables and yields the last
// value it assigned; other forms go to the Lisp runtime.
func (s *Session) Eval(form *golisp.Data) (*golisp.Data, error) {
	if !isSetq(form) {
		return s.Lisp.Eval(form)
	}
	n, last := s.applySetq(form)
	if n > 0 {
		s.Display.RefreshCachedVariables()
	}
	return last, nil
}

func isSetq(form *golisp.Data) bool {
	if !golisp.PairP(form) {
		return false
	}
	head := golisp.Car(form)
	return golisp.SymbolP(head) && strings.EqualFold(golisp.StringValue(head), "setq")
}

func (s *Session) applySetq(form *golisp.Data) (int, *golisp.Data) {
	args := lisp.Forms(golisp.Cdr(form))
	assigned := 0
	last := golisp.EmptyCons()
	for i := 0; i+1 < len(args); i += 2 {
		if !golisp.SymbolP(args[i]) {
			s.log.Warn("setq target is not a symbol", "form", lisp.Print(args[i]))
			continue
		}
		name := golisp.StringValue(args[i])
		text := s.atomText(name, args[i+1])
		s.Vars.Set(name, text)
		last = golisp.StringWithValue(text)
		assigned++
	}
	if len(args)%2 != 0 {
		s.log.Warn("setq with odd argument count", "form", lisp.Print(form))
	}
	return assigned, last
}

// atomText turns a setq value into variable text. T and NIL become
// "true"/"false" for boolean variables.
func (s *Session) atomText(name string, d *golisp.Data) string {
	switch {
	case golisp.StringP(d):
		return golisp.StringValue(d)
	case golisp.IntegerP(d):
		return strconv.FormatInt(golisp.IntegerValue(d), 10)
	case golisp.NilP(d):
		if s.Vars.KindOf(name) == variables.Boolean {
			return "false"
		}
		return ""
	case golisp.SymbolP(d):
		text := golisp.StringValue(d)
		if s.Vars.KindOf(name) == variables.Boolean {
			switch strings.ToLower(text) {
			case "t":
				return "true"
			case "nil":
				return "false"
			}
		}
		return text
	}
	return lisp.Print(d)
}

func (s *Session) setFromConfig(name, value string) error {
	switch s.Vars.KindOf(name) {
	case variables.Color:
		c, err := variables.ParseColor(value)
		if err != nil {
			return err
		}
		value = c
	case variables.Boolean:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s is boolean, got %q", name, value)
		}
		value = strconv.FormatBool(b)
	}
	if l, ok := variables.LocalByName(name); ok {
		if _, err := l.Parse(value); err != nil {
			return err
		}
	}
	s.Vars.Set(name, value)
	return nil
}
