// Package output writes command results to the terminal. Styled output is
// used only when the writer is a terminal; otherwise text is plain.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode selects styled or plain rendering.
type Mode int

const (
	// ModeAuto styles output when the writer is a terminal.
	ModeAuto Mode = iota
	// ModeStyled always styles output.
	ModeStyled
	// ModePlain never styles output and strips escape sequences from text.
	ModePlain
)

// Printer is the output handler commands and the shell write through.
type Printer struct {
	writer   io.Writer
	mode     Mode
	silent   bool
	prefix   string
	wordWrap int

	renderer *lipgloss.Renderer
	mu       sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout unless configured otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer:   os.Stdout,
		mode:     ModeAuto,
		wordWrap: 80,
	}
	for _, opt := range options {
		opt(p)
	}
	p.renderer = lipgloss.NewRenderer(p.writer, termenv.WithProfile(p.profile()))
	return p
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styled reports whether the printer emits escape sequences.
func (p *Printer) Styled() bool {
	switch p.mode {
	case ModeStyled:
		return true
	case ModePlain:
		return false
	}
	return IsTerminal(p.writer)
}

func (p *Printer) profile() termenv.Profile {
	if !p.Styled() {
		return termenv.Ascii
	}
	if p.mode == ModeStyled && !IsTerminal(p.writer) {
		return termenv.TrueColor
	}
	return termenv.NewOutput(p.writer).EnvColorProfile()
}

// Print writes text as is.
func (p *Printer) Print(text string) {
	p.write(text)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.write(fmt.Sprintf(format, args...))
}

// Println writes text followed by a newline.
func (p *Printer) Println(text string) {
	p.write(withNewline(text))
}

// Info writes an informational line.
func (p *Printer) Info(text string) {
	p.write(withNewline(p.renderer.NewStyle().Faint(true).Render(text)))
}

// Error writes an error line.
func (p *Printer) Error(text string) {
	style := p.renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	p.write(withNewline(style.Render(text)))
}

// Markdown renders md through glamour. Plain printers use glamour's notty
// style so the structure survives without escape sequences.
func (p *Printer) Markdown(md string) error {
	style := "notty"
	if p.Styled() {
		style = "dark"
		if !p.renderer.HasDarkBackground() {
			style = "light"
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(p.wordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	p.write(rendered)
	return nil
}

// Swatch writes label next to a block in the given "#rrggbb" color.
func (p *Printer) Swatch(label, hex string) {
	block := p.renderer.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	if !p.Styled() {
		block = "[" + hex + "]"
	}
	p.write(withNewline(block + " " + label))
}

func (p *Printer) write(text string) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.Styled() {
		text = ansi.Strip(text)
	}
	if p.prefix != "" {
		text = p.prefix + text
	}
	_, _ = io.WriteString(p.writer, text)
}

func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Write implements io.Writer so a Printer can back a session's output.
func (p *Printer) Write(b []byte) (int, error) {
	p.write(string(b))
	return len(b), nil
}
