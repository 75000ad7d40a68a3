package output

import "io"

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithWriter sets the destination. Default is os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode sets the rendering mode.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// PlainText forces plain output.
func PlainText() Option {
	return WithMode(ModePlain)
}

// Silent suppresses all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// WithPrefix adds a prefix to every write.
func WithPrefix(prefix string) Option {
	return func(p *Printer) {
		p.prefix = prefix
	}
}

// WithWordWrap sets the markdown wrap width.
func WithWordWrap(width int) Option {
	return func(p *Printer) {
		if width > 0 {
			p.wordWrap = width
		}
	}
}
