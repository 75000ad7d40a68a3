package lisp

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/steelseries/golisp"

	"zile/internal/stream"
)

var errStrayClose = errors.New("unbalanced close parenthesis")

// parser is a recursive-descent reader over a stream.Source.
// It is lenient: unterminated lists and strings are closed at end of input,
// stray close parentheses are skipped, and each case is logged with its line.
type parser struct {
	src  stream.Source
	line *int
	log  *log.Logger
}

// Parse reads every form remaining in src and appends them to acc.
// line is advanced for every newline consumed. The result is a proper list of
// the top-level forms; it is empty, never nil, when nothing was read.
func Parse(src stream.Source, acc *golisp.Data, line *int) *golisp.Data {
	p := &parser{src: src, line: line, log: readerLogger()}

	forms := toArray(acc)
	for {
		form, err := p.read()
		if errors.Is(err, errStrayClose) {
			p.log.Warn("skipping unbalanced ')'", "line", *p.line)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			p.log.Error("read aborted", "line", *p.line, "error", err)
			break
		}
		forms = append(forms, form)
	}
	return list(forms)
}

// skipAtmosphere consumes whitespace and comments.
func (p *parser) skipAtmosphere() error {
	for {
		c, err := p.src.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case c == '\n':
			*p.line++
		case isSpace(c):
		case c == ';':
			for {
				c, err = p.src.ReadByte()
				if err != nil {
					return err
				}
				if c == '\n' {
					*p.line++
					break
				}
			}
		default:
			return p.src.UnreadByte()
		}
	}
}

func (p *parser) read() (*golisp.Data, error) {
	if err := p.skipAtmosphere(); err != nil {
		return nil, err
	}
	c, err := p.src.ReadByte()
	if err != nil {
		return nil, err
	}

	switch c {
	case '(':
		return p.readList()
	case ')':
		return nil, errStrayClose
	case '"':
		return p.readString()
	case '\'':
		start := *p.line
		form, err := p.read()
		if err == io.EOF {
			p.log.Warn("quote at end of input", "line", start)
		}
		if err != nil {
			return nil, err
		}
		return list([]*golisp.Data{golisp.Intern("quote"), form}), nil
	default:
		return p.readAtom(c)
	}
}

func (p *parser) readList() (*golisp.Data, error) {
	start := *p.line
	var items []*golisp.Data
	for {
		err := p.skipAtmosphere()
		if err == io.EOF {
			p.log.Warn("unterminated list", "line", start)
			return list(items), nil
		}
		if err != nil {
			return nil, err
		}

		c, err := p.src.Peek()
		if err != nil {
			return nil, err
		}
		if c == ')' {
			_, _ = p.src.ReadByte()
			return list(items), nil
		}

		item, err := p.read()
		if err == io.EOF {
			p.log.Warn("unterminated list", "line", start)
			return list(items), nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *parser) readString() (*golisp.Data, error) {
	start := *p.line
	var sb strings.Builder
	for {
		c, err := p.src.ReadByte()
		if err == io.EOF {
			p.log.Warn("unterminated string", "line", start)
			return golisp.StringWithValue(sb.String()), nil
		}
		if err != nil {
			return nil, err
		}
		switch c {
		case '"':
			return golisp.StringWithValue(sb.String()), nil
		case '\n':
			*p.line++
		case '\\':
			c, err = p.src.ReadByte()
			if err == io.EOF {
				p.log.Warn("unterminated string", "line", start)
				return golisp.StringWithValue(sb.String()), nil
			}
			if err != nil {
				return nil, err
			}
			switch c {
			case 'n':
				c = '\n'
			case 't':
				c = '\t'
			case 'r':
				c = '\r'
			}
		}
		sb.WriteByte(c)
	}
}

func (p *parser) readAtom(first byte) (*golisp.Data, error) {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		c, err := p.src.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isDelimiter(c) {
			if err := p.src.UnreadByte(); err != nil {
				return nil, err
			}
			break
		}
		sb.WriteByte(c)
	}
	return atom(sb.String()), nil
}

func atom(token string) *golisp.Data {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return golisp.IntegerWithValue(n)
	}
	return golisp.Intern(token)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == '"' || c == ';' || c == '\''
}

func list(items []*golisp.Data) *golisp.Data {
	if len(items) == 0 {
		return golisp.EmptyCons()
	}
	return golisp.ArrayToList(items)
}

func toArray(l *golisp.Data) []*golisp.Data {
	if l == nil || golisp.NilP(l) {
		return nil
	}
	return golisp.ToArray(l)
}
