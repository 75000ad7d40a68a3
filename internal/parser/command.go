// Package parser splits shell input lines into a command name and arguments.
package parser

import (
	"fmt"
	"strings"
)

// Command is one parsed input line.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits input on whitespace. Single or double quotes group
// words into one argument and are removed; inside double quotes a backslash
// escapes the next character.
func ParseCommand(input string) (*Command, error) {
	words, err := splitWords(strings.TrimSpace(input))
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return &Command{Name: words[0], Args: words[1:]}, nil
}

func splitWords(s string) ([]string, error) {
	var words []string
	var current strings.Builder
	inWord := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case quoteChar != 0 && c == quoteChar:
			quoteChar = 0
		case quoteChar == '"' && c == '\\' && i+1 < len(s):
			i++
			current.WriteByte(s[i])
		case quoteChar != 0:
			current.WriteByte(c)
		case c == '"' || c == '\'':
			quoteChar = c
			inWord = true
		case c == ' ' || c == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteByte(c)
			inWord = true
		}
	}

	if quoteChar != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quoteChar)
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}

// String renders the command back as an input line, quoting arguments that
// need it.
func (c *Command) String() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'\\") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
