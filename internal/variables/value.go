package variables

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the declared kind of a variable. It decides how the value is prompted for.
type Kind int

// Variable kinds.
const (
	Plain Kind = iota
	Boolean
	Color
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Color:
		return "color"
	default:
		return "plain"
	}
}

// ParseKind converts a kind name to a Kind. The one-letter codes "b", "c"
// and "" are accepted as short forms.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boolean", "b":
		return Boolean, nil
	case "color", "c":
		return Color, nil
	case "plain", "p", "":
		return Plain, nil
	default:
		return Plain, fmt.Errorf("unknown variable kind %q", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	kind, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Value is a variable value tagged with its kind.
// The text is kept exactly as set so that Get returns what Set stored.
type Value struct {
	kind Kind
	text string
}

// BooleanValue returns a Boolean value stored as "true" or "false".
func BooleanValue(b bool) Value {
	if b {
		return Value{kind: Boolean, text: "true"}
	}
	return Value{kind: Boolean, text: "false"}
}

// ParseYesNo reads a yes/no answer. Besides yes and no it accepts the
// spellings a Boolean variable may be written with.
func ParseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y", "true", "t":
		return true, nil
	case "no", "n", "false", "nil":
		return false, nil
	}
	return false, errors.New("Please answer yes or no.")
}

// ColorValue returns a Color value.
func ColorValue(name string) Value {
	return Value{kind: Color, text: name}
}

// PlainValue returns a free-form value.
func PlainValue(s string) Value {
	return Value{kind: Plain, text: s}
}

// NewValue tags text with kind.
func NewValue(kind Kind, text string) Value {
	return Value{kind: kind, text: text}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the stored text.
func (v Value) String() string {
	return v.text
}

// Bool reports whether the text is exactly "true".
func (v Value) Bool() bool {
	return v.text == "true"
}
