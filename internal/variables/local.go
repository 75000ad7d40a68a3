package variables

import (
	"fmt"
	"strconv"
	"strings"
)

// Local is a setting whose authoritative value lives on each buffer once the
// buffer overrides it. The store's value is only the fallback for buffers
// that never did. The set is closed: no other variable shadows this way.
type Local int

// Buffer-local settings.
const (
	TabWidth Local = iota
	FillColumn
)

// Locals lists every buffer-local setting in listing order.
var Locals = []Local{FillColumn, TabWidth}

// Name returns the variable name the setting shadows.
func (l Local) Name() string {
	switch l {
	case TabWidth:
		return "tab-width"
	case FillColumn:
		return "fill-column"
	default:
		return fmt.Sprintf("Local(%d)", int(l))
	}
}

func (l Local) String() string {
	return l.Name()
}

// Min is the smallest accepted value.
func (l Local) Min() int {
	switch l {
	case FillColumn:
		return 2
	default:
		return 1
	}
}

// Default is used when neither the buffer nor the store has a usable value.
func (l Local) Default() int {
	switch l {
	case FillColumn:
		return 72
	default:
		return 8
	}
}

// LocalByName returns the setting shadowing name.
func LocalByName(name string) (Local, bool) {
	for _, l := range Locals {
		if l.Name() == name {
			return l, true
		}
	}
	return 0, false
}

// Parse converts input to a value for l, enforcing the minimum.
func (l Local) Parse(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < l.Min() {
		return 0, fmt.Errorf("Invalid %s value `%s'", l.Name(), input)
	}
	return n, nil
}

// Fallback returns the store's value for l, or l.Default() when it is
// missing or unusable.
func (s *Store) Fallback(l Local) int {
	text, ok := s.Get(l.Name())
	if !ok {
		return l.Default()
	}
	n, err := l.Parse(text)
	if err != nil {
		return l.Default()
	}
	return n
}

// Overrides is anything holding per-buffer values for Local settings.
type Overrides interface {
	Override(l Local) (int, bool)
}

// Resolve is the two-tier lookup: the buffer override when present, else the
// store's fallback.
func Resolve(o Overrides, s *Store, l Local) int {
	if o != nil {
		if n, ok := o.Override(l); ok {
			return n
		}
	}
	return s.Fallback(l)
}
