package lisp

import (
	"strconv"
	"strings"

	"github.com/steelseries/golisp"
)

// Print renders a single datum in a form ReadString accepts.
// Values the reader cannot produce fall back to golisp's own printer.
func Print(d *golisp.Data) string {
	var sb strings.Builder
	writeDatum(&sb, d)
	return sb.String()
}

// PrintForms renders a read result as source text, one top-level form per line.
func PrintForms(list *golisp.Data) string {
	var sb strings.Builder
	for _, form := range Forms(list) {
		writeDatum(&sb, form)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeDatum(sb *strings.Builder, d *golisp.Data) {
	switch {
	case d == nil || golisp.NilP(d):
		sb.WriteString("()")
	case golisp.IntegerP(d):
		sb.WriteString(strconv.FormatInt(golisp.IntegerValue(d), 10))
	case golisp.StringP(d):
		writeString(sb, golisp.StringValue(d))
	case golisp.SymbolP(d):
		sb.WriteString(golisp.StringValue(d))
	case golisp.PairP(d):
		sb.WriteByte('(')
		for i, item := range golisp.ToArray(d) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeDatum(sb, item)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString(golisp.String(d))
	}
}

func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
}
