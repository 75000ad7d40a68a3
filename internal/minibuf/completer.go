package minibuf

import (
	"sort"
	"strings"
)

// Completer offers prefix completion over a fixed candidate list.
// It implements readline.AutoCompleter.
type Completer struct {
	candidates []string
}

// NewCompleter returns a completer over a sorted, de-duplicated copy of candidates.
func NewCompleter(candidates []string) *Completer {
	seen := make(map[string]bool, len(candidates))
	sorted := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			sorted = append(sorted, c)
		}
	}
	sort.Strings(sorted)
	return &Completer{candidates: sorted}
}

// Do returns the suffixes that complete the text before pos, and the length
// of the text they extend.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	typed := string(line[:pos])

	var suggestions [][]rune
	for _, m := range c.Matches(typed) {
		suggestions = append(suggestions, []rune(strings.TrimPrefix(m, typed)))
	}
	return suggestions, len([]rune(typed))
}

// Matches returns the candidates starting with prefix, in order.
func (c *Completer) Matches(prefix string) []string {
	start := sort.SearchStrings(c.candidates, prefix)
	var out []string
	for _, cand := range c.candidates[start:] {
		if !strings.HasPrefix(cand, prefix) {
			break
		}
		out = append(out, cand)
	}
	return out
}
