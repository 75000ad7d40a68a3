package editor

import (
	"strings"

	"github.com/google/uuid"

	"zile/internal/variables"
)

// Buffer is an editing buffer. It holds its own values for the buffer-local
// settings once they are set; until then the variable store supplies them.
type Buffer struct {
	ID   string
	Name string

	// Temporary buffers such as "*Variable List*" are read-only listings.
	Temporary bool

	store  *variables.Store
	locals map[variables.Local]int
	text   strings.Builder
}

// NewBuffer returns an empty buffer falling back to store for local settings.
func NewBuffer(name string, store *variables.Store) *Buffer {
	return &Buffer{
		ID:     uuid.NewString(),
		Name:   name,
		store:  store,
		locals: make(map[variables.Local]int),
	}
}

// Override implements variables.Overrides.
func (b *Buffer) Override(l variables.Local) (int, bool) {
	if b == nil {
		return 0, false
	}
	n, ok := b.locals[l]
	return n, ok
}

// SetLocal makes l buffer-local with value n.
func (b *Buffer) SetLocal(l variables.Local, n int) {
	b.locals[l] = n
}

// Local returns the effective value of l for this buffer.
func (b *Buffer) Local(l variables.Local) int {
	return variables.Resolve(b, b.store, l)
}

// TabWidth returns the effective tab width.
func (b *Buffer) TabWidth() int {
	return b.Local(variables.TabWidth)
}

// FillColumn returns the effective fill column.
func (b *Buffer) FillColumn() int {
	return b.Local(variables.FillColumn)
}

// Insert appends s to the buffer text.
func (b *Buffer) Insert(s string) {
	b.text.WriteString(s)
}

// String returns the buffer text.
func (b *Buffer) String() string {
	return b.text.String()
}
