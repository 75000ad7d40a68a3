// Package stream provides the byte sources consumed by the Lisp reader.
//
// A Source is a pull cursor with one byte of pushback. The reader never
// unreads more than one byte before reading again, so both backends only
// guarantee a single level of undo.
package stream

import (
	"bufio"
	"io"
	"os"
)

// Source is a stateful byte cursor. ReadByte returns io.EOF at end of input.
type Source interface {
	io.ByteScanner
	// Peek returns the next byte without consuming it.
	Peek() (byte, error)
}

// StringSource reads from an immutable string.
type StringSource struct {
	text string
	pos  int
}

// NewStringSource returns a Source positioned at the start of text.
func NewStringSource(text string) *StringSource {
	return &StringSource{text: text}
}

// ReadByte returns the byte at the cursor and advances it.
func (s *StringSource) ReadByte() (byte, error) {
	if s.pos >= len(s.text) {
		return 0, io.EOF
	}
	c := s.text[s.pos]
	s.pos++
	return c, nil
}

// UnreadByte moves the cursor back over the byte just read.
func (s *StringSource) UnreadByte() error {
	if s.pos == 0 {
		return bufio.ErrInvalidUnreadByte
	}
	s.pos--
	return nil
}

// Peek returns the byte at the cursor without advancing.
func (s *StringSource) Peek() (byte, error) {
	if s.pos >= len(s.text) {
		return 0, io.EOF
	}
	return s.text[s.pos], nil
}

// Offset reports how many bytes have been consumed.
func (s *StringSource) Offset() int {
	return s.pos
}

// FileSource reads from an open file through a buffered reader.
// The caller that opened the file owns it and must Close it.
type FileSource struct {
	file *os.File
	r    *bufio.Reader
}

// OpenFile opens path for reading.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{file: f, r: bufio.NewReader(f)}, nil
}

// ReadByte delegates to the buffered reader.
func (f *FileSource) ReadByte() (byte, error) {
	return f.r.ReadByte()
}

// UnreadByte delegates to the buffered reader.
func (f *FileSource) UnreadByte() error {
	return f.r.UnreadByte()
}

// Peek returns the next buffered byte without consuming it.
func (f *FileSource) Peek() (byte, error) {
	b, err := f.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Name returns the path the source was opened with.
func (f *FileSource) Name() string {
	return f.file.Name()
}

// Close releases the underlying file.
func (f *FileSource) Close() error {
	return f.file.Close()
}
