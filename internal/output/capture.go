package output

import (
	"bytes"
	"strings"
)

// CaptureBuffer collects printer output in tests.
type CaptureBuffer struct {
	buf bytes.Buffer
}

// NewCaptureBuffer creates an empty capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer.
func (c *CaptureBuffer) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// String returns everything captured so far.
func (c *CaptureBuffer) String() string {
	return c.buf.String()
}

// Lines returns the captured output split into lines.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Reset clears the captured output.
func (c *CaptureBuffer) Reset() {
	c.buf.Reset()
}

// CaptureOutput runs fn with a plain printer and returns what it wrote.
func CaptureOutput(fn func(*Printer)) string {
	buffer := NewCaptureBuffer()
	fn(NewPrinter(WithWriter(buffer), PlainText()))
	return buffer.String()
}
