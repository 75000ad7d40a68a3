// Package lisp reads zile's Lisp source into golisp lists and prints them back.
//
// Reading goes through a stream.Source so the same parser serves strings and
// files. Evaluation belongs to golisp; this package only drives it for the
// diagnostic dump.
package lisp

import (
	"github.com/charmbracelet/log"
	"github.com/steelseries/golisp"

	"zile/internal/logger"
	"zile/internal/stream"
)

func readerLogger() *log.Logger {
	return logger.NewStyledLogger("Reader")
}

// Read parses every form in src, starting a fresh line count and an empty
// accumulator. It does not close src.
func Read(src stream.Source) *golisp.Data {
	line := 0
	var acc *golisp.Data
	return Parse(src, acc, &line)
}

// ReadString parses text. The result is an empty list when text has no forms.
func ReadString(text string) *golisp.Data {
	return Read(stream.NewStringSource(text))
}

// ReadFile parses the file at path. It returns nil, not an empty list, when
// the file cannot be opened; the file is always closed before returning.
func ReadFile(path string) *golisp.Data {
	src, err := stream.OpenFile(path)
	if err != nil {
		logger.Debug("lisp file not readable", "path", path, "error", err)
		return nil
	}
	defer src.Close()

	return Read(src)
}

// Forms returns the top-level forms of a read result.
func Forms(list *golisp.Data) []*golisp.Data {
	return toArray(list)
}
