package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zile/internal/lisp"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNew(t *testing.T) {
	s := newSession(t, Options{})

	assert.True(t, s.Vars.Initialized())
	assert.True(t, s.Lisp.Initialized())
	require.NotNil(t, s.CurrentBuffer())
	assert.Equal(t, ScratchBufferName, s.CurrentBuffer().Name)
	assert.IsType(t, &DisplayCache{}, s.Display)
}

func TestNew_ConfiguredVariables(t *testing.T) {
	s := newSession(t, Options{Variables: map[string]string{
		"fill-column":       "80",
		"colors":            "0",
		"text-color":        "#ABC",
		"status-line-color": "not-a-color",
		"tab-width":         "0",
		"my-setting":        "x",
	}})

	assert.True(t, s.Vars.IsEqual("fill-column", "80"))
	assert.True(t, s.Vars.IsEqual("colors", "false"))
	assert.True(t, s.Vars.IsEqual("text-color", "#aabbcc"))
	assert.True(t, s.Vars.IsEqual("status-line-color", "blue"), "invalid color is ignored")
	assert.True(t, s.Vars.IsEqual("tab-width", "8"), "below the minimum is ignored")
	assert.True(t, s.Vars.IsEqual("my-setting", "x"))
}

func TestClose(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)

	s.Close()
	assert.False(t, s.Vars.Initialized())
	assert.False(t, s.Lisp.Initialized())
	assert.Nil(t, s.CurrentBuffer())
}

func TestWriteTempBuffer(t *testing.T) {
	s := newSession(t, Options{})
	scratch := s.CurrentBuffer()

	b := s.WriteTempBuffer("*Help*", "first")
	assert.True(t, b.Temporary)
	assert.Equal(t, "first", b.String())
	assert.Same(t, scratch, s.CurrentBuffer())

	again := s.WriteTempBuffer("*Help*", "second")
	assert.Same(t, b, again)
	assert.Equal(t, "second", again.String())
	assert.Len(t, s.Buffers(), 2)
}

func TestApply_Setq(t *testing.T) {
	s := newSession(t, Options{})
	d := s.Display.(*DisplayCache)

	n := s.Apply(lisp.ReadString(`
		; settings
		(setq fill-column 65 backup-directory "~/bak")
		(setq colors nil display-time t)
		(setq odd)`))

	assert.Equal(t, 4, n)
	assert.True(t, s.Vars.IsEqual("fill-column", "65"))
	assert.True(t, s.Vars.IsEqual("backup-directory", "~/bak"))
	assert.True(t, s.Vars.IsEqual("colors", "false"))
	assert.True(t, s.Vars.IsEqual("display-time", "true"))
	assert.Equal(t, 1, d.Refreshes)
	assert.False(t, d.Colors)
}

func TestLoadInitFile(t *testing.T) {
	s := newSession(t, Options{})

	path := filepath.Join(t.TempDir(), ".zile")
	require.NoError(t, os.WriteFile(path, []byte("(setq tab-width 4)\n"), 0o644))

	assert.True(t, s.LoadInitFile(path))
	assert.Equal(t, 4, s.CurrentBuffer().TabWidth())

	assert.False(t, s.LoadInitFile(filepath.Join(t.TempDir(), "missing")))
}

func TestSessionDump(t *testing.T) {
	s := newSession(t, Options{})

	out := s.Dump(lisp.ReadString(""))
	assert.True(t, strings.HasPrefix(out, "Eval results:\n"))
	assert.Contains(t, out, "\n\nVariables:\nGlobal variables:")
	assert.True(t, strings.HasSuffix(out, s.Listing()))
}

func TestSessionEval(t *testing.T) {
	s := newSession(t, Options{})
	d := s.Display.(*DisplayCache)

	forms := lisp.Forms(lisp.ReadString(`(setq status-line-color "red" ring-bell nil)`))
	require.Len(t, forms, 1)

	result, err := s.Eval(forms[0])
	require.NoError(t, err)
	assert.Equal(t, `"false"`, lisp.Print(result))
	assert.True(t, s.Vars.IsEqual("status-line-color", "red"))
	assert.Equal(t, "red", d.StatusLineColor)
}
