package variables

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zile/internal/logger"
)

func newTestStore(t *testing.T, entries ...Entry) *Store {
	t.Helper()
	schema, err := NewSchema(entries)
	require.NoError(t, err)
	s := NewStore(schema)
	s.Init()
	return s
}

func TestStore_InitPopulatesDefaults(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.Initialized())

	s.Init()
	require.True(t, s.Initialized())

	for _, e := range DefaultSchema().Entries() {
		value, ok := s.Get(e.Name)
		require.True(t, ok, e.Name)
		assert.Equal(t, e.Default, value, e.Name)
	}
	assert.Equal(t, DefaultSchema().Len(), s.Len())
}

func TestStore_IllustrativeSchema(t *testing.T) {
	s := newTestStore(t,
		Entry{Name: "tab-width", Kind: Boolean, Default: "false"},
		Entry{Name: "x", Kind: Plain, Default: "1"},
	)

	value, ok := s.Get("tab-width")
	require.True(t, ok)
	assert.Equal(t, "false", value)
	assert.Equal(t, Boolean, s.KindOf("tab-width"))

	value, ok = s.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", value)
}

func TestStore_SetGet(t *testing.T) {
	tests := []struct {
		name     string
		varName  string
		value    string
		wantKind Kind
	}{
		{name: "schema variable", varName: "colors", value: "false", wantKind: Boolean},
		{name: "schema variable with non boolean text", varName: "colors", value: "yes", wantKind: Boolean},
		{name: "ad hoc variable", varName: "my-setting", value: "on", wantKind: Plain},
		{name: "empty value", varName: "backup-directory", value: "", wantKind: Plain},
		{name: "color variable", varName: "status-line-color", value: "red", wantKind: Color},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(nil)
			s.Init()

			s.Set(tt.varName, tt.value)

			value, ok := s.Get(tt.varName)
			require.True(t, ok)
			assert.Equal(t, tt.value, value)

			v, ok := s.Value(tt.varName)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, v.Kind())
		})
	}
}

func TestStore_SetTwiceKeepsOneEntry(t *testing.T) {
	s := newTestStore(t)

	s.Set("x", "7")
	s.Set("x", "9")

	value, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, "9", value)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"x"}, s.Names())
}

func TestStore_Unset(t *testing.T) {
	s := NewStore(nil)
	s.Init()
	before := s.Len()

	s.Unset("tab-width")
	_, ok := s.Get("tab-width")
	assert.False(t, ok)
	assert.Equal(t, before-1, s.Len())

	// Absent names are a no-op.
	s.Unset("tab-width")
	s.Unset("never-set")
	assert.Equal(t, before-1, s.Len())
}

func TestStore_IsEqual(t *testing.T) {
	s := newTestStore(t, Entry{Name: "mode", Default: "text"})

	assert.True(t, s.IsEqual("mode", "text"))
	assert.False(t, s.IsEqual("mode", "Text"))
	assert.False(t, s.IsEqual("absent", ""))
	assert.False(t, s.IsEqual("absent", "text"))

	s.Set("empty", "")
	assert.True(t, s.IsEqual("empty", ""))
}

func TestStore_LookupBool(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"TRUE", false},
		{"yes", false},
		{"1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s.Set("flag", tt.value)
			assert.Equal(t, tt.want, s.LookupBool("flag"))
		})
	}

	assert.False(t, s.LookupBool("never-set"))
}

func TestStore_LookupBoolWarnsAtDebug(t *testing.T) {
	prev := logger.Logger
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Logger.SetLevel(log.DebugLevel)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.Logger = prev
	})

	s := newTestStore(t)
	assert.False(t, s.LookupBool("never-set"))
	assert.Contains(t, buf.String(), "used uninitialized variable")
}

func TestStore_KindOf(t *testing.T) {
	s := NewStore(nil)
	s.Init()

	assert.Equal(t, Boolean, s.KindOf("case-fold-search"))
	assert.Equal(t, Color, s.KindOf("status-line-color"))
	assert.Equal(t, Plain, s.KindOf("fill-column"))
	assert.Equal(t, Plain, s.KindOf("unknown-variable"))

	s.Set("user-var", "true")
	assert.Equal(t, Plain, s.KindOf("user-var"))
}

func TestStore_Teardown(t *testing.T) {
	s := NewStore(nil)
	s.Init()
	s.Set("ad-hoc", "1")
	names := s.Names()

	s.Teardown()

	assert.False(t, s.Initialized())
	assert.Equal(t, 0, s.Len())
	for _, name := range names {
		_, ok := s.Get(name)
		assert.False(t, ok, name)
	}

	// A torn-down store ignores writes until it is initialised again.
	s.Set("ad-hoc", "2")
	_, ok := s.Get("ad-hoc")
	assert.False(t, ok)

	s.Init()
	value, ok := s.Get("tab-width")
	require.True(t, ok)
	assert.Equal(t, "8", value)
}

func TestStore_SetValueKeepsGivenKind(t *testing.T) {
	s := newTestStore(t)

	s.SetValue("flag", BooleanValue(true))
	v, ok := s.Value("flag")
	require.True(t, ok)
	assert.Equal(t, Boolean, v.Kind())
	assert.True(t, s.LookupBool("flag"))
}

func TestCandidates(t *testing.T) {
	s := NewStore(nil)
	s.Init()
	s.Set("ad-hoc", "x")

	got := Candidates(s)

	assert.Len(t, got, DefaultSchema().Len()+1)
	assert.ElementsMatch(t, s.Names(), got)
	assert.Contains(t, got, "ad-hoc")

	// The snapshot is independent of the store.
	got[0] = "changed"
	assert.NotContains(t, s.Names(), "changed")
}
