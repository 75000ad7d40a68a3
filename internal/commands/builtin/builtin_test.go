package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"zile/internal/editor"
	"zile/internal/testutils"
)

type fixture struct {
	sess    *editor.Session
	prompt  *testutils.MockPrompter
	display *testutils.MockDisplay
	out     *bytes.Buffer
}

func newFixture(t *testing.T, answers ...testutils.Answer) *fixture {
	t.Helper()
	f := &fixture{
		prompt:  testutils.NewMockPrompter(answers...),
		display: &testutils.MockDisplay{},
		out:     &bytes.Buffer{},
	}
	sess, err := editor.New(editor.Options{
		Prompter: f.prompt,
		Display:  f.display,
		Out:      f.out,
	})
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	f.sess = sess
	return f
}

func newBatchSession(t *testing.T) (*editor.Session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	sess, err := editor.New(editor.Options{Out: out})
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	return sess, out
}
