package builtin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zile/internal/commands"
	"zile/internal/output"
	"zile/internal/testutils"
	"zile/internal/variables"
	"zile/pkg/ziletypes"
)

func TestListVariablesCommand(t *testing.T) {
	f := newFixture(t)
	f.sess.CurrentBuffer().SetLocal(variables.TabWidth, 2)
	scratch := f.sess.CurrentBuffer()

	require.NoError(t, (&ListVariablesCommand{}).Execute(f.sess, nil))

	b := f.sess.FindBuffer(VariableListBufferName)
	require.NotNil(t, b)
	assert.True(t, b.Temporary)
	assert.Same(t, scratch, f.sess.CurrentBuffer())
	assert.Equal(t, b.String(), f.out.String())
	assert.True(t, strings.HasPrefix(b.String(), "Global variables:\n"))
	assert.Contains(t, b.String(), `tab-width                      "2"`)
}

func TestDescribeVariableCommand(t *testing.T) {
	f := newFixture(t, testutils.Text("fill-column"))

	require.NoError(t, (&DescribeVariableCommand{}).Execute(f.sess, nil))

	assert.Contains(t, f.out.String(), "# fill-column")
	help := f.sess.FindBuffer(HelpBufferName)
	require.NotNil(t, help)
	assert.Equal(t, f.out.String(), help.String())
	assert.Equal(t, "Describe variable: ", f.prompt.Prompts[0].Text)
}

func TestDescribeVariableCommand_Printer(t *testing.T) {
	capture := output.NewCaptureBuffer()
	f := newFixture(t)
	f.sess.Out = output.NewPrinter(output.WithWriter(capture), output.PlainText())

	require.NoError(t, (&DescribeVariableCommand{}).Execute(f.sess, []string{"status-line-color"}))

	out := capture.String()
	assert.Contains(t, out, "status-line-color")
	assert.Contains(t, out, "[#0000ff] blue")
}

func TestDescribeVariableCommand_Errors(t *testing.T) {
	f := newFixture(t, testutils.Text(""))
	assert.ErrorIs(t, (&DescribeVariableCommand{}).Execute(f.sess, nil), commands.ErrNoVariableName)

	f = newFixture(t, testutils.Text("missing"))
	assert.Error(t, (&DescribeVariableCommand{}).Execute(f.sess, nil))
	assert.Equal(t, []string{"undefined variable name `missing'"}, f.prompt.Errors)

	f = newFixture(t, testutils.Cancel)
	assert.ErrorIs(t, (&DescribeVariableCommand{}).Execute(f.sess, nil), ziletypes.ErrCancelled)
}

func TestEvalExpressionCommand(t *testing.T) {
	sess, out := newBatchSession(t)

	err := (&EvalExpressionCommand{}).Execute(sess, []string{`(setq fill-column 70) "text" 42`})

	require.NoError(t, err)
	assert.Equal(t, "\"70\"\n\"text\"\n42\n", out.String())
	assert.True(t, sess.Vars.IsEqual("fill-column", "70"))
}

func TestLoadFileCommand(t *testing.T) {
	sess, _ := newBatchSession(t)
	path := testutils.WriteFile(t, "settings.el", "(setq auto-fill-mode t tab-width 2)\n")

	require.NoError(t, (&LoadFileCommand{}).Execute(sess, []string{path}))
	assert.True(t, sess.Vars.IsEqual("auto-fill-mode", "true"))
	assert.Equal(t, 2, sess.CurrentBuffer().TabWidth())

	f := newFixture(t, testutils.Text("/no/such/file.el"))
	assert.Error(t, (&LoadFileCommand{}).Execute(f.sess, nil))
	assert.Equal(t, []string{"Cannot open load file: /no/such/file.el"}, f.prompt.Errors)
}

func TestRegisterAll(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"describe-variable",
		"eval-expression",
		"help",
		"list-variables",
		"load-file",
		"set-variable",
	}, r.Names())

	assert.Error(t, RegisterAll(r), "registering twice collides")
}

func TestHelpCommand(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	sess, out := newBatchSession(t)

	require.NoError(t, r.Execute("help", sess, nil))
	assert.Contains(t, out.String(), "set-variable [name [value]]")
	assert.Contains(t, out.String(), "List available commands")
}
