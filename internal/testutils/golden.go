package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// UpdateGoldenEnv, when set to 1, makes AssertGolden rewrite golden files.
const UpdateGoldenEnv = "ZILE_UPDATE_GOLDEN"

// AssertGolden compares got with testdata/<name>.golden and fails with a diff
// when they differ.
func AssertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name+".golden")

	if os.Getenv(UpdateGoldenEnv) == "1" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "missing golden file; run with %s=1 to create it", UpdateGoldenEnv)

	if string(want) != got {
		t.Errorf("output differs from %s:\n%s", path, Diff(string(want), got))
	}
}

// Diff renders the character-level differences between expected and actual,
// one chunk per line.
func Diff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&sb, "- %q\n", d.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&sb, "+ %q\n", d.Text)
		case diffmatchpatch.DiffEqual:
			if len(d.Text) > 50 {
				fmt.Fprintf(&sb, "  %q...\n", d.Text[:47])
			} else {
				fmt.Fprintf(&sb, "  %q\n", d.Text)
			}
		}
	}
	return sb.String()
}
