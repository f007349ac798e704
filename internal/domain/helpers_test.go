package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/autoload/internal/model"
)

// dotSyntax spells identifiers with dots so tests read like A.B.Widget.
var dotSyntax = m.Syntax{Separator: ".", FlatSeparator: "_", Extension: ".ext"}

func writeSource(t *testing.T, root string, rel string, content string) m.Path {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return canonical(t, path)
}

func mkdir(t *testing.T, root string, rel string) m.Path {
	t.Helper()

	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(path, 0o755))

	return canonical(t, path)
}

// canonical returns the symlink-free absolute form of path, which is what
// the resolver and the scanner report.
func canonical(t *testing.T, path string) m.Path {
	t.Helper()

	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)

	abs, err := filepath.Abs(resolved)
	require.NoError(t, err)

	return m.Path(abs)
}
