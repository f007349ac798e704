package domain

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/autoload/internal/adapter"
	m "github.com/mouse-blink/autoload/internal/model"
)

func newTestScanner(opts ...ScannerOption) Scanner {
	opts = append([]ScannerOption{WithScanSyntax(dotSyntax)}, opts...)

	return NewScanner(adapter.NewLocalSourceFSAdapter(), adapter.NewLineDeclarationParser(), opts...)
}

func TestScanner_BuildsIdentifiers(t *testing.T) {
	root := t.TempDir()
	myClass := writeSource(t, root, "MyClass.ext", "<?php\nnamespace MyApp;\nclass MyClass {}\n")
	flat := writeSource(t, root, "Foo/Bar.ext", "<?php\nclass Foo_Bar\n{\n}\n")
	contract := writeSource(t, root, "Contracts/Greeter.ext", "<?php\nnamespace MyApp.Contracts;\ninterface Greeter\n{\n}\n")
	base := writeSource(t, root, "Base.ext", "<?php\nnamespace MyApp;\nabstract class Base {}\n")
	trait := writeSource(t, root, "Greets.ext", "<?php\nnamespace MyApp;\ntrait Greets {}\n")
	writeSource(t, root, "helpers.ext", "<?php\nfunction helper() {}\n")
	writeSource(t, root, "notes.txt", "class NotSource\n")

	got, err := newTestScanner().Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	want := map[m.Identifier]m.Path{
		"MyApp.MyClass":           myClass,
		"Foo_Bar":                 flat,
		"MyApp.Contracts.Greeter": contract,
		"MyApp.Base":              base,
		"MyApp.Greets":            trait,
	}

	assert.Equal(t, len(want), got.Len())

	for id, path := range want {
		gotPath, ok := got.Get(id)
		assert.True(t, ok, "missing %s", id)
		assert.Equal(t, path, gotPath)
	}
}

func TestScanner_ExtensionIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	upper := writeSource(t, root, "Upper.EXT", "class Upper {}\n")

	got, err := newTestScanner().Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	path, ok := got.Get("Upper")
	require.True(t, ok)
	assert.Equal(t, upper, path)
}

func TestScanner_Idempotent(t *testing.T) {
	root := t.TempDir()
	for i := range 40 {
		writeSource(t, root, fmt.Sprintf("pkg%d/Class%d.ext", i%5, i), fmt.Sprintf("namespace App.Pkg%d;\nclass Class%d {}\n", i%5, i))
	}

	scanner := newTestScanner(WithWorkers(4))

	first, err := scanner.Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	second, err := scanner.Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, 40, first.Len())
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Keys(), second.Keys())
}

func TestScanner_WorkerCountDoesNotChangeResult(t *testing.T) {
	root := t.TempDir()
	for i := range 25 {
		writeSource(t, root, fmt.Sprintf("d%d/C%d.ext", i%3, i), fmt.Sprintf("class C%d {}\n", i))
	}

	serial, err := newTestScanner(WithWorkers(1)).Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	parallel, err := newTestScanner(WithWorkers(16)).Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	defaulted, err := newTestScanner(WithWorkers(0)).Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, serial.Keys(), parallel.Keys())
	assert.True(t, serial.Equal(parallel))
	assert.True(t, serial.Equal(defaulted))
}

func TestScanner_DuplicateIdentifierLastDiscoveredWins(t *testing.T) {
	root := t.TempDir()
	first := writeSource(t, root, "a/Dup.ext", "namespace App;\nclass Dup {}\n")
	second := writeSource(t, root, "b/Dup.ext", "namespace App;\nclass Dup {}\n")

	var logs bytes.Buffer

	got, err := newTestScanner(WithScanLogger(log.New(&logs))).Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	path, ok := got.Get("App.Dup")
	require.True(t, ok)
	assert.Equal(t, second, path)
	assert.Contains(t, logs.String(), "duplicate declaration")
	assert.Contains(t, logs.String(), string(first))

	// Root order decides discovery order across roots.
	got, err = newTestScanner().Scan(context.Background(), m.Path(filepath.Join(root, "b")), m.Path(filepath.Join(root, "a")))
	require.NoError(t, err)

	path, ok = got.Get("App.Dup")
	require.True(t, ok)
	assert.Equal(t, first, path)
}

func TestScanner_OverlappingRootsVisitFilesOnce(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "Top.ext", "class Top {}\n")
	writeSource(t, root, "sub/Nested.ext", "class Nested {}\n")

	var logs bytes.Buffer

	got, err := newTestScanner(WithScanLogger(log.New(&logs))).Scan(context.Background(),
		m.Path(root),
		m.Path(filepath.Join(root, "sub")),
		m.Path(root),
	)
	require.NoError(t, err)

	assert.Equal(t, []m.Identifier{"Top", "Nested"}, got.Keys())
	assert.NotContains(t, logs.String(), "duplicate declaration")
}

func TestScanner_DoesNotFollowSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeSource(t, root, "Inside.ext", "class Inside {}\n")
	writeSource(t, outside, "Outside.ext", "class Outside {}\n")
	writeSource(t, outside, "Linked.ext", "class Linked {}\n")

	if err := os.Symlink(outside, filepath.Join(root, "linkdir")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	require.NoError(t, os.Symlink(filepath.Join(outside, "Linked.ext"), filepath.Join(root, "Linked.ext")))

	got, err := newTestScanner().Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, []m.Identifier{"Inside"}, got.Keys())
}

func TestScanner_RootErrors(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "Ok.ext", "class Ok {}\n")
	file := writeSource(t, root, "file.ext", "class File {}\n")

	tests := []struct {
		name  string
		roots []m.Path
	}{
		{name: "missing root", roots: []m.Path{m.Path(filepath.Join(root, "missing"))}},
		{name: "missing root after a valid one", roots: []m.Path{m.Path(root), m.Path(filepath.Join(root, "missing"))}},
		{name: "file as root", roots: []m.Path{file}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestScanner().Scan(context.Background(), tt.roots...)
			require.ErrorIs(t, err, m.ErrNotFound)
			assert.Nil(t, got)
		})
	}
}

func TestScanner_NoRoots(t *testing.T) {
	got, err := newTestScanner().Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

// vanishingFileFS reports one extra entry whose lstat failed, the way
// filepath.Walk does when a file disappears mid-walk.
type vanishingFileFS struct {
	adapter.SourceFSAdapter
	vanished string
}

func (f vanishingFileFS) Walk(root m.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	if err := fn(f.vanished, nil, os.ErrNotExist); err != nil {
		return err
	}

	return f.SourceFSAdapter.Walk(root, recursive, fn)
}

func TestScanner_SkipsVanishedFile(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "A.ext", "class A {}\n")

	var logs bytes.Buffer

	fsAdapter := vanishingFileFS{
		SourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		vanished:        filepath.Join(root, "Gone.ext"),
	}
	scanner := NewScanner(fsAdapter, adapter.NewLineDeclarationParser(),
		WithScanSyntax(dotSyntax),
		WithScanLogger(log.New(&logs)),
	)

	got, err := scanner.Scan(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, []m.Identifier{"A"}, got.Keys())
	assert.Contains(t, logs.String(), "skipping unreadable file")
	assert.Contains(t, logs.String(), "Gone.ext")
}

func TestScanner_ContextCanceled(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "A.ext", "class A {}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := newTestScanner().Scan(ctx, m.Path(root))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestScanner_ResultIsIndependent(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "A.ext", "class A {}\n")

	scanner := newTestScanner()

	first, err := scanner.Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	first.Set("Injected", "/nowhere.ext")

	second, err := scanner.Scan(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.False(t, second.Has("Injected"))
}

func TestScanner_ExampleFixtures(t *testing.T) {
	src := filepath.Join("..", "..", "examples", "classmap", "src")

	got, err := NewScanner(adapter.NewLocalSourceFSAdapter(), adapter.NewLineDeclarationParser()).
		Scan(context.Background(), m.Path(src))
	require.NoError(t, err)

	assert.ElementsMatch(t, []m.Identifier{`MyApp\MyClass`, "Foo_Bar", `MyApp\Contracts\Greeter`}, got.Keys())

	path, ok := got.Get(`MyApp\MyClass`)
	require.True(t, ok)
	assert.Equal(t, canonical(t, filepath.Join(src, "MyClass.php")), path)
}
