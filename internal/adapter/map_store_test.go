package adapter

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/autoload/internal/model"
)

func TestLocalMapStore_RenderKeepsOrder(t *testing.T) {
	store := NewMapStore()

	classMap := m.ClassMapOf(
		`Zeta\Last`, "/src/Zeta/Last.php",
		`Alpha\First`, "/src/Alpha/First.php",
		"Foo_Bar", "/src/Foo/Bar.php",
	)

	data, err := store.Render(classMap)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "# "+generatedHeader)

	zeta := strings.Index(text, `"Zeta\\Last"`)
	alpha := strings.Index(text, `"Alpha\\First"`)
	foo := strings.Index(text, `"Foo_Bar"`)
	require.NotEqual(t, -1, zeta, text)
	require.NotEqual(t, -1, alpha, text)
	require.NotEqual(t, -1, foo, text)
	assert.Less(t, zeta, alpha)
	assert.Less(t, alpha, foo)

	again, err := store.Render(classMap)
	require.NoError(t, err)
	assert.Equal(t, data, again, "Render() is not deterministic")
}

func TestLocalMapStore_RenderEmpty(t *testing.T) {
	store := NewMapStore()

	data, err := store.Render(m.NewClassMap())
	require.NoError(t, err)

	parsed, err := store.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Len())
}

func TestLocalMapStore_Parse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *m.ClassMap
		wantErr bool
	}{
		{
			name:  "plain scalars",
			input: "MyApp\\MyClass: /src/MyClass.php\nFoo_Bar: /src/Foo/Bar.php\n",
			want:  m.ClassMapOf(`MyApp\MyClass`, "/src/MyClass.php", "Foo_Bar", "/src/Foo/Bar.php"),
		},
		{
			name:  "quoted numbers are strings",
			input: "\"1\": \"2\"\n",
			want:  m.ClassMapOf("1", "2"),
		},
		{
			name:  "duplicate keys keep last value",
			input: "A: /one.php\nB: /b.php\nA: /two.php\n",
			want:  m.ClassMapOf("A", "/two.php", "B", "/b.php"),
		},
		{
			name:  "flow mapping",
			input: "{A: /a.php}\n",
			want:  m.ClassMapOf("A", "/a.php"),
		},
		{name: "empty document", input: "", wantErr: true},
		{name: "null document", input: "null\n", wantErr: true},
		{name: "sequence", input: "- a\n- b\n", wantErr: true},
		{name: "scalar document", input: "just text\n", wantErr: true},
		{name: "integer value", input: "A: 1\n", wantErr: true},
		{name: "null value", input: "A:\n", wantErr: true},
		{name: "nested mapping value", input: "A:\n  b: c\n", wantErr: true},
		{name: "integer key", input: "1: /a.php\n", wantErr: true},
		{name: "syntax error", input: "A: [unclosed\n", wantErr: true},
	}

	store := NewMapStore()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Parse([]byte(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, m.ErrInvalidFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Keys(), got.Keys())
			assert.True(t, tt.want.Equal(got), "Parse() = %v, want %v", got.Keys(), tt.want.Keys())
		})
	}
}

func TestLocalMapStore_RoundTripGeneratedMaps(t *testing.T) {
	store := NewMapStore()
	rng := rand.New(rand.NewPCG(7, 11))

	for _, size := range []int{0, 1, 2, 17, 256, 1000} {
		t.Run(fmt.Sprintf("%d entries", size), func(t *testing.T) {
			classMap := m.NewClassMap()
			for classMap.Len() < size {
				classMap.Set(m.Identifier(randomString(rng)), m.Path(randomString(rng)))
			}

			data, err := store.Render(classMap)
			require.NoError(t, err)

			parsed, err := store.Parse(data)
			require.NoError(t, err)

			assert.True(t, classMap.Equal(parsed), "Parse(Render(m)) lost or reordered entries")
		})
	}
}

func TestLocalMapStore_RoundTripInvalidUTF8(t *testing.T) {
	store := NewMapStore()

	tests := []struct {
		name     string
		classMap *m.ClassMap
	}{
		{"invalid key and value", m.ClassMapOf("\xff\xfe", "\xff\xfe")},
		{"invalid path only", m.ClassMapOf(`MyApp\Latin1`, "/src/caf\xe9.php")},
		{"mixed with valid entries", m.ClassMapOf("A", "/a.php", "B\x80", "/b.php", "C", "/c\xc3.php")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := store.Render(tt.classMap)
			require.NoError(t, err)
			assert.Contains(t, string(data), "!!binary")

			parsed, err := store.Parse(data)
			require.NoError(t, err)
			assert.True(t, tt.classMap.Equal(parsed), "Parse(Render(m)) lost or reordered entries")
		})
	}
}

func TestLocalMapStore_ParseRejectsBadBinary(t *testing.T) {
	_, err := NewMapStore().Parse([]byte("\"A\": !!binary \"not base64!\"\n"))
	require.ErrorIs(t, err, m.ErrInvalidFormat)
}

func TestLocalMapStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMapStore()

	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "classmap.yaml")
	classMap := m.ClassMapOf(`MyApp\MyClass`, "/src/MyClass.php", "Foo_Bar", "/src/Foo/Bar.php")

	require.NoError(t, store.Save(ctx, target, classMap))

	_, err := os.Stat(target)
	require.NoError(t, err, "Save() did not create the file")

	loaded, err := store.Load(ctx, target)
	require.NoError(t, err)
	assert.True(t, classMap.Equal(loaded))
}

func TestLocalMapStore_LoadMissingFile(t *testing.T) {
	store := NewMapStore()

	_, err := store.Load(context.Background(), filepath.Join(t.TempDir(), "bad.yaml"))
	require.ErrorIs(t, err, m.ErrNotFound)
}

func TestLocalMapStore_LoadInvalidFile(t *testing.T) {
	store := NewMapStore()

	path := filepath.Join(t.TempDir(), "classmap.yaml")
	writeTestFile(t, path, "- not\n- a\n- mapping\n")

	_, err := store.Load(context.Background(), path)
	require.ErrorIs(t, err, m.ErrInvalidFormat)
	assert.Contains(t, err.Error(), path)
}

func TestLocalMapStore_ZeroValueUsesDefaultService(t *testing.T) {
	store := &LocalMapStore{}

	path := filepath.Join(t.TempDir(), "classmap.yaml")
	require.NoError(t, store.Save(context.Background(), path, m.ClassMapOf("A", "/a.php")))

	loaded, err := store.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []m.Identifier{"A"}, loaded.Keys())
}

const randomAlphabet = `abcXYZ019_\/.:-# '"{}[]&*!|>%@` + "\t\nåß漢🙂"

func randomString(rng *rand.Rand) string {
	runes := []rune(randomAlphabet)
	n := rng.IntN(24)

	var b strings.Builder
	for range n {
		b.WriteRune(runes[rng.IntN(len(runes))])
	}

	return b.String()
}
