package domain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/autoload/internal/model"
)

func TestGuardedResolver_ConcurrentUpdatesAndQueries(t *testing.T) {
	root := t.TempDir()

	files := make([]m.Path, 20)
	for i := range files {
		files[i] = writeSource(t, root, fmt.Sprintf("C%d.ext", i), "")
	}

	guarded := NewGuardedResolver(newTestResolver(t))

	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(2)

		go func() {
			defer wg.Done()

			err := guarded.Update(func(r *Resolver) error {
				return r.AddClassMap(m.ClassMapOf(fmt.Sprintf("C%d", i), string(file)))
			})
			assert.NoError(t, err)
		}()

		go func() {
			defer wg.Done()

			_ = guarded.Explain(m.Identifier(fmt.Sprintf("C%d", i)))
		}()
	}

	wg.Wait()

	for i, file := range files {
		path, ok := guarded.Resolve(m.Identifier(fmt.Sprintf("C%d", i)))
		require.True(t, ok)
		assert.Equal(t, file, path)
	}
}

func TestGuardedResolver_LoadAndUpdateError(t *testing.T) {
	file := writeSource(t, t.TempDir(), "Thing.ext", "")

	var loaded []m.Identifier

	guarded := NewGuardedResolver(newTestResolver(t, WithLoadFunc(func(id m.Identifier, _ m.Path) error {
		loaded = append(loaded, id)
		return nil
	})))

	err := guarded.Update(func(r *Resolver) error {
		return r.AddClassMap(m.ClassMapOf("", string(file)))
	})
	require.ErrorIs(t, err, m.ErrInvalidFormat)

	require.NoError(t, guarded.Update(func(r *Resolver) error {
		r.SetStrict(true)
		return r.AddClassMap(m.ClassMapOf("Thing", string(file)))
	}))

	ok, err := guarded.Load("Thing")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []m.Identifier{"Thing"}, loaded)

	_, err = guarded.Load("Missing")
	require.ErrorIs(t, err, m.ErrUnresolved)
}
