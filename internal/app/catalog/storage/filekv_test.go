package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	t.Run("absent key reports not found", func(t *testing.T) {
		_, found, err := kv.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "catalog", []byte(`[1,2,3]`)))

		value, found, err := kv.Get(ctx, "catalog")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte(`[1,2,3]`), value)
	})

	t.Run("set overwrites and leaves no temp files behind", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "catalog", []byte(`[4]`)))

		value, _, err := kv.Get(ctx, "catalog")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[4]`), value)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.Equal(t, ".json", filepath.Ext(e.Name()))
		}
	})

	t.Run("value survives a new instance over the same dir", func(t *testing.T) {
		reopened, err := NewFileKV(dir)
		require.NoError(t, err)

		value, found, err := reopened.Get(ctx, "catalog")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []byte(`[4]`), value)
	})

	t.Run("delete removes the key and tolerates absence", func(t *testing.T) {
		require.NoError(t, kv.Delete(ctx, "catalog"))

		_, found, err := kv.Get(ctx, "catalog")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, kv.Delete(ctx, "catalog"))
	})
}
