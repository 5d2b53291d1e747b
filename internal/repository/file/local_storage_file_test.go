package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile", "local_storage.json")
	store, err := NewLocalStorage(path)
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "user", []byte(`{"id":"7","name":"Nour","email":"nour@example.com"}`)))
	require.NoError(t, store.Set(ctx, "theme", []byte("dark")))

	value, ok, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"7","name":"Nour","email":"nour@example.com"}`, string(value))

	require.NoError(t, store.Delete(ctx, "user"))
	require.NoError(t, store.Delete(ctx, "user"))

	_, ok, err = store.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	theme, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", string(theme))
}

func TestLocalStoragePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")
	ctx := context.Background()

	first, err := NewLocalStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "user", []byte("payload")))

	second, err := NewLocalStorage(path)
	require.NoError(t, err)
	value, ok, err := second.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", string(value))
}

func TestLocalStorageRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewLocalStorage(path)
	require.NoError(t, err)

	_, _, err = store.Get(context.Background(), "user")
	assert.Error(t, err)
}

func TestNewLocalStorageEmptyPath(t *testing.T) {
	_, err := NewLocalStorage("")
	assert.Error(t, err)
}
