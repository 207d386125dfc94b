package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
)

func TestFile_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "client.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "token", "abc"))
	require.NoError(t, f.Set(ctx, "user", `{"id":"u1"}`))
	require.NoError(t, f.Close())

	reopened, err := NewFile(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	got, err = reopened.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, got)
}

func TestFile_MissingKey(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "client.json"))
	require.NoError(t, err)

	_, err = f.Get(context.Background(), "token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestFile_DeletePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "token", "abc"))
	require.NoError(t, f.Set(ctx, "cart-storage", "{}"))
	require.NoError(t, f.Delete(ctx, "token", "cart-storage"))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, err = reopened.Get(ctx, "token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	_, err = reopened.Get(ctx, "cart-storage")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestFile_CorruptDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f, err := NewFile(path)
	require.NoError(t, err)

	_, err = f.Get(context.Background(), "token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestFile_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.json")

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set(context.Background(), "token", "abc"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "client.json", entries[0].Name())
}

func TestMemory_Basics(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, m.Set(ctx, "token", "abc"))
	got, err := m.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	require.NoError(t, m.Delete(ctx, "token"))
	_, err = m.Get(ctx, "token")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
