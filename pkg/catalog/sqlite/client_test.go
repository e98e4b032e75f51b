package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanbase/oaiembed-go/pkg/catalog"
	sqliteCatalog "github.com/oceanbase/oaiembed-go/pkg/catalog/sqlite"
)

func setupSQLiteTest(t *testing.T) catalog.Store {
	t.Helper()

	store, err := sqliteCatalog.NewClient(&sqliteCatalog.Config{
		DBPath: filepath.Join(t.TempDir(), "data", "catalog.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteCatalog_Register(t *testing.T) {
	store := setupSQLiteTest(t)
	ctx := context.Background()

	space, err := store.Register(ctx, &catalog.Space{
		Name:    "fast-bge-small-en",
		Model:   "BAAI/bge-small-en",
		BaseURL: "http://localhost:8000/v1",
		Size:    384,
	})
	require.NoError(t, err)
	assert.NotZero(t, space.ID)
	assert.False(t, space.CreatedAt.IsZero())

	again, err := store.Register(ctx, &catalog.Space{
		Name:  "fast-bge-small-en",
		Model: "other/bge-small-en",
		Size:  384,
	})
	require.NoError(t, err)
	assert.Equal(t, space.ID, again.ID)
	assert.Equal(t, "BAAI/bge-small-en", again.Model)
	assert.True(t, space.CreatedAt.Equal(again.CreatedAt))
}

func TestSQLiteCatalog_RegisterSizeMismatch(t *testing.T) {
	store := setupSQLiteTest(t)
	ctx := context.Background()

	_, err := store.Register(ctx, &catalog.Space{Name: "fast-model-x", Model: "a/Model-X", Size: 768})
	require.NoError(t, err)

	_, err = store.Register(ctx, &catalog.Space{Name: "fast-model-x", Model: "b/model-x", Size: 1024})
	assert.ErrorIs(t, err, catalog.ErrSizeMismatch)

	stored, err := store.Get(ctx, "fast-model-x")
	require.NoError(t, err)
	assert.Equal(t, 768, stored.Size)
}

func TestSQLiteCatalog_RegisterInvalid(t *testing.T) {
	store := setupSQLiteTest(t)

	_, err := store.Register(context.Background(), &catalog.Space{Name: "fast-x", Size: 0})
	assert.ErrorIs(t, err, catalog.ErrInvalidSpace)

	_, err = store.Register(context.Background(), &catalog.Space{Size: 3})
	assert.ErrorIs(t, err, catalog.ErrInvalidSpace)
}

func TestSQLiteCatalog_GetNotFound(t *testing.T) {
	store := setupSQLiteTest(t)

	space, err := store.Get(context.Background(), "fast-missing")
	assert.Nil(t, space)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestSQLiteCatalog_ListAndDelete(t *testing.T) {
	store := setupSQLiteTest(t)
	ctx := context.Background()

	for _, name := range []string{"fast-c", "fast-a", "fast-b"} {
		_, err := store.Register(ctx, &catalog.Space{Name: name, Model: name, Size: 4})
		require.NoError(t, err)
	}

	spaces, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, spaces, 3)
	assert.Equal(t, "fast-a", spaces[0].Name)
	assert.Equal(t, "fast-b", spaces[1].Name)
	assert.Equal(t, "fast-c", spaces[2].Name)

	require.NoError(t, store.Delete(ctx, "fast-b"))
	assert.ErrorIs(t, store.Delete(ctx, "fast-b"), catalog.ErrNotFound)

	spaces, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, spaces, 2)
}

func TestSQLiteCatalog_InvalidTableName(t *testing.T) {
	_, err := sqliteCatalog.NewClient(&sqliteCatalog.Config{
		DBPath:    filepath.Join(t.TempDir(), "catalog.db"),
		TableName: "spaces; DROP TABLE x",
	})
	assert.Error(t, err)
}
