package drafts

import (
	"context"
	"database/sql"
	"testing"

	"github.com/milavault/milavault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE drafts (
  namespace TEXT NOT NULL,
  id TEXT NOT NULL,
  value BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (namespace, id)
);
`)
	require.NoError(t, err)

	return db
}

func TestSetGetDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "notes", "p1", []byte("remember birthday")))

	got, err := r.Get(ctx, "notes", "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte("remember birthday"), got)

	// overwrite
	require.NoError(t, r.Set(ctx, "notes", "p1", []byte("updated")))
	got, err = r.Get(ctx, "notes", "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), got)

	require.NoError(t, r.Delete(ctx, "notes", "p1"))
	_, err = r.Get(ctx, "notes", "p1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// deleting an absent row is fine
	require.NoError(t, r.Delete(ctx, "notes", "p1"))
}

func TestNamespacesAreIndependent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "notes", "p1", []byte("a note")))
	require.NoError(t, r.Set(ctx, "edits", "p1", []byte(`{"name":"Ann"}`)))

	require.NoError(t, r.Delete(ctx, "notes", "p1"))

	got, err := r.Get(ctx, "edits", "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"Ann"}`), got)
}

func TestListNamespace(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "notes", "p1", []byte("one")))
	require.NoError(t, r.Set(ctx, "notes", "p2", []byte("two")))
	require.NoError(t, r.Set(ctx, "edits", "p3", []byte("three")))

	got, err := r.ListNamespace(ctx, "notes")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []byte("one"), got["p1"])
	assert.Equal(t, []byte("two"), got["p2"])

	empty, err := r.ListNamespace(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
