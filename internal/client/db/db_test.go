package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDatabase_MigratesAndWires(t *testing.T) {
	ctx := context.Background()

	repos, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })

	require.NoError(t, repos.Drafts.Set(ctx, "notes", "p1", []byte("hello")))

	got, err := repos.Drafts.Get(ctx, "notes", "p1")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}
