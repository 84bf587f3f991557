package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository_SetGet(t *testing.T) {
	repo := NewSQLiteRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v1")))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	// Upsert replaces in place.
	require.NoError(t, repo.Set(ctx, "k", []byte("v2")))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := NewSQLiteRepository(testDB(t))

	got, err := repo.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteRepository_DeleteAndClear(t *testing.T) {
	repo := NewSQLiteRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))

	require.NoError(t, repo.Delete(ctx, "a"))
	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)
}
