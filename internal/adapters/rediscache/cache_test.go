package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/crawl-admin/internal/testutil"
)

func TestRepo_EmptyKey(t *testing.T) {
	repo := New(nil, "p:")
	ctx := context.Background()

	require.Error(t, repo.Set(ctx, " ", []byte("x"), 0))
	_, err := repo.Get(ctx, "")
	require.Error(t, err)
	_, err = repo.Delete(ctx, "")
	require.Error(t, err)
}

func TestRepo_SetGetDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	repo := New(client, "crawladmin:test:")
	ctx := context.Background()

	require.NoError(t, repo.Health(ctx))

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "k1", []byte("v1"), time.Minute))

		got, err := repo.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)

		ttl := client.TTL(ctx, "crawladmin:test:k1").Val()
		assert.True(t, ttl > 0 && ttl <= time.Minute)
	})

	t.Run("missing key", func(t *testing.T) {
		got, err := repo.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "k2", []byte("v2"), 0))
		deleted, err := repo.Delete(ctx, "k2")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "k2")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
