// AngelaMos | 2026
// session_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/casetrail/internal/core"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSessionStore(client, ttl), mr
}

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.True(t, mr.Exists("session:"+core.HashToken(token)), "keyed by token hash")
	assert.False(t, mr.Exists("session:"+token), "raw token is never stored")

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	require.NoError(t, store.Delete(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx, 1)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_MalformedValue(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)

	require.NoError(t, mr.Set("session:"+core.HashToken("tok"), "not-a-number"))

	_, err := store.Resolve(context.Background(), "tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_Lifecycle(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	a, err := store.Create(ctx, 1)
	require.NoError(t, err)
	b, err := store.Create(ctx, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	id, err := store.Resolve(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NoError(t, store.Delete(ctx, a))
	_, err = store.Resolve(ctx, a)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	id, err = store.Resolve(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	stale, err := store.Create(ctx, 1)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = store.Resolve(ctx, stale)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())

	_, err = store.Create(ctx, 2)
	require.NoError(t, err)
	_, err = store.Create(ctx, 3)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Create(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len(), "expired sessions are pruned on create")
}
