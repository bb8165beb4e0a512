package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carepoint/hospital-booking/internal/core/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *SessionStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewSessionStore(client)
}

func TestSessionStore_SaveAndLookup(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-1", "42", time.Hour))

	accountID, err := store.Lookup(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "42", accountID)

	assert.True(t, mr.Exists("session:sid-1"))
	assert.Equal(t, time.Hour, mr.TTL("session:sid-1"))
}

func TestSessionStore_LookupUnknown(t *testing.T) {
	_, store := setupTestRedis(t)

	_, err := store.Lookup(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-2", "7", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Lookup(ctx, "sid-2")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	_, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-3", "7", time.Hour))
	require.NoError(t, store.Delete(ctx, "sid-3"))
	require.NoError(t, store.Delete(ctx, "sid-3"))

	_, err := store.Lookup(ctx, "sid-3")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_LookupWhenRedisDown(t *testing.T) {
	mr, store := setupTestRedis(t)
	mr.Close()

	_, err := store.Lookup(context.Background(), "sid")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
}
