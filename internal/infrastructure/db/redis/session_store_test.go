package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

func setupTestRedis(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-1", "acc-1", time.Hour))

	id, err := store.AccountID(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)

	ttl := mr.TTL("session:sid-1")
	assert.Equal(t, time.Hour, ttl)
}

func TestSessionStore_Unknown(t *testing.T) {
	client, _ := setupTestRedis(t)
	store := NewSessionStore(client)

	_, err := store.AccountID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionStore_Expired(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-2", "acc-2", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.AccountID(ctx, "sid-2")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionStore_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-3", "acc-3", time.Hour))
	require.NoError(t, store.Delete(ctx, "sid-3"))
	assert.False(t, mr.Exists("session:sid-3"))

	_, err := store.AccountID(ctx, "sid-3")
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// deleting twice is fine
	assert.NoError(t, store.Delete(ctx, "sid-3"))
}

func TestSessionStore_ConnectionError(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionStore(client)
	mr.Close()

	_, err := store.AccountID(context.Background(), "sid")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSession)
}
