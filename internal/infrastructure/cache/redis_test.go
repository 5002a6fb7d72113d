package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"prison-jobs/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisWithClient(client, time.Minute, zap.NewNop())
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

type payload struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func TestRedis_JSONRoundTrip(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	var out payload
	hit, err := r.GetJSON(ctx, "jobs:search:x", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, r.SetJSON(ctx, "jobs:search:x", payload{Title: "Guard", Count: 2}, 0))
	assert.Equal(t, time.Minute, mr.TTL("jobs:search:x"))

	hit, err = r.GetJSON(ctx, "jobs:search:x", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Title: "Guard", Count: 2}, out)

	mr.FastForward(2 * time.Minute)
	hit, err = r.GetJSON(ctx, "jobs:search:x", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_SetIfNotExists(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	ok, err := r.SetIfNotExists(ctx, "jobs:lock:a", "1", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, defaultLockTTL, mr.TTL("jobs:lock:a"))

	ok, err = r.SetIfNotExists(ctx, "jobs:lock:a", "1", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_DeleteByPattern(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	for _, k := range []string{"jobs:search:1", "jobs:search:2", "jobs:lock:1", "other"} {
		require.NoError(t, mr.Set(k, "{}"))
	}

	require.NoError(t, r.DeleteByPattern(ctx, "jobs:search:*"))
	assert.False(t, mr.Exists("jobs:search:1"))
	assert.False(t, mr.Exists("jobs:search:2"))
	assert.True(t, mr.Exists("jobs:lock:1"))
	assert.True(t, mr.Exists("other"))

	require.NoError(t, r.Delete(ctx, "other"))
	assert.False(t, mr.Exists("other"))
}

func TestRedis_UnavailableBypasses(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	r := NewRedis(context.Background(), config.RedisConfig{Host: host, Port: port, TTL: time.Minute}, zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	assert.NoError(t, r.SetJSON(ctx, "k", payload{}, 0))

	var out payload
	hit, err := r.GetJSON(ctx, "k", &out)
	assert.NoError(t, err)
	assert.False(t, hit)

	ok, err := r.SetIfNotExists(ctx, "lock", "1", 0)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, r.DeleteByPattern(ctx, "*"))
	assert.NoError(t, r.Close())
}
