package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/config"
)

func TestRedisDisabledBypasses(t *testing.T) {
	r := NewRedis(config.RedisConfig{Enabled: false}, nil)
	ctx := context.Background()

	assert.False(t, r.Enabled())
	assert.Error(t, r.Ping(ctx))

	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.Close())
}

func TestRedisUnreachableBypasses(t *testing.T) {
	r := NewRedis(config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: "1"}, nil)
	assert.False(t, r.Enabled())
	assert.Equal(t, DefaultTTL, r.ttl)
}

func TestNilRedis(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
}
