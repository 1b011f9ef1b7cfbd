package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conseccomms/conseccomms/internal/domain/dashboard"
	"github.com/conseccomms/conseccomms/internal/domain/setting"
)

func TestSettingsSessionStore_ValueSemantics(t *testing.T) {
	store := NewSettingsSessionStore(time.Minute)

	_, ok := store.Get("missing")
	assert.False(t, ok)

	s := setting.Defaults()
	store.Set("sess-1", s)

	// Mutating the caller's copy must not leak into the cache.
	s.Notifications.Email = false
	got, ok := store.Get("sess-1")
	require.True(t, ok)
	assert.True(t, got.Notifications.Email)
	assert.Equal(t, 1, store.Len())

	store.Delete("sess-1")
	_, ok = store.Get("sess-1")
	assert.False(t, ok)
}

func TestSettingsSessionStore_Expires(t *testing.T) {
	store := NewSettingsSessionStore(20 * time.Millisecond)
	store.Set("sess", setting.Defaults())

	time.Sleep(40 * time.Millisecond)
	_, ok := store.Get("sess")
	assert.False(t, ok)
}

func TestRedisDashboardCache_KeyAndDefaults(t *testing.T) {
	c := NewRedisDashboardCache(nil, 0)
	assert.Equal(t, defaultDashboardTTL, c.ttl)
	assert.Equal(t, "dashboard:summary:42", c.buildKey(42))
}

func TestRedisDashboardCache_UnreachableServerReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	c := NewRedisDashboardCache(client, time.Second)

	_, err := c.Get(context.Background(), 1)
	assert.Error(t, err)

	err = c.Set(context.Background(), 1, &dashboard.Summary{})
	assert.Error(t, err)

	assert.Error(t, c.Set(context.Background(), 1, nil))
}
