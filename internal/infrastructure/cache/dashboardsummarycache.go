package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/conseccomms/conseccomms/internal/domain/dashboard"
)

const (
	dashboardKeyPrefix  = "dashboard:summary:"
	defaultDashboardTTL = 60 * time.Second
)

// RedisDashboardCache keeps one JSON summary per user. Entries are never
// invalidated on writes; the short TTL bounds staleness.
type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) *RedisDashboardCache {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &RedisDashboardCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns nil without error on a cache miss.
func (c *RedisDashboardCache) Get(ctx context.Context, userID uint) (*dashboard.Summary, error) {
	data, err := c.client.Get(ctx, c.buildKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dashboard summary from redis: %w", err)
	}

	var summary dashboard.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard summary: %w", err)
	}
	return &summary, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, userID uint, summary *dashboard.Summary) error {
	if summary == nil {
		return errors.New("summary cannot be nil")
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard summary: %w", err)
	}
	if err := c.client.Set(ctx, c.buildKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store dashboard summary in redis: %w", err)
	}
	return nil
}

func (c *RedisDashboardCache) buildKey(userID uint) string {
	return dashboardKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}
