package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

const rateLimitRedisTimeout = 500 * time.Millisecond

// RateLimiter is a Redis fixed-window counter per client IP. It is shared
// by every instance that points at the same Redis.
type RateLimiter struct {
	redisClient *redis.Client
	scope       string
	limit       int
	window      time.Duration
}

// NewRateLimiter builds a limiter. Windows are counted in whole seconds,
// so anything shorter is raised to one second.
func NewRateLimiter(redisClient *redis.Client, scope string, limit int, window time.Duration) *RateLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RateLimiter{
		redisClient: redisClient,
		scope:       scope,
		limit:       limit,
		window:      window,
	}
}

// Limit enforces the limit. A nil limiter or a Redis failure lets the
// request through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.redisClient == nil {
			c.Next()
			return
		}

		windowBucket := time.Now().Unix() / int64(rl.window/time.Second)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", rl.scope, c.ClientIP(), windowBucket)

		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitRedisTimeout)
		defer cancel()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
