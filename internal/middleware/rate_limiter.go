package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"auction-admin/internal/session"
)

// LoginRateLimiterConfig defines the fixed-window limit applied to login
// attempts per client IP.
type LoginRateLimiterConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// LoginRateLimiter throttles credential checks using Redis. Brute-force
// protection for the login form, not a general API limiter.
type LoginRateLimiter struct {
	redis    *redis.Client
	sessions *session.Manager
	config   LoginRateLimiterConfig
}

func NewLoginRateLimiter(redisClient *redis.Client, sessions *session.Manager, config LoginRateLimiterConfig) *LoginRateLimiter {
	return &LoginRateLimiter{
		redis:    redisClient,
		sessions: sessions,
		config:   config,
	}
}

// Middleware redirects back to the login form with a flash once the window
// is exhausted. Redis errors fail open.
func (rl *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := rl.CheckLimit(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			rl.sessions.AddFlash(c.Writer, c.Request, "danger",
				"Too many login attempts. Please try again later.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CheckLimit implements a fixed-window counter via INCR with EXPIRE set on
// the first attempt in the window.
func (rl *LoginRateLimiter) CheckLimit(ctx context.Context, ip string) (bool, time.Duration, error) {
	key := fmt.Sprintf("loginlimit:%s", ip)

	count, err := rl.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}

	if count == 1 {
		if err := rl.redis.Expire(ctx, key, rl.config.Window).Err(); err != nil {
			return false, 0, err
		}
	}

	if count > int64(rl.config.MaxAttempts) {
		ttl, err := rl.redis.TTL(ctx, key).Result()
		if err != nil {
			ttl = rl.config.Window
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
