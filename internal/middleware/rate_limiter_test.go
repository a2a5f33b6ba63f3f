package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auction-admin/internal/middleware"
	"auction-admin/internal/session"
	"auction-admin/internal/testutil"
	"auction-admin/pkg/logger"
)

func setupLimiter(t *testing.T, maxAttempts int, window time.Duration) (*middleware.LoginRateLimiter, *testutil.TestRedis) {
	if logger.Log == nil {
		require.NoError(t, logger.Init(false))
	}

	testRedis := testutil.SetupTestRedis(t)
	t.Cleanup(func() { testRedis.Teardown(t) })

	opts, err := redis.ParseURL(testRedis.URL)
	require.NoError(t, err)

	sessions := session.NewManager("test-secret-key", false)
	limiter := middleware.NewLoginRateLimiter(redis.NewClient(opts), sessions, middleware.LoginRateLimiterConfig{
		MaxAttempts: maxAttempts,
		Window:      window,
	})
	return limiter, testRedis
}

func TestCheckLimitAllowsUnderLimit(t *testing.T) {
	limiter, _ := setupLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.CheckLimit(context.Background(), "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be allowed", i+1)
	}
}

func TestCheckLimitBlocksOverLimit(t *testing.T) {
	limiter, _ := setupLimiter(t, 2, time.Minute)

	for i := 0; i < 2; i++ {
		allowed, _, err := limiter.CheckLimit(context.Background(), "10.0.0.2")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, retryAfter, err := limiter.CheckLimit(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestCheckLimitIsolatesIPs(t *testing.T) {
	limiter, _ := setupLimiter(t, 1, time.Minute)

	allowed, _, err := limiter.CheckLimit(context.Background(), "10.0.0.3")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, err = limiter.CheckLimit(context.Background(), "10.0.0.3")
	require.NoError(t, err)
	require.False(t, allowed)

	// A different client is unaffected
	allowed, _, err = limiter.CheckLimit(context.Background(), "10.0.0.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckLimitResetsAfterWindow(t *testing.T) {
	limiter, testRedis := setupLimiter(t, 1, time.Minute)

	allowed, _, err := limiter.CheckLimit(context.Background(), "10.0.0.5")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _, err = limiter.CheckLimit(context.Background(), "10.0.0.5")
	require.NoError(t, err)
	require.False(t, allowed)

	// Advance the mock clock past the window
	testRedis.Server.FastForward(61 * time.Second)

	allowed, _, err = limiter.CheckLimit(context.Background(), "10.0.0.5")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMiddlewareRedirectsWhenExhausted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, _ := setupLimiter(t, 1, time.Minute)

	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusFound, second.Code)
	assert.Equal(t, "/login", second.Header().Get("Location"))
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestMiddlewareFailsOpenWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, testRedis := setupLimiter(t, 1, time.Minute)

	// Kill the backend; requests must still pass
	testRedis.Server.Close()

	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
