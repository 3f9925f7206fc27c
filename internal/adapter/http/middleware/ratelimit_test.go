package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ramp-gateway/internal/adapter/http/middleware"
	redisStore "ramp-gateway/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store *redisStore.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}

	// Tests pass the caller id in a header to stand in for JWTAuth.
	setCaller := func(c *gin.Context) {
		if raw := c.GetHeader("X-Test-User"); raw != "" {
			c.Set(middleware.CtxUserID, uuid.MustParse(raw))
		}
		c.Next()
	}

	r.GET("/test", setCaller, middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) (*redisStore.RateLimitStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redisStore.NewRateLimitStore(client), mr
}

func get(router *gin.Engine, user string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/test", nil)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	store, _ := newStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := get(router, "")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	store, _ := newStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, "").Code)
	}

	w := get(router, "")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_KeysByUser(t *testing.T) {
	store, _ := newStore(t)
	router := setupRateLimitRouter(store)
	userA := uuid.NewString()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, get(router, userA).Code)
	}
	assert.Equal(t, 429, get(router, userA).Code)

	// independent counters
	assert.Equal(t, 200, get(router, uuid.NewString()).Code)
	assert.Equal(t, 200, get(router, "").Code)
}

func TestRateLimiter_DegradedWhenStoreDown(t *testing.T) {
	store, mr := newStore(t)
	router := setupRateLimitRouter(store)
	mr.Close()

	for i := 0; i < 5; i++ {
		w := get(router, "")
		assert.Equal(t, 200, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(30), rules["order_write"].Limit)
	assert.Equal(t, int64(120), rules["order_read"].Limit)
	assert.Equal(t, int64(600), rules["webhook"].Limit)
	assert.Equal(t, int64(10), rules["users"].Limit)
	assert.Equal(t, int64(60), rules["market"].Limit)
	for name, rule := range rules {
		assert.Equal(t, time.Minute, rule.Window, name)
	}
}
