package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimitedRouter(t *testing.T, max int, allow AllowFunc) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.GET("/ping", RateLimit(rdb, max, time.Minute, KeyByIP(), allow), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r, mr
}

func get(r *gin.Engine, from string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", from)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitAllowsUnderMax(t *testing.T) {
	r, _ := setupLimitedRouter(t, 3, nil)

	for i := 0; i < 3; i++ {
		w := get(r, "203.0.113.7")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitRejectsOverMax(t *testing.T) {
	r, _ := setupLimitedRouter(t, 2, nil)

	get(r, "203.0.113.7")
	get(r, "203.0.113.7")
	w := get(r, "203.0.113.7")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimitIsPerIP(t *testing.T) {
	r, _ := setupLimitedRouter(t, 1, nil)

	assert.Equal(t, http.StatusOK, get(r, "203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "203.0.113.7").Code)
	// A different client still gets through.
	assert.Equal(t, http.StatusOK, get(r, "203.0.113.8").Code)
}

func TestRateLimitSetsHeaders(t *testing.T) {
	r, _ := setupLimitedRouter(t, 5, nil)

	w := get(r, "203.0.113.7")
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitAllowBypass(t *testing.T) {
	r, _ := setupLimitedRouter(t, 1, func(*gin.Context) bool { return true })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r, "203.0.113.7").Code)
	}
}

func TestRateLimitFailsOpenWhenRedisDown(t *testing.T) {
	r, mr := setupLimitedRouter(t, 1, nil)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "203.0.113.7").Code)
	}
}

func TestRateLimitNilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "203.0.113.7").Code)
	}
}
