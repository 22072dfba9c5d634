package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestTokenBucketExhaustion(t *testing.T) {
	// No refill to speak of within the test window.
	bucket := NewTokenBucket(2, 0.001)

	if !bucket.Allow() || !bucket.Allow() {
		t.Fatal("Allow() denied requests within the burst size")
	}
	if bucket.Allow() {
		t.Error("Allow() permitted a request beyond the burst size")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	// 100 tokens/second so a short sleep is enough to refill.
	bucket := NewTokenBucket(1, 100)

	if !bucket.Allow() {
		t.Fatal("Allow() denied the first request")
	}
	time.Sleep(50 * time.Millisecond)
	if !bucket.Allow() {
		t.Error("Allow() denied a request after refill")
	}
}

func TestClientRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()

	limiter := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerMinute: 1,
		BurstSize:         1,
	}, logger)
	defer limiter.Stop()

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := serve(); code != http.StatusOK {
		t.Fatalf("first request status = %d, want %d", code, http.StatusOK)
	}
	if code := serve(); code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestClientRateLimiterIsolatesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewDevelopment()

	limiter := NewClientRateLimiter(RateLimiterConfig{
		RequestsPerMinute: 1,
		BurstSize:         1,
	}, logger)
	defer limiter.Stop()

	router := gin.New()
	router.Use(limiter.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	if code := serve("203.0.113.7:1234"); code != http.StatusOK {
		t.Fatalf("first client status = %d, want %d", code, http.StatusOK)
	}
	if code := serve("203.0.113.8:1234"); code != http.StatusOK {
		t.Errorf("second client status = %d, want %d: buckets must be per client", code, http.StatusOK)
	}
}
