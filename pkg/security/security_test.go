package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limiterRouter(l *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(l.Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func ping(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	l := NewRateLimiter(2, time.Minute)
	router := limiterRouter(l)

	for i := 0; i < 2; i++ {
		if code := ping(router); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, code, http.StatusOK)
		}
	}
	if code := ping(router); code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestRateLimiterUpdateAppliesWithoutRestart(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	router := limiterRouter(l)

	if code := ping(router); code != http.StatusOK {
		t.Fatalf("first request: status = %d, want %d", code, http.StatusOK)
	}
	if code := ping(router); code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want %d", code, http.StatusTooManyRequests)
	}

	l.Update(100, time.Minute)

	if code := ping(router); code != http.StatusOK {
		t.Errorf("request after Update: status = %d, want %d", code, http.StatusOK)
	}
}

func TestRateLimiterUpdateIgnoresInvalidValues(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	router := limiterRouter(l)

	if code := ping(router); code != http.StatusOK {
		t.Fatalf("first request: status = %d, want %d", code, http.StatusOK)
	}

	// 0이나 음수 한도는 무시하고 기존 한도를 유지한다
	l.Update(0, time.Minute)
	l.Update(10, -time.Second)

	if code := ping(router); code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestCORSAllowsOnlyListedOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:5173"}))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q, want listed origin echoed", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	router.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty for unlisted origin", got)
	}
}
