package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sped_lesson_backend/internal/config"
	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/util"
	"sped_lesson_backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func testToken(t *testing.T, cfg *config.Config, role model.UserRole) string {
	t.Helper()
	u := &model.User{Email: "t@example.com", Role: role}
	u.ID = 1
	token, err := util.GenerateJWT(u, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}
	return token
}

func testRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/api")
	group.Use(AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestMain(m *testing.M) {
	logger.InitLogger(&config.Config{})
	m.Run()
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, cfg, model.Teacher))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping?token="+testToken(t, cfg, model.Teacher), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRoleMiddlewareForbidsOtherRole(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg, model.Admin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, cfg, model.Teacher))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRoleMiddlewareAdminBypass(t *testing.T) {
	cfg := testConfig()
	// teacher 전용 그룹이라도 관리자는 통과한다
	router := testRouter(cfg, model.Teacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, cfg, model.Admin))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestTryAuthMiddlewareAllowsAnonymous(t *testing.T) {
	cfg := testConfig()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/open", TryAuthMiddleware(cfg), func(c *gin.Context) {
		if util.GetUserFromContext(c) != nil {
			c.String(http.StatusOK, "user")
			return
		}
		c.String(http.StatusOK, "guest")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/open", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "guest" {
		t.Errorf("got %d %q, want 200 guest", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/open", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, cfg, model.Teacher))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "user" {
		t.Errorf("got %d %q, want 200 user", w.Code, w.Body.String())
	}
}
