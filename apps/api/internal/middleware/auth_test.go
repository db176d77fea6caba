package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"BridgerServer/apps/api/internal/utils"
	"BridgerServer/config"
	"BridgerServer/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var middlewareTestLoggerOnce sync.Once

func initMiddlewareTestLogger() {
	middlewareTestLoggerOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.ReplaceGlobal(zap.NewNop())
	})
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:    "unit-test-secret",
		ExpiresIn: time.Hour,
		Issuer:    "bridger",
	}
}

func newAuthTestRouter(cfg config.JWTConfig) *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(cfg), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "user_id missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	initMiddlewareTestLogger()

	cfg := authTestConfig()
	router := newAuthTestRouter(cfg)

	t.Run("missing_header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication required.")
	})

	t.Run("malformed_header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid_token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token.")
	})

	t.Run("expired_token", func(t *testing.T) {
		expiredCfg := cfg
		expiredCfg.ExpiresIn = -time.Hour
		token, err := utils.GenerateToken(expiredCfg, 42)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid_token_injects_user_id", func(t *testing.T) {
		token, err := utils.GenerateToken(cfg, 42)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})
}
