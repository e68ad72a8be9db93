package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeward/storefront-api/pkg/helpers"
)

func authTestRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func TestAuthInjectsUserID(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	token, _, err := jwt.Generate("walt")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "walt", w.Body.String())
}

func TestAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	for _, header := range []string{"", "Bearer ", "Basic abc", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header=%q", header)
	}
}

func TestAuthRejectsForgedToken(t *testing.T) {
	r := authTestRouter(helpers.NewJWTManager("test-secret", time.Hour))

	forged, _, err := helpers.NewJWTManager("other-secret", time.Hour).Generate("walt")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Without a Redis client the limiter is a pass-through, so a missing
// cache never blocks traffic.
func TestRateLimitFailsOpenWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RateLimit(nil, 1, time.Minute, KeyByIP()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestKeyByUserIDFallsBackToIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	key := KeyByUserID()(c)
	assert.Contains(t, key, "rl:user:anon:ip:")

	c.Set(CtxUserIDKey, "walt")
	assert.Equal(t, "rl:user:walt", KeyByUserID()(c))
}
