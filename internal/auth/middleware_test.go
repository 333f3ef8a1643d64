package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testToken = "correct-horse-battery-staple"

func newGuardedRouter(t *testing.T, hash string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.Use(NewWriteGuard(hash).Handler())
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/api/words", handler)
	router.POST("/api/words", handler)
	router.DELETE("/api/words/:id", handler)
	return router
}

func serve(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestWriteGuard(t *testing.T) {
	hash, err := HashToken(testToken, bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("disabled guard allows writes", func(t *testing.T) {
		router := newGuardedRouter(t, "")
		w := serve(router, "POST", "/api/words", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reads need no token", func(t *testing.T) {
		router := newGuardedRouter(t, hash)
		w := serve(router, "GET", "/api/words", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("write without token is rejected", func(t *testing.T) {
		router := newGuardedRouter(t, hash)
		w := serve(router, "POST", "/api/words", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("write with wrong token is rejected", func(t *testing.T) {
		router := newGuardedRouter(t, hash)
		w := serve(router, "DELETE", "/api/words/1", "Bearer wrong-token-value")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		router := newGuardedRouter(t, hash)
		w := serve(router, "POST", "/api/words", "Basic "+testToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("write with valid token passes", func(t *testing.T) {
		router := newGuardedRouter(t, hash)
		w := serve(router, "POST", "/api/words", "bearer "+testToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	router := newGuardedRouter(t, "")
	w := serve(router, "GET", "/api/words", "")

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")
}

func TestHashToken(t *testing.T) {
	_, err := HashToken("short", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrTokenTooShort)

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	_, err = HashToken(string(long), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrTokenTooLong)

	hash, err := HashToken(testToken, bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, CheckToken(testToken, hash))
	assert.ErrorIs(t, CheckToken("something-else-entirely", hash), ErrInvalidToken)
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
