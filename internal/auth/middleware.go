package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// WriteGuard rejects unauthenticated write requests.
type WriteGuard struct {
	tokenHash string
}

// NewWriteGuard creates a guard for the given bcrypt hash. An empty hash disables it.
func NewWriteGuard(tokenHash string) *WriteGuard {
	return &WriteGuard{tokenHash: tokenHash}
}

// IsEnabled returns whether write requests need a token.
func (g *WriteGuard) IsEnabled() bool {
	return g.tokenHash != ""
}

// Handler returns a Gin middleware enforcing the bearer token on writes.
func (g *WriteGuard) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.IsEnabled() || isReadOnlyMethod(c.Request.Method) {
			c.Next()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			c.Header("WWW-Authenticate", `Bearer realm="wordlist"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if err := CheckToken(token, g.tokenHash); err != nil {
			if !errors.Is(err, ErrInvalidToken) {
				log.Printf("Token check failed: %v", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Next()
	}
}

func isReadOnlyMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
