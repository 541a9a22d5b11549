package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/avdeyev/studydesk/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user identifier.
	UserIDContextKey = "userID"
	authCookieName   = "studydesk_token"
)

// TokenParser validates auth tokens and yields the user id they encode.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures the caller is authenticated before reaching a handler.
func AuthRequired(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := tokens.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
