package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/avdeyev/studydesk/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from the context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}
