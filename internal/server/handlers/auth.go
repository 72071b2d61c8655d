package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity headers injected by the authenticating gateway.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// RequireUser rejects requests without a gateway-injected user identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(headerUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxUserRole, c.GetHeader(headerUserRole))
		c.Next()
	}
}

// RequireRole gates a route to callers whose gateway role matches.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxUserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
