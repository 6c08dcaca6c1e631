package auth

import (
	"net/http"
	"strings"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/storage"
	"github.com/gin-gonic/gin"
)

// Middleware resolves the authenticated user from a Bearer token and stores
// it in the request context under "user".
func Middleware(provider Provider, users storage.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			userID, err := provider.ValidateToken(token)
			if err == nil {
				var user *internal.User
				user, err = users.GetUserByID(c.Request.Context(), userID)
				if err == nil {
					c.Set("user", user)
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}
