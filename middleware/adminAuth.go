package middleware

import (
	"net/http"

	"menagio/models"

	"github.com/gin-gonic/gin"
)

// AdminOnly requires an authenticated session with the admin role. It must
// run after JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := AuthSessionFromContext(c)
		if !ok || session.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
