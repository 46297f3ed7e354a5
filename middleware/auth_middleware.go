package middleware

import (
	"net/http"
	"strings"

	"github.com/civicfix-server/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts and verifies the bearer token, attaching the
// decoded claims to the request context for downstream handlers.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("userId", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}
