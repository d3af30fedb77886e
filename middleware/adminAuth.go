package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wintermarket/utils"
)

// JWTAuthAdminMiddleware guards organizer-only routes. The token must be
// a valid admin JWT issued by the login endpoint.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil || sub != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
