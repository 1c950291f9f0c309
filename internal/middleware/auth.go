package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"forumapi/internal/utils"
)

// CredentialKey is the context key the auth middleware stores the
// authenticated user id under.
const CredentialKey = "credential_id"

// AuthRequired verifies the Bearer token and puts the caller's user id on
// the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Missing authentication",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(CredentialKey, claims.UserID)
		c.Next()
	}
}
