package middleware

import (
	"errors"
	"net/http"
	"strings"

	"stepup-tasks/internal/models"
	"stepup-tasks/internal/services"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// RequireAuth guards the task routes. It extracts the bearer token from
// the Authorization header, verifies it, and stores the embedded user id
// in the request context. Verification is stateless per request.
func RequireAuth(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication Token is missing!",
			})
			return
		}

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			message := "A token processing error occurred."
			if errors.Is(err, models.ErrInvalidToken) {
				message = "Token is invalid or expired!"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
