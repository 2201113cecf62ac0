package middleware

import (
	"net/http"
	"strings"

	"client-portal/internal/models"

	"github.com/gin-gonic/gin"
)

const AdminKey = "admin"

// TokenVerifier validates admin session tokens. Implemented by
// auth.AdminGate.
type TokenVerifier interface {
	Verify(token string) error
}

// AdminAuth requires a valid "Authorization: Bearer <token>" header.
func AdminAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "empty token"})
			c.Abort()
			return
		}

		if err := verifier.Verify(tokenString); err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid token",
				Message: err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(AdminKey, true)
		c.Next()
	}
}
