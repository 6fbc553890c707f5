package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/policy"
)

// Require gates a route on the access policy for the given operation.
// It must run after AuthMiddleware, which puts the role in the context.
func Require(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			return
		}

		role, ok := value.(models.Role)
		if !ok || !policy.Allowed(role, op) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Access denied",
			})
			return
		}

		c.Next()
	}
}
