package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/services"
	"github.com/leadflow-simple/utils"
)

// Context keys set by AuthMiddleware
const (
	ContextUser   = "user"
	ContextUserID = "userId"
	ContextRole   = "role"
)

// AuthMiddleware resolves the bearer token to a live user record. The
// lookup is fresh on every request so role and active-flag changes take
// effect immediately. The user placed in the context has the password
// hash stripped.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			if errors.Is(err, services.ErrTokenExpired) {
				abortUnauthorized(c, "Token expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		user, err := auth.ResolveUser(claims.Subject)
		if err != nil {
			c.Abort()
			utils.RespondError(c, err)
			return
		}

		c.Set(ContextUser, user.Sanitized())
		c.Set(ContextUserID, user.ID)
		c.Set(ContextRole, user.Role)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// AuthMiddleware
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(ContextUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
	})
}
