package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jpriva/orders_backend/internal/core/domain"
	"github.com/jpriva/orders_backend/internal/dto"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// userRoleKey is the key used to store the authenticated user's role claim.
const userRoleKey = contextKey("userRole")

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role claim from
// the request context.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	role, ok := c.Request.Context().Value(userRoleKey).(string)
	if !ok || role == "" {
		return "", false
	}
	return domain.UserRole(role), true
}

// RequireRole creates a Gin middleware handler that only lets requests with
// the given role claim through. It must run after AuthMiddleware.
func RequireRole(required domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok || role != required {
			GetLoggerFromCtx(c.Request.Context()).Warn("Insufficient role for request",
				"required_role", string(required))
			abortProblem(c, http.StatusForbidden, "Forbidden", "Insufficient permissions for this operation")
			return
		}
		c.Next()
	}
}

// abortProblem stops request processing with a problem details body.
func abortProblem(c *gin.Context, status int, title, detail string) {
	c.AbortWithStatusJSON(status, dto.ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	})
}
