package middleware

import (
	"net/http"
	"slices"

	"car_rental/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			abortJSON(c, http.StatusForbidden, "Role not found in token, ensure JWT middleware runs first")
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			abortJSON(c, http.StatusForbidden, "Invalid role type in token")
			return
		}

		if !slices.Contains(allowedRoles, userRole) {
			abortJSON(c, http.StatusForbidden, "You do not have permission to access this resource")
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
