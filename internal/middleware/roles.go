package middleware

import (
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects with 403 unless the authenticated scope carries one of
// the given roles. Must run after Auth.
func (m Middleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		if sc.UserID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if sc.Role == role {
				c.Next()
				return
			}
		}

		m.l.Warnf(c.Request.Context(), "middleware.RequireRoles: role %q denied for %s %s",
			sc.Role, c.Request.Method, c.Request.URL.Path)
		response.Forbidden(c)
		c.Abort()
	}
}
