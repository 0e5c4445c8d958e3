// Package readonly blocks write operations when the site runs as a shared,
// guest-facing library. Read endpoints and the login flow keep working so
// the admin can still sign in and look around.
package readonly

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware blocks write operations in read-only mode.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		// Always allow read-only methods
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		// Login must keep working
		if m.isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     "this action is disabled in read-only mode",
			"read_only": true,
		})
	}
}

// isAllowedPath checks if a path may receive writes in read-only mode.
// Intentionally restrictive: only the auth endpoints pass through.
func (m *Middleware) isAllowedPath(path string) bool {
	return strings.HasPrefix(path, "/api/auth/")
}
