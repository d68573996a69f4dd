package middleware

import (
	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/auth"
	"trustgate/internal/logger"
)

// AdminAuth verifies the bearer token issued by the login endpoint. Mutating
// CMS routes and the settings write sit behind it; public reads do not.
func AdminAuth(gate *auth.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if err := gate.Verify(token); err != nil {
			logger.Log.Infof("admin token rejected: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set("role", auth.RoleAdmin)
		c.Next()
	}
}

// IsAdmin reports whether the current request carries a verified admin token.
// Optional-auth routes (draft listings) call this after TryAdminAuth.
func IsAdmin(c *gin.Context) bool {
	role, ok := c.Get("role")
	return ok && role == auth.RoleAdmin
}

// TryAdminAuth marks the request as admin when a valid token is present but
// never aborts. Used on listing routes where drafts are admin-only extras.
func TryAdminAuth(gate *auth.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err == nil && gate.Verify(token) == nil {
			c.Set("role", auth.RoleAdmin)
		}
		c.Next()
	}
}
