package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accverse/internal/authz"
)

// RequireRoles rejects authenticated identities whose role is not in the
// allow-list. Ownership checks ("a client may only read their own forms")
// belong to the handlers, not here.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := map[string]struct{}{}
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, exists := c.Get(CtxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}
		role, _ := v.(string)
		if _, ok := allowedSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden - insufficient permissions"})
			return
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRoles(authz.RoleAdmin)
}

func ClientOrAdmin() gin.HandlerFunc {
	return RequireRoles(authz.RoleClient, authz.RoleAdmin)
}
