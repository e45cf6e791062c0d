package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"accverse/internal/authz"
	"accverse/internal/middleware"
)

// tolerant of the value type in context (int / int64 / float64 / string)
func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

// currentIdentity returns the authenticated user id and role placed in the
// context by the auth middleware.
func currentIdentity(c *gin.Context) (userID int, role string) {
	if id, ok := getIntFromCtx(c, middleware.CtxUserID); ok {
		userID = id
	}
	if v, ok := c.Get(middleware.CtxRole); ok {
		role, _ = v.(string)
	}
	return
}

// mayAccessUser implements the ownership rule: admins see everything,
// clients only themselves.
func mayAccessUser(c *gin.Context, targetUserID int) bool {
	userID, role := currentIdentity(c)
	return role == authz.RoleAdmin || userID == targetUserID
}
