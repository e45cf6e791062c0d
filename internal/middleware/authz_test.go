package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthzTestRouter(role string, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setRole := func(c *gin.Context) {
		if role != "" {
			c.Set(CtxRole, role)
		}
		c.Next()
	}
	r.GET("/guarded", setRole, guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGuarded(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	w := doGuarded(newAuthzTestRouter("admin", AdminOnly()))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnlyRejectsClient(t *testing.T) {
	w := doGuarded(newAuthzTestRouter("client", AdminOnly()))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden - insufficient permissions"}`, w.Body.String())
}

func TestRequireRolesRejectsUnknownRole(t *testing.T) {
	w := doGuarded(newAuthzTestRouter("superuser", ClientOrAdmin()))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesWithoutIdentity(t *testing.T) {
	w := doGuarded(newAuthzTestRouter("", AdminOnly()))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized access"}`, w.Body.String())
}

func TestClientOrAdminAllowsBoth(t *testing.T) {
	for _, role := range []string{"client", "admin"} {
		w := doGuarded(newAuthzTestRouter(role, ClientOrAdmin()))
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}
