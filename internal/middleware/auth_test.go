package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accverse/internal/auth"
)

func newAuthTestRouter(tm *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Authenticate(tm), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt(CtxUserID),
			"email":   c.GetString(CtxEmail),
			"role":    c.GetString(CtxRole),
		})
	})
	return r
}

func TestAuthenticateMissingOrMalformedHeader(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	r := newAuthTestRouter(tm)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Token abc"},
		{"scheme only", "Bearer"},
		{"blank token", "Bearer   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Missing or invalid Authorization header"}`, w.Body.String())
		})
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	short := auth.NewTokenManager("test-secret", time.Millisecond)
	r := newAuthTestRouter(auth.NewTokenManager("test-secret", time.Hour))

	token, err := short.Generate(1, "admin@accverse.com", "admin")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token has expired"}`, w.Body.String())
}

func TestAuthenticateInvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("other-secret", time.Hour)
	r := newAuthTestRouter(tm)

	token, err := other.Generate(1, "admin@accverse.com", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	r := newAuthTestRouter(tm)

	token, err := tm.Generate(42, "admin@accverse.com", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["user_id"])
	assert.Equal(t, "admin@accverse.com", body["email"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthenticateSkipsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tm := auth.NewTokenManager("test-secret", time.Hour)
	r := gin.New()
	r.OPTIONS("/protected", Authenticate(tm), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
