package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"accverse/internal/auth"
	"accverse/internal/authz"
	"accverse/internal/models"
	"accverse/internal/services"
)

type AuthHandler struct {
	userService  services.UserService
	authService  services.AuthService
	resetService services.PasswordResetService
	tokens       *auth.TokenManager
}

func NewAuthHandler(userService services.UserService, authService services.AuthService, resetService services.PasswordResetService, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		authService:  authService,
		resetService: resetService,
		tokens:       tokens,
	}
}

// @Summary      Admin login
// @Description  Authenticates an admin account and returns a bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}
	log.Printf("[auth][login] attempt email=%q", email)

	user, err := h.userService.GetUserByEmail(email)
	if err != nil {
		log.Printf("[auth][login] lookup failed for email=%q: err=%v", email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}
	// identical body for unknown email and wrong password
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	if user.Role != authz.RoleAdmin {
		log.Printf("[auth][login] non-admin login rejected userID=%d role=%q", user.ID, user.Role)
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admins only."})
		return
	}
	if !user.IsVerified {
		log.Printf("[auth][login] unverified account userID=%d", user.ID)
		c.JSON(http.StatusForbidden, gin.H{"error": "Account not verified."})
		return
	}

	if !h.authService.CheckPassword(user.PasswordHash, req.Password) {
		log.Printf("[auth][login] password mismatch userID=%d", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("[auth][login] sign token failed userID=%d: err=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authentication token"})
		return
	}

	log.Printf("[auth][login] success userID=%d took=%s", user.ID, time.Since(start).Truncate(time.Millisecond))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user.Public(),
	})
}

// @Summary      Request password reset
// @Description  Emails a one-hour single-use reset link to an admin account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.PasswordResetRequest  true  "Account email"
// @Success      200      {object}  map[string]bool
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /request-password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req models.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required."})
		return
	}

	err := h.resetService.RequestReset(req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, services.ErrResetUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No account found with that email."})
	case errors.Is(err, services.ErrResetNotAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admin accounts can reset password."})
	default:
		log.Printf("[auth][reset-request] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Password reset request failed"})
	}
}

// @Summary      Redeem password reset token
// @Description  Sets a new password using an emailed reset token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.PasswordResetSubmit  true  "Token and new password"
// @Success      200      {object}  map[string]bool
// @Failure      400      {object}  map[string]string
// @Router       /reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.PasswordResetSubmit
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
		return
	}

	err := h.resetService.ResetPassword(req.Token, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, services.ErrResetPasswordRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token and password are required."})
	case errors.Is(err, services.ErrResetPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters."})
	case errors.Is(err, services.ErrResetTokenInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
	case errors.Is(err, services.ErrResetTokenExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token expired."})
	default:
		log.Printf("[auth][reset] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Password reset failed"})
	}
}
