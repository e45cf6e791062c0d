package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"accverse/internal/authz"
	"accverse/internal/repositories"
	"accverse/internal/utils"
)

var (
	ErrResetUserNotFound = errors.New("no account found with that email")
	ErrResetNotAdmin     = errors.New("only admin accounts can reset password")
	// covers unknown token and wrong-role holders alike, so callers cannot
	// tell which one it was
	ErrResetTokenInvalid     = errors.New("invalid or expired token")
	ErrResetTokenExpired     = errors.New("token expired")
	ErrResetPasswordRequired = errors.New("token and password are required")
	ErrResetPasswordTooShort = errors.New("password must be at least 6 characters")
)

const resetTokenTTL = time.Hour

type PasswordResetService interface {
	RequestReset(email string) error
	ResetPassword(token, newPassword string) error
}

type passwordResetService struct {
	userRepo repositories.UserRepository
	emails   EmailService
	auth     AuthService
}

func NewPasswordResetService(userRepo repositories.UserRepository, emails EmailService, auth AuthService) PasswordResetService {
	return &passwordResetService{
		userRepo: userRepo,
		emails:   emails,
		auth:     auth,
	}
}

// RequestReset issues a fresh single-use token for an admin account and
// mails a reset link. Delivery failures are logged only; the caller still
// gets success once the token is stored.
func (s *passwordResetService) RequestReset(email string) error {
	email = strings.TrimSpace(email)
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrResetUserNotFound
	}
	if user.Role != authz.RoleAdmin {
		return ErrResetNotAdmin
	}

	token, err := utils.NewResetToken(32)
	if err != nil {
		return err
	}
	expiry := time.Now().UTC().Add(resetTokenTTL)
	if err := s.userRepo.SetResetToken(user.ID, token, expiry); err != nil {
		return err
	}

	if s.emails != nil {
		if err := s.emails.SendPasswordResetEmail(user.Email, token); err != nil {
			log.Printf("[password-reset] failed to send email to %s: %v", user.Email, err)
		}
	}
	return nil
}

// ResetPassword redeems a token exactly once. An expired token is rejected
// but deliberately left in place, so resubmitting it keeps failing the same
// way until an admin requests a new one.
func (s *passwordResetService) ResetPassword(token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" || strings.TrimSpace(newPassword) == "" {
		return ErrResetPasswordRequired
	}
	if len(newPassword) < 6 {
		return ErrResetPasswordTooShort
	}

	user, err := s.userRepo.GetByResetToken(token)
	if err != nil {
		return err
	}
	if user == nil || user.Role != authz.RoleAdmin {
		return ErrResetTokenInvalid
	}
	if user.ResetTokenExpiry == nil {
		return ErrResetTokenInvalid
	}
	// stored expiry may come back zone-naive; pin both sides to UTC
	if user.ResetTokenExpiry.UTC().Before(time.Now().UTC()) {
		return ErrResetTokenExpired
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(user.ID, hash); err != nil {
		return err
	}
	return s.userRepo.ClearResetToken(user.ID)
}
