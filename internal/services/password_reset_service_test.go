package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accverse/internal/models"
)

// in-memory user store keyed by id
type fakeUserRepo struct {
	users map[int]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id int) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) List() ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListClients() ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.Role == "client" {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) SetResetToken(userID int, token string, expiry time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.New("no such user")
	}
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	return nil
}

func (r *fakeUserRepo) GetByResetToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ClearResetToken(userID int) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.New("no such user")
	}
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID int, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.New("no such user")
	}
	u.PasswordHash = passwordHash
	return nil
}

// records sends instead of dialing SMTP
type recordingEmailService struct {
	sentTo     []string
	sentTokens []string
	err        error
}

func (s *recordingEmailService) SendPasswordResetEmail(email, token string) error {
	if s.err != nil {
		return s.err
	}
	s.sentTo = append(s.sentTo, email)
	s.sentTokens = append(s.sentTokens, token)
	return nil
}

func adminUser(id int, email string) *models.User {
	return &models.User{ID: id, Name: "Admin", Email: email, Role: "admin", IsVerified: true}
}

func TestRequestResetStoresTokenAndSendsEmail(t *testing.T) {
	repo := newFakeUserRepo(adminUser(1, "admin@accverse.com"))
	emails := &recordingEmailService{}
	svc := NewPasswordResetService(repo, emails, NewAuthService())

	require.NoError(t, svc.RequestReset("admin@accverse.com"))

	u := repo.users[1]
	require.NotNil(t, u.ResetToken)
	require.NotNil(t, u.ResetTokenExpiry)
	assert.GreaterOrEqual(t, len(*u.ResetToken), 40)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), *u.ResetTokenExpiry, time.Minute)

	require.Len(t, emails.sentTokens, 1)
	assert.Equal(t, *u.ResetToken, emails.sentTokens[0])
	assert.Equal(t, []string{"admin@accverse.com"}, emails.sentTo)
}

func TestRequestResetUnknownEmail(t *testing.T) {
	svc := NewPasswordResetService(newFakeUserRepo(), &recordingEmailService{}, NewAuthService())
	err := svc.RequestReset("nobody@accverse.com")
	assert.ErrorIs(t, err, ErrResetUserNotFound)
}

func TestRequestResetNonAdmin(t *testing.T) {
	client := &models.User{ID: 2, Email: "client@accverse.com", Role: "client"}
	svc := NewPasswordResetService(newFakeUserRepo(client), &recordingEmailService{}, NewAuthService())

	err := svc.RequestReset("client@accverse.com")
	assert.ErrorIs(t, err, ErrResetNotAdmin)
	assert.Nil(t, client.ResetToken)
}

func TestRequestResetSurvivesEmailFailure(t *testing.T) {
	repo := newFakeUserRepo(adminUser(1, "admin@accverse.com"))
	emails := &recordingEmailService{err: errors.New("smtp down")}
	svc := NewPasswordResetService(repo, emails, NewAuthService())

	require.NoError(t, svc.RequestReset("admin@accverse.com"))
	assert.NotNil(t, repo.users[1].ResetToken)
}

func TestResetPasswordHappyPath(t *testing.T) {
	u := adminUser(1, "admin@accverse.com")
	token := "valid-token"
	expiry := time.Now().UTC().Add(time.Hour)
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry

	auth := NewAuthService()
	repo := newFakeUserRepo(u)
	svc := NewPasswordResetService(repo, &recordingEmailService{}, auth)

	require.NoError(t, svc.ResetPassword("valid-token", "new-password"))

	assert.True(t, auth.CheckPassword(u.PasswordHash, "new-password"))
	assert.Nil(t, u.ResetToken)
	assert.Nil(t, u.ResetTokenExpiry)

	// token is single use
	err := svc.ResetPassword("valid-token", "another-password")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPasswordRejectsMissingOrShortPassword(t *testing.T) {
	u := adminUser(1, "admin@accverse.com")
	u.PasswordHash = "$2a$10$existinghash"
	token := "valid-token"
	expiry := time.Now().UTC().Add(time.Hour)
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry

	repo := newFakeUserRepo(u)
	svc := NewPasswordResetService(repo, &recordingEmailService{}, NewAuthService())

	for _, pw := range []string{"", "   "} {
		err := svc.ResetPassword("valid-token", pw)
		assert.ErrorIs(t, err, ErrResetPasswordRequired, "password %q", pw)
	}
	err := svc.ResetPassword("valid-token", "short")
	assert.ErrorIs(t, err, ErrResetPasswordTooShort)
	err = svc.ResetPassword("", "long-enough")
	assert.ErrorIs(t, err, ErrResetPasswordRequired)

	// nothing changed: hash untouched, token still redeemable
	assert.Equal(t, "$2a$10$existinghash", u.PasswordHash)
	require.NotNil(t, u.ResetToken)
	require.NoError(t, svc.ResetPassword("valid-token", "long-enough"))
}

func TestResetPasswordUnknownToken(t *testing.T) {
	svc := NewPasswordResetService(newFakeUserRepo(), &recordingEmailService{}, NewAuthService())
	err := svc.ResetPassword("never-issued", "new-password")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPasswordExpiredTokenStaysPut(t *testing.T) {
	u := adminUser(1, "admin@accverse.com")
	token := "stale-token"
	expiry := time.Now().UTC().Add(-time.Second)
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry

	repo := newFakeUserRepo(u)
	svc := NewPasswordResetService(repo, &recordingEmailService{}, NewAuthService())

	err := svc.ResetPassword("stale-token", "new-password")
	assert.ErrorIs(t, err, ErrResetTokenExpired)

	// the expired token is not cleared; retrying fails the same way
	require.NotNil(t, u.ResetToken)
	assert.Equal(t, "stale-token", *u.ResetToken)
	err = svc.ResetPassword("stale-token", "new-password")
	assert.ErrorIs(t, err, ErrResetTokenExpired)
}
