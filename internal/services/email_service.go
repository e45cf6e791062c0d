package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendPasswordResetEmail(email, token string) error
}

type emailService struct {
	dialer       *gomail.Dialer
	from         string
	resetBaseURL string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, resetBaseURL string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:       dialer,
		from:         fromEmail,
		resetBaseURL: resetBaseURL,
	}
}

func (s *emailService) SendPasswordResetEmail(email, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.resetBaseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset Request")

	body := fmt.Sprintf(`Hello,

We received a request to reset your password. Click the link below to set a new password:

%s

If you did not request this, you can safely ignore this email.

Thanks,
The Accverse Team
`, resetLink)

	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
