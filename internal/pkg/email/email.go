package email

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// EmailService defines the interface for outbound mail. Enrollment sends the
// welcome mail best-effort: a send failure never fails the workflow.
type EmailService interface {
	SendWelcomeEmail(toEmail, toName, studentNumber, institutionalEmail string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	FromName        string
	FromEmail       string
	InstitutionName string
}

// EmailServiceImpl implements EmailService over SMTP
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendWelcomeEmail notifies a newly enrolled student of their student number
// and institutional address. The mail goes to the personal address the
// student applied with.
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, toName, studentNumber, institutionalEmail string) error {
	// Without credentials just log the mail, useful in development
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("studentNumber", studentNumber).
			Str("institutionalEmail", institutionalEmail).
			Msg("SMTP credentials not configured - welcome email not sent")
		return nil
	}

	subject := fmt.Sprintf("Welcome to %s", s.config.InstitutionName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome to %s!</h2>
				<p>Hello %s,</p>
				<p>Your enrollment is complete. Your student details are:</p>
				<ul>
					<li>Student number: <strong>%s</strong></li>
					<li>Institutional email: <strong>%s</strong></li>
				</ul>
				<p>You can now log in with your existing account to see your study details.</p>
				<p>Best regards,<br>%s</p>
			</div>
		</body>
		</html>
	`, s.config.InstitutionName, toName, studentNumber, institutionalEmail, s.config.FromName)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send welcome email")
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
