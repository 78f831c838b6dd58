package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Service sends transactional mail to vendors.
type Service interface {
	SendActivationEmail(to, token string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g. "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendActivationEmail mails the account activation link to a newly created
// vendor with login enabled.
func (s *SMTPEmailService) SendActivationEmail(to, token string) error {
	activationURL := fmt.Sprintf("%s/portal/activate?token=%s", s.config.BaseURL, token)

	subject := "Activate Your Vendor Account"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your vendor account is ready</h2>
			<p>An account has been created for you. Click the link below to set your password and activate it:</p>
			<p><a href="%s">Activate Account</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>If you weren't expecting this email, please ignore it.</p>
		</body>
		</html>
	`, activationURL, activationURL)

	plainBody := fmt.Sprintf(`
Your vendor account is ready

An account has been created for you. Visit the following URL to set your password and activate it:
%s

If you weren't expecting this email, please ignore it.
	`, activationURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
