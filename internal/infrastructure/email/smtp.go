package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"gymdesk/internal/shared/biztime"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
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

// SendExpiryReminder notifies a member that their membership expires soon.
func (s *SMTPEmailService) SendExpiryReminder(to, memberName, planName string, expiryDate time.Time) error {
	expiry := biztime.FormatDate(expiryDate)

	subject := fmt.Sprintf("Your %s membership expires on %s", planName, expiry)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Membership Expiry Reminder</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> membership expires on <strong>%s</strong>.</p>
			<p>Renew at the front desk or contact us to keep your access uninterrupted.</p>
			<p>See you at the gym!</p>
		</body>
		</html>
	`, memberName, planName, expiry)

	plainBody := fmt.Sprintf(`
Hi %s,

Your %s membership expires on %s.

Renew at the front desk or contact us to keep your access uninterrupted.

See you at the gym!
	`, memberName, planName, expiry)

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
