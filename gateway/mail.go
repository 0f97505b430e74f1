package gateway

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail to account holders.
type Mailer interface {
	SendPasswordReset(to, token string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendPasswordReset(to, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Reset your password")
	msg.SetBody("text/plain", fmt.Sprintf(
		"We received a request to reset the password for your account.\n\n"+
			"Use this code within the next hour to choose a new password:\n\n%s\n\n"+
			"If you did not request a reset, you can ignore this message.", token))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending password reset mail: %w", err)
	}
	return nil
}
