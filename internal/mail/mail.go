// Package mail is the outbound SMTP boundary. Everything that sends email
// depends on Sender, so tests can swap in a recorder.
package mail

import (
	"fmt"

	"community_portal/config"
	"community_portal/internal/apperr"

	"gopkg.in/gomail.v2"
)

// Sender delivers one message to every address in to with a single call.
type Sender interface {
	Send(to []string, subject, body string) error
}

// SMTPSender sends through the configured SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(to []string, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}
	return nil
}
