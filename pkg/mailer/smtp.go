package mailer

import (
	"context"

	"gopkg.in/gomail.v2"
)

// SMTP sends mail through a plain SMTP relay.
type SMTP struct {
	dialer *gomail.Dialer
	sender string
}

func NewSMTP(host string, port int, username, password, sender string) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: sender,
	}
}

func (s *SMTP) Send(_ context.Context, to, subject, text string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	return s.dialer.DialAndSend(msg)
}

var _ Notifier = (*SMTP)(nil)
