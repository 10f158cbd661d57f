package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Noop is used when mail sending is disabled (local development). It logs
// the would-be message and reports success.
type Noop struct {
	Logger *logrus.Logger
}

func (n *Noop) Send(_ context.Context, to, subject, _ string) error {
	if n.Logger != nil {
		n.Logger.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("mail sending disabled, dropping message")
	}
	return nil
}

var _ Notifier = (*Noop)(nil)
