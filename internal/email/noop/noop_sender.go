package noop

import (
	"context"

	"go.uber.org/zap"

	"taxdesk/internal/port"
)

type noopSender struct {
	log *zap.Logger
}

// NewNoopSender creates an EmailSender that only logs what it would have sent.
func NewNoopSender(log *zap.Logger) port.EmailSender {
	return &noopSender{log: log.Named("noop_email")}
}

func (s *noopSender) Send(_ context.Context, msg port.EmailMessage) error {
	s.log.Info("email not delivered (noop provider)",
		zap.String("to", msg.ToEmail),
		zap.String("subject", msg.Subject),
		zap.Int("body_bytes", len(msg.TextBody)),
	)
	return nil
}
