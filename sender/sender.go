package sender

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// EmailSender dispatches transactional mail on state transitions. Dispatch
// is awaited, but a failure never rolls back the database write that
// triggered it.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) (SendResult, error)
}

// NoopSender logs and drops mail. Used when SMTP is not configured.
type NoopSender struct {
	Logger *zap.Logger
}

func (s *NoopSender) SendEmail(ctx context.Context, to, subject, body string) (SendResult, error) {
	if s.Logger != nil {
		s.Logger.Warn("email dispatch disabled, dropping message",
			zap.String("to", to),
			zap.String("subject", subject),
		)
	}
	return SendResult{MessageID: "noop", SentAt: time.Now()}, nil
}
