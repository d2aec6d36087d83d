package sender

import (
	"context"
	"time"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// EmailSender delivers a pre-rendered body to one or more recipients.
// Order notification is best-effort: callers log failures and move on.
type EmailSender interface {
	SendEmail(ctx context.Context, from string, to []string, subject, body string) (SendResult, error)
}
