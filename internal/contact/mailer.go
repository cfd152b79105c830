package contact

import (
	"context"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Email is a single outbound message.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer dispatches outbound email. The service depends on this interface
// so tests can stub delivery.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// ResendMailer delivers through the Resend API.
type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) Send(ctx context.Context, email Email) error {
	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}

// LogMailer logs messages instead of sending them. Used when no Resend
// API key is configured (local development).
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, email Email) error {
	m.log.Info("mail not sent (no RESEND_API_KEY configured)",
		zap.String("to", email.To),
		zap.String("subject", email.Subject))
	return nil
}
