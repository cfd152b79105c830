package contact

import (
	"context"
	"fmt"
	"html"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submission is a validated contact-form message.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Service relays contact-form submissions: a notification to the site
// owner and an auto-reply to the sender.
type Service struct {
	mailer    Mailer
	sender    string
	recipient string
	log       *zap.Logger
}

func NewService(mailer Mailer, sender, recipient string, log *zap.Logger) *Service {
	return &Service{mailer: mailer, sender: sender, recipient: recipient, log: log}
}

// Submit sends both emails and returns a reference id for the submission.
func (s *Service) Submit(ctx context.Context, sub Submission) (string, error) {
	refID := uuid.New().String()

	name := html.EscapeString(sub.Name)
	email := html.EscapeString(sub.Email)
	message := html.EscapeString(sub.Message)

	notification := Email{
		From:    fmt.Sprintf("Portfolio <%s>", s.sender),
		To:      s.recipient,
		ReplyTo: sub.Email,
		Subject: "New Contact: " + sub.Subject,
		HTML: fmt.Sprintf(
			"<p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Message:</strong> %s</p>",
			name, email, message),
	}
	if err := s.mailer.Send(ctx, notification); err != nil {
		s.log.Error("contact notification failed",
			zap.String("ref_id", refID), zap.Error(err))
		return "", fmt.Errorf("send notification: %w", err)
	}

	autoReply := Email{
		From:    fmt.Sprintf("Portfolio <%s>", s.sender),
		To:      sub.Email,
		Subject: fmt.Sprintf("Thank you for contacting me, %s!", sub.Name),
		HTML: fmt.Sprintf(
			"<p>Thank you for reaching out! I have received your message and will get back to you shortly.</p><p>Your original message was: <strong>%s</strong></p>",
			message),
	}
	if err := s.mailer.Send(ctx, autoReply); err != nil {
		// The owner already has the message; log and carry on.
		s.log.Warn("contact auto-reply failed",
			zap.String("ref_id", refID), zap.Error(err))
	}

	s.log.Info("contact message relayed", zap.String("ref_id", refID))
	return refID, nil
}
