package notification

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Email is one outbound message.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// EmailSender abstracts the email provider.
type EmailSender interface {
	Send(ctx context.Context, email Email) (string, error)
}

type resendSender struct {
	client *resend.Client
}

// NewResendSender returns a sender backed by Resend, or nil when no API key
// is configured.
func NewResendSender(apiKey string) EmailSender {
	if apiKey == "" {
		return nil
	}
	return &resendSender{client: resend.NewClient(apiKey)}
}

func (s *resendSender) Send(ctx context.Context, email Email) (string, error) {
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
