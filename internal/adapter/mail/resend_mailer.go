package mail

import (
	"context"
	"errors"
	"fmt"

	"fireforge/internal/domain"

	"github.com/resend/resend-go/v2"
)

// ResendMailer implements domain.Mailer on top of the Resend API. Each Send
// is one API call; outcomes are independent per message.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a new ResendMailer with the given API key.
func NewResendMailer(apiKey string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key is not configured")
	}
	return &ResendMailer{client: resend.NewClient(apiKey)}, nil
}

// Send dispatches a single transactional email.
func (m *ResendMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return errors.New("resend send returned no message id")
	}
	return nil
}
