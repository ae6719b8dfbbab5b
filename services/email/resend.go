package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer implements Mailer using Resend.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer builds a mailer from the Resend API key and sender address.
func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" || from == "" {
		return nil, fmt.Errorf("resend credentials not set in configuration")
	}
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}, nil
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("email: failed to send %q to %s: %w", subject, to, err)
	}
	return nil
}
