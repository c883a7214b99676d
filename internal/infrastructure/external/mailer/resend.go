package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Message is a single outbound HTML email
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer sends transactional email. Implementations must treat delivery as
// best-effort; callers decide whether a failure is fatal.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResendMailer sends email through the Resend API
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer creates a mailer backed by Resend
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
	}
}

// Send delivers a single message
func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email via resend: %w", err)
	}
	return nil
}
