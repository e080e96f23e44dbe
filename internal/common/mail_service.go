package common

import (
	"context"
	"fmt"

	"campus-connect/eventhub/internal/logging"

	"github.com/resend/resend-go/v2"
)

// Mailer sends transactional mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, resetLink string) error
}

// ResendMailer delivers mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

var _ Mailer = (*ResendMailer)(nil)

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendPasswordReset(ctx context.Context, to, name, resetLink string) error {
	html := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>We received a request to reset your EventHub password. Click the link below to choose a new one. The link expires in 1 hour.</p>
<p><a href="%s">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>`,
		name, resetLink)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Reset your EventHub password",
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	logging.Info("password reset email sent", "message_id", sent.Id, "to", to)
	return nil
}
