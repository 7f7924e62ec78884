package mail

import (
	"context"
	"fmt"

	"phishsim-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

// Message is one outbound email
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// ResendClient sends mail through one Resend account
type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is empty")
	}
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		logger: logger,
	}, nil
}

// SendEmail delivers msg and returns the provider message id
func (c *ResendClient) SendEmail(ctx context.Context, msg Message) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: msg.To},
		observability.Field{Key: "email_subject", Value: msg.Subject},
	)

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
