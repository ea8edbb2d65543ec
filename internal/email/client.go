package email

import (
	"context"
	"fmt"

	"github.com/atlasdoors/backoffice/internal/config"
	"github.com/resend/resend-go/v2"
)

// Sender is the transport contract the service layer depends on.
type Sender interface {
	IsEnabled() bool
	GetFromAddress() string
	SendEmail(ctx context.Context, from, to, subject, htmlContent, textContent string) (string, error)
}

// Client wraps the resend API client. When disabled it refuses sends
// instead of silently dropping them.
type Client struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
	replyTo     string
}

// NewClient creates a new email client from configuration
func NewClient(cfg *config.Configuration) Sender {
	if !cfg.Email.Enabled || cfg.Email.APIKey == "" {
		return &Client{enabled: false}
	}

	return &Client{
		client:      resend.NewClient(cfg.Email.APIKey),
		enabled:     true,
		fromAddress: cfg.Email.FromAddress,
		replyTo:     cfg.Email.ReplyTo,
	}
}

// IsEnabled returns whether the email client is enabled
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// GetFromAddress returns the default from address
func (c *Client) GetFromAddress() string {
	return c.fromAddress
}

// SendEmail sends a plain text or HTML email
func (c *Client) SendEmail(ctx context.Context, from, to, subject, htmlContent, textContent string) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("email client is disabled")
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
		Text:    textContent,
	}

	if c.replyTo != "" {
		params.ReplyTo = c.replyTo
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return sent.Id, nil
}
