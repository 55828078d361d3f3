// Package mailer delivers transactional email through an HTTP mail provider.
// The only message it knows how to send is the account verification mail
// carrying the single-use confirmation link.
package mailer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wayfare-app/auth-server/internal/config"
	"github.com/wayfare-app/auth-server/internal/logger"
	"github.com/wayfare-app/auth-server/internal/utils"
)

// message is the provider's send-mail request body.
type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Mailer sends mail through the configured provider API using the shared
// resty-based HTTP client.
type Mailer struct {
	client *utils.HTTPClient

	apiAddress string
	from       string

	// baseURL is the public address of this service, used to build the
	// verification link the user clicks.
	baseURL string

	logger *logger.Logger
}

// NewMailer constructs a Mailer from the mail provider settings and the
// application's public base URL.
func NewMailer(cfg config.Mailer, app config.App, log *logger.Logger) *Mailer {
	client := utils.NewHTTPClient()
	client.SetBaseURL(cfg.APIAddress)
	client.SetAuthToken(cfg.APIKey)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &Mailer{
		client:     client,
		apiAddress: cfg.APIAddress,
		from:       cfg.From,
		baseURL:    app.BaseURL,
		logger:     log,
	}
}

// SendVerification emails the single-use confirmation link to the given
// address. The link carries only the opaque token identifier; nothing about
// the account can be derived from it.
func (m *Mailer) SendVerification(ctx context.Context, email, tokenUUID string) error {
	link := m.verificationLink(tokenUUID)

	body := message{
		From:    m.from,
		To:      email,
		Subject: "Verify your account",
		Text:    "Welcome! Confirm your email address by opening the following link:\n\n" + link,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/send")
	if err != nil {
		return fmt.Errorf("sending verification mail: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail provider rejected the message: %s", resp.Status())
	}

	m.logger.Debug().Str("email", email).Msg("verification mail accepted by provider")
	return nil
}

func (m *Mailer) verificationLink(tokenUUID string) string {
	return m.baseURL + "/api/v1/auth/verification?uuid=" + url.QueryEscape(tokenUUID)
}
