// Package mailer sends operator emails, currently only password resets.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	netmail "net/mail"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	DefaultBaseURL = "https://api.sendgrid.com"
	mailSendPath   = "/v3/mail/send"
)

// Mailer delivers password reset links.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, link string) error
}

// SendGrid delivers mail through the SendGrid v3 API.
type SendGrid struct {
	apiKey  string
	baseURL string
	from    *mail.Email
}

// NewSendGrid builds a SendGrid mailer. from is an RFC 5322 address such as
// "Elsafrica Networks <billing@elsafrica.net>".
func NewSendGrid(apiKey, from string) (*SendGrid, error) {
	addr, err := netmail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	return &SendGrid{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		from:    mail.NewEmail(addr.Name, addr.Address),
	}, nil
}

// WithBaseURL points the mailer at another API host.
func (s *SendGrid) WithBaseURL(baseURL string) *SendGrid {
	s.baseURL = baseURL
	return s
}

func (s *SendGrid) SendPasswordReset(ctx context.Context, to, name, link string) error {
	subject, plain, html := resetContent(name, link)
	m := mail.NewSingleEmail(s.from, subject, mail.NewEmail(name, to), plain, html)

	request := sendgrid.GetRequest(s.apiKey, mailSendPath, s.baseURL)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetryWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	if response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sendgrid rejected reset email: status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// Log writes reset links to the log instead of sending them. It stands in for
// SendGrid when no API key is configured.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) SendPasswordReset(ctx context.Context, to, name, link string) error {
	l.logger.InfoContext(ctx, "Password reset link", "to", to, "link", link)
	return nil
}

func resetContent(name, link string) (subject, plain, html string) {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}
	subject = "Reset your billing dashboard password"
	plain = fmt.Sprintf("%s,\n\nUse the link below to choose a new password:\n%s\n\n"+
		"If you did not ask for a reset you can ignore this email.\n", greeting, link)
	html = fmt.Sprintf("<p>%s,</p><p>Use the link below to choose a new password:</p>"+
		`<p><a href="%s">%s</a></p><p>If you did not ask for a reset you can ignore this email.</p>`,
		greeting, link, link)
	return subject, plain, html
}
