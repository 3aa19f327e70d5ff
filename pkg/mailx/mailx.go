// Package mailx wraps outbound transactional email behind a small Mailer
// interface so services can be tested without an SMTP server.
package mailx

import (
	"context"
	"errors"
)

// ErrNotConfigured reports that no SMTP settings are present. Callers decide
// whether that is fatal (invite delivery) or fine (development mode).
var ErrNotConfigured = errors.New("mailx: smtp not configured")

// Mailer delivers a single HTML email.
type Mailer interface {
	// Send delivers one message. Implementations must be safe for
	// concurrent use.
	Send(ctx context.Context, to, subject, html string) error

	// Configured reports whether the mailer can actually deliver mail.
	Configured() bool
}

// Config holds SMTP transport settings. Host, Username and Password are all
// required for the mailer to count as configured, mirroring the operator's
// deployment contract.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // sender address; falls back to Username when empty
}

// Complete reports whether every required transport field is present.
func (c Config) Complete() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// Disabled is a Mailer for deployments without SMTP settings. Send always
// fails with ErrNotConfigured.
type Disabled struct{}

func (Disabled) Send(context.Context, string, string, string) error { return ErrNotConfigured }
func (Disabled) Configured() bool                                   { return false }
