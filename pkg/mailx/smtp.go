package mailx

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

// outboundPerSecond bounds how fast we hand messages to the SMTP relay, so a
// burst of consultation requests cannot trip the provider's sending limits.
const outboundPerSecond = 2

// SMTPMailer delivers mail through a single SMTP relay using go-mail.
type SMTPMailer struct {
	cfg     Config
	client  *mail.Client
	limiter *rate.Limiter
}

// NewSMTP builds an SMTPMailer from cfg. Returns ErrNotConfigured when the
// transport settings are incomplete so callers can fall back to Disabled.
func NewSMTP(cfg Config) (*SMTPMailer, error) {
	if !cfg.Complete() {
		return nil, ErrNotConfigured
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("mailx: smtp client: %w", err)
	}

	return &SMTPMailer{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(outboundPerSecond), outboundPerSecond),
	}, nil
}

func (m *SMTPMailer) Configured() bool { return true }

// Send delivers one HTML message, waiting on the outbound limiter first.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, html string) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailx: from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mailx: to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailx: send: %w", err)
	}
	return nil
}
