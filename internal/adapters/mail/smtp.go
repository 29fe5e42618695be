// Package mail delivers intake notifications over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/mhlegal/intake-service/internal/domain"
	"github.com/mhlegal/intake-service/internal/platform/config"
	"github.com/mhlegal/intake-service/internal/platform/logging"
)

// checkDialTimeout bounds the connectivity probe used by health checks.
const checkDialTimeout = 5 * time.Second

// sendFunc submits a fully built message to the SMTP server.
// Swappable in tests so no real server is needed.
type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// SMTP implements the mailer port on top of net/smtp.
type SMTP struct {
	cfg    config.MailConfig
	logger *slog.Logger
	send   sendFunc
}

// NewSMTP creates a mailer from the given configuration.
func NewSMTP(cfg config.MailConfig, logger *slog.Logger) *SMTP {
	if logger == nil {
		logger = slog.Default()
	}

	m := &SMTP{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.StartTLS {
		m.send = m.sendWithStartTLS
	} else {
		m.send = smtp.SendMail
	}

	return m
}

// Send delivers a single HTML message to the given recipient.
func (m *SMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}

	start := time.Now()
	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))
	msg := buildMessage(m.cfg.From, to, subject, htmlBody)

	if err := m.send(addr, m.auth(), m.cfg.From, []string{to}, msg); err != nil {
		return domain.NewUnavailableError("smtp", fmt.Sprintf("sending mail: %v", err))
	}

	m.logger.Log(ctx, logging.LevelTrace, "mail delivered",
		slog.String("to", to),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// Name identifies this adapter in health check responses.
func (m *SMTP) Name() string {
	return "smtp"
}

// Check probes TCP reachability of the SMTP server.
// A full handshake per health poll would be too noisy for most servers.
func (m *SMTP) Check(ctx context.Context) error {
	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	d := net.Dialer{Timeout: checkDialTimeout}

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dialing smtp server: %w", err)
	}

	return conn.Close()
}

func (m *SMTP) auth() smtp.Auth {
	if m.cfg.Username == "" {
		return nil
	}

	return smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
}

// sendWithStartTLS upgrades a plain connection before authenticating.
// smtp.SendMail only negotiates STARTTLS opportunistically; here it is
// mandatory so credentials never travel in the clear.
func (m *SMTP) sendWithStartTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("connecting to smtp server: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return fmt.Errorf("starting tls: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	if err = client.Mail(from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}

	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("setting recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("opening data writer: %w", err)
	}

	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("closing data writer: %w", err)
	}

	return client.Quit()
}

// buildMessage assembles an RFC 5322 HTML message.
// The subject is Q-encoded since it usually carries Korean text.
func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	return []byte(b.String())
}
