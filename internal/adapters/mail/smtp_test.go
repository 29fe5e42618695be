package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhlegal/intake-service/internal/domain"
	"github.com/mhlegal/intake-service/internal/platform/config"
)

func testMailConfig() config.MailConfig {
	return config.MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "notify",
		Password: "secret",
		From:     "noreply@mhlegal.example",
		StartTLS: true,
	}
}

func setupMailer(t *testing.T, send sendFunc) *SMTP {
	t.Helper()

	m := NewSMTP(testMailConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.send = send

	return m
}

func TestSMTP_Send(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
	)

	m := setupMailer(t, func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	})

	err := m.Send(context.Background(), "office@mhlegal.example", "신규 상담 신청: 김철수", "<html><body>본문</body></html>")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@mhlegal.example", gotFrom)
	assert.Equal(t, []string{"office@mhlegal.example"}, gotTo)

	message := string(gotMsg)
	assert.Contains(t, message, "From: noreply@mhlegal.example\r\n")
	assert.Contains(t, message, "To: office@mhlegal.example\r\n")
	assert.Contains(t, message, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.Contains(t, message, "<html><body>본문</body></html>")

	// Non-ASCII subjects must be encoded, never sent raw.
	assert.NotContains(t, message, "Subject: 신규 상담 신청: 김철수")
	assert.Contains(t, message, mime.QEncoding.Encode("utf-8", "신규 상담 신청: 김철수"))
}

func TestSMTP_Send_ServerError(t *testing.T) {
	m := setupMailer(t, func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		return errors.New("450 mailbox busy")
	})

	err := m.Send(context.Background(), "office@mhlegal.example", "subject", "body")
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestSMTP_Send_CancelledContext(t *testing.T) {
	called := false
	m := setupMailer(t, func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, "office@mhlegal.example", "subject", "body")
	require.Error(t, err)
	assert.False(t, called)
	assert.False(t, domain.IsUnavailable(err))
}

func TestSMTP_Name(t *testing.T) {
	m := NewSMTP(testMailConfig(), nil)
	assert.Equal(t, "smtp", m.Name())
}

func TestBuildMessage_ASCIISubject(t *testing.T) {
	msg := string(buildMessage("a@b.com", "c@d.com", "plain subject", "body"))
	assert.Contains(t, msg, "Subject: plain subject\r\n")
}

func TestNewSMTP_PlainWithoutStartTLS(t *testing.T) {
	cfg := testMailConfig()
	cfg.StartTLS = false

	m := NewSMTP(cfg, nil)
	require.NotNil(t, m.send)
}
