package workspace

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhlegal/intake-service/internal/adapters/clients"
	"github.com/mhlegal/intake-service/internal/domain"
	"github.com/mhlegal/intake-service/internal/platform/config"
)

// setupWorkspaceClient creates a workspace Client against a test HTTP server.
func setupWorkspaceClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: "test-workspace",
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		AuthFunc:    AuthHeaders("test-token"),
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 3,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	})
	require.NoError(t, err)

	return NewClient(ClientConfig{
		Client:            client,
		ConsultDatabaseID: "db-consult",
		QuoteDatabaseID:   "db-quote",
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func consultRecord() *domain.ConsultRecord {
	return &domain.ConsultRecord{
		ID:        "consult-1",
		Name:      "김철수",
		Phone:     "010-9876-5432",
		Message:   "상담 요청",
		Status:    domain.StatusNew,
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func quoteRecord() *domain.QuoteRecord {
	return &domain.QuoteRecord{
		ID:           "quote-1",
		Name:         "홍길동",
		Email:        "hong@example.com",
		Phone:        "010-1234-5678",
		Role:         domain.RoleCreditor,
		Counterparty: domain.CounterpartyOrganization,
		Amount:       domain.Bracket10To30M,
		Summary:      "미수금 회수 문의",
		QuoteNumber:  "MH-20260102-042",
		Status:       domain.StatusNew,
		CreatedAt:    time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewClient_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewClient(ClientConfig{
			Client: nil,
			Logger: slog.Default(),
		})
	})
}

func TestClient_MirrorConsult(t *testing.T) {
	var captured pageRequest

	client := setupWorkspaceClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, apiVersion, r.Header.Get("Notion-Version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"page-1"}`))
	})

	err := client.MirrorConsult(context.Background(), consultRecord())
	require.NoError(t, err)

	assert.Equal(t, "db-consult", captured.Parent.DatabaseID)
	require.Contains(t, captured.Properties, "이름")
	assert.Equal(t, "김철수", captured.Properties["이름"].Title[0].Text.Content)
	require.Contains(t, captured.Properties, "연락처")
	require.NotNil(t, captured.Properties["연락처"].PhoneNumber)
	assert.Equal(t, "010-9876-5432", *captured.Properties["연락처"].PhoneNumber)
}

func TestClient_MirrorQuote(t *testing.T) {
	var captured pageRequest

	client := setupWorkspaceClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"page-2"}`))
	})

	err := client.MirrorQuote(context.Background(), quoteRecord())
	require.NoError(t, err)

	assert.Equal(t, "db-quote", captured.Parent.DatabaseID)
	assert.Equal(t, "MH-20260102-042", captured.Properties["견적번호"].RichText[0].Text.Content)
	require.NotNil(t, captured.Properties["이메일"].Email)
	assert.Equal(t, "hong@example.com", *captured.Properties["이메일"].Email)
	require.NotNil(t, captured.Properties["채권 금액"].Select)
	assert.Equal(t, "1,000만원 ~ 3,000만원", captured.Properties["채권 금액"].Select.Name)
}

func TestClient_MirrorQuote_APIError(t *testing.T) {
	client := setupWorkspaceClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"code":"rate_limited"}`))
	})

	err := client.MirrorQuote(context.Background(), quoteRecord())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestClient_Name(t *testing.T) {
	client := setupWorkspaceClient(t, func(w http.ResponseWriter, r *http.Request) {})
	assert.Equal(t, "workspace", client.Name())
}

func TestClient_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client := setupWorkspaceClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/users/me", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"bot-1"}`))
		})

		assert.NoError(t, client.Check(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		client := setupWorkspaceClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		assert.Error(t, client.Check(context.Background()))
	})
}
