// Package workspace implements the Anti-Corruption Layer pattern for the
// team workspace API. It translates domain records into workspace page
// payloads, protecting the domain from workspace API changes.
package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mhlegal/intake-service/internal/adapters/clients"
	"github.com/mhlegal/intake-service/internal/domain"
	"github.com/mhlegal/intake-service/internal/platform/logging"
)

// apiVersion pins the workspace API revision sent with every request.
const apiVersion = "2022-06-28"

// ClientConfig contains configuration for the workspace client.
type ClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the workspace API endpoint.
	Client *clients.Client

	// ConsultDatabaseID is the workspace database receiving consult entries.
	ConsultDatabaseID string

	// QuoteDatabaseID is the workspace database receiving quote entries.
	QuoteDatabaseID string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// Client implements ports.WorkspaceMirror against a Notion-compatible
// workspace API. Each mirrored record becomes a page in a database.
type Client struct {
	client    *clients.Client
	consultDB string
	quoteDB   string
	logger    *slog.Logger
}

// NewClient creates a new workspace client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Client == nil {
		panic("workspace.Client: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		client:    cfg.Client,
		consultDB: cfg.ConsultDatabaseID,
		quoteDB:   cfg.QuoteDatabaseID,
		logger:    logger,
	}
}

// AuthHeaders returns an auth injector for the underlying HTTP client.
// Separate from NewClient so the clients.Client can be built first.
func AuthHeaders(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Notion-Version", apiVersion)
	}
}

// External DTOs. These mirror the workspace page API and are never exposed
// outside this package.
type pageRequest struct {
	Parent     pageParent          `json:"parent"`
	Properties map[string]property `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

type property struct {
	Title       []richText    `json:"title,omitempty"`
	RichText    []richText    `json:"rich_text,omitempty"`
	Select      *selectOption `json:"select,omitempty"`
	Email       *string       `json:"email,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
	Date        *dateValue    `json:"date,omitempty"`
}

type richText struct {
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

type selectOption struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

func titleProp(s string) property {
	return property{Title: []richText{{Text: textContent{Content: s}}}}
}

func textProp(s string) property {
	return property{RichText: []richText{{Text: textContent{Content: s}}}}
}

func selectProp(s string) property {
	return property{Select: &selectOption{Name: s}}
}

func emailProp(s string) property {
	return property{Email: &s}
}

func phoneProp(s string) property {
	return property{PhoneNumber: &s}
}

func dateProp(t time.Time) property {
	return property{Date: &dateValue{Start: t.Format(time.RFC3339)}}
}

// MirrorConsult creates a workspace page for a stored consult record.
// Implements ports.WorkspaceMirror.
func (c *Client) MirrorConsult(ctx context.Context, rec *domain.ConsultRecord) error {
	page := pageRequest{
		Parent: pageParent{DatabaseID: c.consultDB},
		Properties: map[string]property{
			"이름":    titleProp(rec.Name),
			"연락처":   phoneProp(rec.Phone),
			"문의 내용": textProp(rec.Message),
			"상태":    selectProp(string(rec.Status)),
			"접수일":   dateProp(rec.CreatedAt),
		},
	}

	return c.createPage(ctx, &page, "consult", rec.ID)
}

// MirrorQuote creates a workspace page for a stored quote record.
// Implements ports.WorkspaceMirror.
func (c *Client) MirrorQuote(ctx context.Context, rec *domain.QuoteRecord) error {
	page := pageRequest{
		Parent: pageParent{DatabaseID: c.quoteDB},
		Properties: map[string]property{
			"이름":     titleProp(rec.Name),
			"견적번호":   textProp(rec.QuoteNumber),
			"이메일":    emailProp(rec.Email),
			"연락처":    phoneProp(rec.Phone),
			"의뢰인 구분": selectProp(string(rec.Role)),
			"상대방 구분": selectProp(string(rec.Counterparty)),
			"채권 금액":  selectProp(rec.Amount.Label()),
			"사건 개요":  textProp(rec.Summary),
			"상태":     selectProp(string(rec.Status)),
			"접수일":    dateProp(rec.CreatedAt),
		},
	}

	return c.createPage(ctx, &page, "quote", rec.ID)
}

// createPage posts a page payload and translates failures to domain errors.
func (c *Client) createPage(ctx context.Context, page *pageRequest, kind, recordID string) error {
	const path = "/v1/pages"

	body, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encoding %s page: %w", kind, err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", path),
		slog.String("record_id", recordID))

	resp, err := c.client.Post(ctx, path, bytes.NewReader(body))
	if err != nil {
		return domain.NewUnavailableError("workspace", err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	c.logger.DebugContext(ctx, "record mirrored to workspace",
		slog.String("kind", kind),
		slog.String("record_id", recordID))

	return nil
}

// handleErrorResponse converts HTTP error responses to domain errors.
func (c *Client) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	c.logger.Warn("workspace API error",
		slog.Int("status_code", resp.StatusCode),
		slog.String("body", string(body)),
	)

	return domain.NewUnavailableError("workspace", fmt.Sprintf("HTTP %d", resp.StatusCode))
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *Client) Name() string {
	return "workspace"
}

// Check performs a health check by querying the bot user endpoint.
// Implements ports.HealthChecker.
func (c *Client) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/v1/users/me")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("workspace API returned status %d", resp.StatusCode)
	}

	return nil
}
