// Package store persists intake records in PostgreSQL.
//
// The store is the system of record for submissions. Writes happen before
// any downstream mirroring or delivery, so a failed insert aborts the
// whole intake.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/mhlegal/intake-service/internal/domain"
	"github.com/mhlegal/intake-service/internal/platform/config"
	"github.com/mhlegal/intake-service/internal/platform/logging"
)

const (
	insertConsultQuery = `
		INSERT INTO consult_requests (name, phone, message, status, client_ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	insertQuoteQuery = `
		INSERT INTO quote_requests (name, email, phone, role, counterparty, amount_bracket,
			summary, requested_tier, quote_number, status, client_ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
)

// Postgres implements the intake repository on top of database/sql.
type Postgres struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgres wraps an existing database handle.
// The caller owns the handle and its lifecycle.
func NewPostgres(db *sql.DB, logger *slog.Logger) *Postgres {
	if db == nil {
		panic("store: database handle is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Postgres{
		db:     db,
		logger: logger,
	}
}

// Open connects to PostgreSQL and applies the configured pool settings.
func Open(cfg config.StoreConfig, logger *slog.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return NewPostgres(db, logger), nil
}

// SaveConsult inserts a consultation record and returns the generated id.
func (p *Postgres) SaveConsult(ctx context.Context, rec *domain.ConsultRecord) (string, error) {
	start := time.Now()

	var id string

	err := p.db.QueryRowContext(ctx, insertConsultQuery,
		rec.Name,
		rec.Phone,
		rec.Message,
		string(rec.Status),
		rec.Meta.IP,
		rec.Meta.UserAgent,
		rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", domain.NewUnavailableError("postgres", fmt.Sprintf("inserting consult record: %v", err))
	}

	p.logger.Log(ctx, logging.LevelTrace, "consult record stored",
		slog.String("record_id", id),
		slog.Duration("duration", time.Since(start)),
	)

	return id, nil
}

// SaveQuote inserts a quote record and returns the generated id.
func (p *Postgres) SaveQuote(ctx context.Context, rec *domain.QuoteRecord) (string, error) {
	start := time.Now()

	var id string

	err := p.db.QueryRowContext(ctx, insertQuoteQuery,
		rec.Name,
		rec.Email,
		rec.Phone,
		string(rec.Role),
		string(rec.Counterparty),
		string(rec.Amount),
		rec.Summary,
		string(rec.RequestedTier),
		rec.QuoteNumber,
		string(rec.Status),
		rec.Meta.IP,
		rec.Meta.UserAgent,
		rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return "", domain.NewUnavailableError("postgres", fmt.Sprintf("inserting quote record: %v", err))
	}

	p.logger.Log(ctx, logging.LevelTrace, "quote record stored",
		slog.String("record_id", id),
		slog.String("quote_number", rec.QuoteNumber),
		slog.Duration("duration", time.Since(start)),
	)

	return id, nil
}

// Name identifies this adapter in health check responses.
func (p *Postgres) Name() string {
	return "postgres"
}

// Check reports database connectivity.
func (p *Postgres) Check(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
