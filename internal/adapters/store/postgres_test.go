package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhlegal/intake-service/internal/domain"
)

func setupStore(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPostgres(db, logger), mock
}

func storedConsult() *domain.ConsultRecord {
	return &domain.ConsultRecord{
		Name:      "김철수",
		Phone:     "010-9876-5432",
		Message:   "상담 요청",
		Status:    domain.StatusNew,
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		Meta:      domain.RequestMeta{IP: "203.0.113.7", UserAgent: "Mozilla/5.0"},
	}
}

func storedQuote() *domain.QuoteRecord {
	return &domain.QuoteRecord{
		Name:          "홍길동",
		Email:         "hong@example.com",
		Phone:         "010-1234-5678",
		Role:          domain.RoleCreditor,
		Counterparty:  domain.CounterpartyOrganization,
		Amount:        domain.Bracket10To30M,
		Summary:       "미수금 회수 문의",
		RequestedTier: domain.TierStandard,
		QuoteNumber:   "MH-20260102-042",
		Status:        domain.StatusNew,
		CreatedAt:     time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		Meta:          domain.RequestMeta{IP: "203.0.113.7", UserAgent: "Mozilla/5.0"},
	}
}

func TestNewPostgres_PanicsWithoutDB(t *testing.T) {
	assert.Panics(t, func() {
		NewPostgres(nil, slog.Default())
	})
}

func TestPostgres_SaveConsult(t *testing.T) {
	pg, mock := setupStore(t)
	rec := storedConsult()

	mock.ExpectQuery(`INSERT INTO consult_requests`).
		WithArgs(rec.Name, rec.Phone, rec.Message, "new", rec.Meta.IP, rec.Meta.UserAgent, rec.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("7c9e6679-7425-40de-944b-e07fc1f90ae7"))

	id, err := pg.SaveConsult(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveConsult_InsertFails(t *testing.T) {
	pg, mock := setupStore(t)

	mock.ExpectQuery(`INSERT INTO consult_requests`).
		WillReturnError(errors.New("connection refused"))

	id, err := pg.SaveConsult(context.Background(), storedConsult())
	require.Error(t, err)
	assert.Empty(t, id)
	assert.True(t, domain.IsUnavailable(err))
}

func TestPostgres_SaveQuote(t *testing.T) {
	pg, mock := setupStore(t)
	rec := storedQuote()

	mock.ExpectQuery(`INSERT INTO quote_requests`).
		WithArgs(rec.Name, rec.Email, rec.Phone, "creditor", "organization", "10to30M",
			rec.Summary, "standard", rec.QuoteNumber, "new", rec.Meta.IP, rec.Meta.UserAgent, rec.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("quote-id-1"))

	id, err := pg.SaveQuote(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "quote-id-1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveQuote_InsertFails(t *testing.T) {
	pg, mock := setupStore(t)

	mock.ExpectQuery(`INSERT INTO quote_requests`).
		WillReturnError(errors.New("deadlock detected"))

	id, err := pg.SaveQuote(context.Background(), storedQuote())
	require.Error(t, err)
	assert.Empty(t, id)
	assert.True(t, domain.IsUnavailable(err))
}

func TestPostgres_Name(t *testing.T) {
	pg, _ := setupStore(t)
	assert.Equal(t, "postgres", pg.Name())
}

func TestPostgres_Check(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	pg := NewPostgres(db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mock.ExpectPing()
	assert.NoError(t, pg.Check(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, pg.Check(context.Background()))
}
