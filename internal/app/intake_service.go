// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/mhlegal/intake-service/internal/domain"
	"github.com/mhlegal/intake-service/internal/ports"
	"github.com/mhlegal/intake-service/internal/render"
)

// IntakeService orchestrates the submission pipeline: validate, persist,
// mirror, render, deliver. It depends on port interfaces, not concrete
// implementations, following the Dependency Inversion Principle.
//
// Sink ordering is fixed. Persistence is the system of record and must
// succeed before anything else runs. The workspace mirror is best effort.
// Delivery policy differs by form: the consult notice to the office is
// load-bearing, the quote document to the requester is best effort.
type IntakeService struct {
	repo        ports.IntakeRepository
	mirror      ports.WorkspaceMirror
	mailer      ports.Mailer
	logger      *slog.Logger
	officeEmail string
	now         func() time.Time
	quoteNumber func(time.Time) string

	renderNotice func(*domain.ConsultSubmission, time.Time) (string, error)
	renderQuote  func(*domain.QuoteSubmission, domain.FeeQuote, string) (string, error)
}

// IntakeServiceConfig contains configuration for the intake service.
// Mirror may be nil when no workspace is configured.
type IntakeServiceConfig struct {
	Repo        ports.IntakeRepository
	Mirror      ports.WorkspaceMirror
	Mailer      ports.Mailer
	Logger      *slog.Logger
	OfficeEmail string
}

// NewIntakeService creates a new intake service with the provided dependencies.
func NewIntakeService(cfg IntakeServiceConfig) *IntakeService {
	return &IntakeService{
		repo:        cfg.Repo,
		mirror:      cfg.Mirror,
		mailer:      cfg.Mailer,
		logger:      cfg.Logger,
		officeEmail: cfg.OfficeEmail,
		now:         time.Now,
		quoteNumber: domain.NewQuoteNumber,

		renderNotice: render.ConsultNotice,
		renderQuote:  render.Document,
	}
}

// Receipt is the outcome of an accepted submission.
// Discarded marks honeypot trips: the submission was silently dropped but
// the caller must still respond as if it succeeded.
type Receipt struct {
	ID          string
	QuoteNumber string
	Discarded   bool
}

// SubmitConsult handles a consultation request.
func (s *IntakeService) SubmitConsult(ctx context.Context, sub *domain.ConsultSubmission, meta domain.RequestMeta) (*Receipt, error) {
	if sub.HoneypotTripped() {
		s.logger.InfoContext(ctx, "honeypot tripped, discarding submission",
			slog.String("form", "consult"),
			slog.String("ip", meta.IP),
		)

		return &Receipt{Discarded: true}, nil
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	rec := domain.NewConsultRecord(sub, meta, now)

	id, err := s.repo.SaveConsult(ctx, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist consult",
			slog.Any("error", err),
		)

		return nil, err
	}

	rec.ID = id

	s.mirrorConsult(ctx, rec)

	body, err := s.renderNotice(sub, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render consult notice",
			slog.String("record_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	// The office notice is how staff learn about the request; a silent
	// delivery failure would strand the submitter, so it fails the intake.
	if err := s.mailer.Send(ctx, s.officeEmail, "신규 상담 신청: "+rec.Name, body); err != nil {
		s.logger.ErrorContext(ctx, "failed to deliver consult notice",
			slog.String("record_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "consult accepted",
		slog.String("record_id", id),
	)

	return &Receipt{ID: id}, nil
}

// SubmitQuote handles a fee quote request.
func (s *IntakeService) SubmitQuote(ctx context.Context, sub *domain.QuoteSubmission, meta domain.RequestMeta) (*Receipt, error) {
	if sub.HoneypotTripped() {
		s.logger.InfoContext(ctx, "honeypot tripped, discarding submission",
			slog.String("form", "quote"),
			slog.String("ip", meta.IP),
		)

		return &Receipt{Discarded: true}, nil
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	quoteNumber := s.quoteNumber(now)
	rec := domain.NewQuoteRecord(sub, quoteNumber, meta, now)

	id, err := s.repo.SaveQuote(ctx, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist quote",
			slog.String("quote_number", quoteNumber),
			slog.Any("error", err),
		)

		return nil, err
	}

	rec.ID = id

	s.mirrorQuote(ctx, rec)

	quote := domain.Price(sub.Amount, sub.Counterparty, sub.Role)

	// The record is already persisted and mirrored; once past that point
	// nothing downstream fails the intake. A render or delivery failure is
	// recoverable by staff follow-up, so both are logged and swallowed.
	body, err := s.renderQuote(sub, quote, quoteNumber)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to render quote document",
			slog.String("record_id", id),
			slog.String("quote_number", quoteNumber),
			slog.Any("error", err),
		)
	} else if err := s.mailer.Send(ctx, rec.Email, "채권추심 견적서 "+quoteNumber, body); err != nil {
		s.logger.WarnContext(ctx, "failed to deliver quote document",
			slog.String("record_id", id),
			slog.String("quote_number", quoteNumber),
			slog.Any("error", err),
		)
	}

	s.logger.InfoContext(ctx, "quote accepted",
		slog.String("record_id", id),
		slog.String("quote_number", quoteNumber),
	)

	return &Receipt{ID: id, QuoteNumber: quoteNumber}, nil
}

func (s *IntakeService) mirrorConsult(ctx context.Context, rec *domain.ConsultRecord) {
	if s.mirror == nil {
		return
	}

	if err := s.mirror.MirrorConsult(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "failed to mirror consult to workspace",
			slog.String("record_id", rec.ID),
			slog.Any("error", err),
		)
	}
}

func (s *IntakeService) mirrorQuote(ctx context.Context, rec *domain.QuoteRecord) {
	if s.mirror == nil {
		return
	}

	if err := s.mirror.MirrorQuote(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "failed to mirror quote to workspace",
			slog.String("record_id", rec.ID),
			slog.Any("error", err),
		)
	}
}
