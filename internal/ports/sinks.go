// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Accept and return domain types, never external DTOs
//   - Error returns use domain error types (ErrValidation, ErrUnavailable)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/mhlegal/intake-service/internal/domain"
)

// IntakeRepository persists accepted submissions. It is the system of record:
// a save failure fails the whole intake, no downstream sink runs after it.
type IntakeRepository interface {
	// SaveConsult stores a consult record and returns its assigned identifier.
	// Returns a domain.UnavailableError when the store is unreachable.
	SaveConsult(ctx context.Context, rec *domain.ConsultRecord) (string, error)

	// SaveQuote stores a quote record and returns its assigned identifier.
	// Returns a domain.UnavailableError when the store is unreachable.
	SaveQuote(ctx context.Context, rec *domain.QuoteRecord) (string, error)
}

// WorkspaceMirror copies accepted submissions into the shared team workspace
// so staff can triage without database access. Mirroring is best effort:
// callers log mirror errors and continue.
type WorkspaceMirror interface {
	// MirrorConsult creates a workspace entry for a stored consult record.
	MirrorConsult(ctx context.Context, rec *domain.ConsultRecord) error

	// MirrorQuote creates a workspace entry for a stored quote record.
	MirrorQuote(ctx context.Context, rec *domain.QuoteRecord) error
}

// Mailer delivers rendered HTML email. Implementations should respect the
// context deadline; the message body is a complete standalone document.
type Mailer interface {
	// Send delivers htmlBody to a single recipient.
	// Returns a domain.UnavailableError when the mail relay is unreachable.
	Send(ctx context.Context, to, subject, htmlBody string) error
}
