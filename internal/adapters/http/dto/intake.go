package dto

import "github.com/mhlegal/intake-service/internal/domain"

// ConsultRequest is the POST body of the consultation form.
// No binding tags: the honeypot check must run before field validation,
// so binding failures cannot short-circuit it.
type ConsultRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Honeypot string `json:"website"`
}

// ToDomain converts the request into a domain submission.
func (r *ConsultRequest) ToDomain() *domain.ConsultSubmission {
	return &domain.ConsultSubmission{
		Name:     r.Name,
		Phone:    r.Phone,
		Message:  r.Message,
		Honeypot: r.Honeypot,
	}
}

// QuoteRequest is the POST body of the fee-quote form.
type QuoteRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	Counterparty     string `json:"counterparty"`
	Amount           string `json:"amount"`
	Summary          string `json:"summary"`
	RequestedService string `json:"requestedService"`
	Honeypot         string `json:"website"`
}

// ToDomain converts the request into a domain submission. Enum-ish fields
// pass through as opaque keys; the domain decides how to treat unknowns.
func (r *QuoteRequest) ToDomain() *domain.QuoteSubmission {
	return &domain.QuoteSubmission{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Role:          domain.Role(r.Role),
		Counterparty:  domain.Counterparty(r.Counterparty),
		Amount:        domain.AmountBracket(r.Amount),
		Summary:       r.Summary,
		RequestedTier: domain.ServiceTier(r.RequestedService),
		Honeypot:      r.Honeypot,
	}
}
