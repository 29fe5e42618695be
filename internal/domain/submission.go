package domain

import (
	"strings"
	"time"
)

// Role identifies which side of a debt the requester is on.
type Role string

// Roles accepted on the quote entry point.
const (
	RoleCreditor Role = "creditor"
	RoleDebtor   Role = "debtor"
)

// Counterparty identifies the kind of party on the other side of the case.
type Counterparty string

// Counterparty kinds. Organization cases carry a pricing surcharge.
const (
	CounterpartyIndividual   Counterparty = "individual"
	CounterpartyOrganization Counterparty = "organization"
)

// ServiceTier is the service package a requester may pre-select.
type ServiceTier string

// Service tiers offered on the quote form.
const (
	TierStart    ServiceTier = "start"
	TierStandard ServiceTier = "standard"
	TierPackage  ServiceTier = "package"
)

// AmountBracket is an opaque key for one of the fixed principal-amount bands.
// The keys stand in for the Korean range labels shown on the public form;
// Label returns the display form.
type AmountBracket string

// The closed set of amount brackets. Values outside this set are
// tolerated and priced at the default base fee.
const (
	BracketUnder5M AmountBracket = "under5M"
	Bracket5To10M  AmountBracket = "5to10M"
	Bracket10To30M AmountBracket = "10to30M"
	Bracket30To50M AmountBracket = "30to50M"
	BracketOver50M AmountBracket = "over50M"
)

// bracketLabels holds the human-readable Korean range labels.
var bracketLabels = map[AmountBracket]string{
	BracketUnder5M: "500만원 미만",
	Bracket5To10M:  "500만원 ~ 1,000만원",
	Bracket10To30M: "1,000만원 ~ 3,000만원",
	Bracket30To50M: "3,000만원 ~ 5,000만원",
	BracketOver50M: "5,000만원 이상",
}

// Label returns the display label for the bracket, or the raw key when the
// bracket is not one of the defined bands.
func (b AmountBracket) Label() string {
	if label, ok := bracketLabels[b]; ok {
		return label
	}

	return string(b)
}

// RequestMeta captures transport-level metadata persisted with each record.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// ConsultSubmission is a consultation request from the public contact form.
type ConsultSubmission struct {
	Name    string
	Phone   string
	Message string

	// Honeypot is the hidden form field. Humans leave it empty;
	// a non-empty value marks the submission as automated.
	Honeypot string
}

// HoneypotTripped reports whether the hidden anti-automation field was filled.
func (s *ConsultSubmission) HoneypotTripped() bool {
	return strings.TrimSpace(s.Honeypot) != ""
}

// Validate checks required fields after trimming. No other normalization
// is performed.
func (s *ConsultSubmission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}

	if strings.TrimSpace(s.Phone) == "" {
		return NewValidationError("phone", "must not be empty")
	}

	return nil
}

// QuoteSubmission is a fee-quote request from the public quote form.
type QuoteSubmission struct {
	Name          string
	Email         string
	Phone         string
	Role          Role
	Counterparty  Counterparty
	Amount        AmountBracket
	Summary       string
	RequestedTier ServiceTier
	Honeypot      string
}

// HoneypotTripped reports whether the hidden anti-automation field was filled.
func (s *QuoteSubmission) HoneypotTripped() bool {
	return strings.TrimSpace(s.Honeypot) != ""
}

// Validate checks required fields after trimming. Enum-ish fields such as
// the amount bracket are deliberately not validated here: pricing resolves
// unknown brackets to a defensive default instead of rejecting them.
func (s *QuoteSubmission) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}

	if strings.TrimSpace(s.Phone) == "" {
		return NewValidationError("phone", "must not be empty")
	}

	if strings.TrimSpace(s.Email) == "" {
		return NewValidationError("email", "must not be empty")
	}

	return nil
}

// RecordStatus is the workflow state of a persisted record.
// Transitions past "new" belong to the downstream ops process, not this core.
type RecordStatus string

// StatusNew is the initial status of every accepted record.
const StatusNew RecordStatus = "new"

// ConsultRecord is the persisted form of an accepted consultation request.
type ConsultRecord struct {
	ID        string
	Name      string
	Phone     string
	Message   string
	Status    RecordStatus
	CreatedAt time.Time
	Meta      RequestMeta
}

// NewConsultRecord builds the record persisted for a validated consultation.
func NewConsultRecord(s *ConsultSubmission, meta RequestMeta, now time.Time) *ConsultRecord {
	return &ConsultRecord{
		Name:      strings.TrimSpace(s.Name),
		Phone:     strings.TrimSpace(s.Phone),
		Message:   strings.TrimSpace(s.Message),
		Status:    StatusNew,
		CreatedAt: now,
		Meta:      meta,
	}
}

// QuoteRecord is the persisted form of an accepted quote request.
// Created once per submission; never mutated by this core.
type QuoteRecord struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Role          Role
	Counterparty  Counterparty
	Amount        AmountBracket
	Summary       string
	RequestedTier ServiceTier
	QuoteNumber   string
	Status        RecordStatus
	CreatedAt     time.Time
	Meta          RequestMeta
}

// NewQuoteRecord builds the record persisted for a validated quote request.
func NewQuoteRecord(s *QuoteSubmission, quoteNumber string, meta RequestMeta, now time.Time) *QuoteRecord {
	return &QuoteRecord{
		Name:          strings.TrimSpace(s.Name),
		Email:         strings.TrimSpace(s.Email),
		Phone:         strings.TrimSpace(s.Phone),
		Role:          s.Role,
		Counterparty:  s.Counterparty,
		Amount:        s.Amount,
		Summary:       strings.TrimSpace(s.Summary),
		RequestedTier: s.RequestedTier,
		QuoteNumber:   quoteNumber,
		Status:        StatusNew,
		CreatedAt:     now,
		Meta:          meta,
	}
}
