// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import "net/http"

// Error codes surfaced to API callers. Callers never see internal error
// details, only one of these coarse codes.
const (
	// ErrorCodeInvalidInput indicates a required field was missing or empty.
	ErrorCodeInvalidInput = "INVALID_INPUT"

	// ErrorCodeServerError indicates persistence or delivery failed.
	ErrorCodeServerError = "SERVER_ERROR"
)

// IntakeResponse is the single response envelope for the intake API.
// Success carries the stored record id (and quote number for quote
// submissions); failure carries only a short error code.
type IntakeResponse struct {
	OK          bool   `json:"ok"`
	ID          string `json:"id,omitempty"`
	QuoteNumber string `json:"quoteNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// NewAcceptedResponse builds the success envelope for a consult submission.
func NewAcceptedResponse(id string) *IntakeResponse {
	return &IntakeResponse{OK: true, ID: id}
}

// NewQuoteAcceptedResponse builds the success envelope for a quote submission.
func NewQuoteAcceptedResponse(id, quoteNumber string) *IntakeResponse {
	return &IntakeResponse{OK: true, ID: id, QuoteNumber: quoteNumber}
}

// NewErrorResponse builds the failure envelope for the given error code.
func NewErrorResponse(code string) *IntakeResponse {
	return &IntakeResponse{OK: false, Error: code}
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	if code == ErrorCodeInvalidInput {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
