// Package clients provides the retrying HTTP client used to reach the
// team workspace API.
package clients

import "errors"

// Infrastructure-level failures. The workspace adapter translates these
// into domain errors before they reach the intake pipeline.
var (
	// ErrCircuitOpen means the breaker is rejecting calls while the
	// workspace API recovers.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error once the
	// retry schedule is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
