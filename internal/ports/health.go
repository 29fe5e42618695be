package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker reports a second registration under an existing name.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by every sink the intake pipeline writes to.
// The record store registers as "postgres", the mirror as "workspace", and
// the mailer as "smtp", so the readiness payload names the broken leg
// directly.
type HealthChecker interface {
	// Name uniquely identifies the sink in readiness responses.
	Name() string

	// Check reports nil when the sink is usable. Implementations must
	// honor the context deadline; the probe budget is shared.
	Check(ctx context.Context) error
}

// HealthRegistry fans a readiness query out to every registered sink.
type HealthRegistry interface {
	// Register adds a sink at startup. A name collision is an error.
	Register(checker HealthChecker) error

	// CheckAll runs every check concurrently under ctx and aggregates.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the overall readiness verdict.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult aggregates one readiness sweep across all sinks.
type HealthResult struct {
	Status HealthStatus `json:"status"`

	// Checks holds per-sink outcomes keyed by checker name.
	Checks map[string]*CheckResult `json:"checks"`

	Timestamp time.Time `json:"timestamp"`
}

// CheckResult is the outcome for a single sink.
type CheckResult struct {
	Status HealthStatus `json:"status"`

	// Message carries the failure detail staff see in the probe payload.
	Message string `json:"message,omitempty"`

	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is the concrete registry wired in main.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{
		checkers: make([]HealthChecker, 0),
	}
}

// Register adds a sink, rejecting duplicate names.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every sink check in its own goroutine and merges the
// results. One unhealthy sink makes the whole sweep unhealthy.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult),
		Timestamp: time.Now(),
	}

	if len(checkers) == 0 {
		return result
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, checker := range checkers {
		wg.Add(1)

		go func(c HealthChecker) {
			defer wg.Done()

			start := time.Now()
			err := c.Check(ctx)

			check := &CheckResult{
				Status:   HealthStatusHealthy,
				Duration: time.Since(start),
			}
			if err != nil {
				check.Status = HealthStatusUnhealthy
				check.Message = err.Error()
			}

			mu.Lock()
			result.Checks[c.Name()] = check
			if check.Status == HealthStatusUnhealthy {
				result.Status = HealthStatusUnhealthy
			}
			mu.Unlock()
		}(checker)
	}

	wg.Wait()

	return result
}
