// Package breaker wraps upstream API calls of the summarization service in
// a circuit breaker so a failing provider is not hammered by every request.
package breaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// ErrOpen is returned while the breaker rejects calls
var ErrOpen = gobreaker.ErrOpenState

// Settings tune the breaker; zero values get defaults
type Settings struct {
	Name string
	// ConsecutiveFailures trips the breaker
	ConsecutiveFailures uint32
	// Cooldown is how long the breaker stays open
	Cooldown time.Duration
	Logger   *slog.Logger
}

// Breaker guards calls to one upstream provider
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// New creates a breaker that opens after a run of consecutive failures
func New(s Settings) *Breaker {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 3
	}
	if s.Cooldown <= 0 {
		s.Cooldown = 30 * time.Second
	}
	threshold := s.ConsecutiveFailures
	logger := s.Logger

	return &Breaker{cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			}
		},
	})}
}

// isSuccessful does not hold a caller's cancellation or deadline against
// the upstream provider
func isSuccessful(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// State returns the breaker state ("closed", "half-open", "open")
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Do runs fn through the breaker
func Do[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	if b == nil {
		return fn()
	}
	result, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	value, ok := result.(T)
	if !ok {
		return zero, errors.New("breaker: unexpected result type")
	}
	return value, nil
}

// IsOpen reports whether err came from a rejecting breaker
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
