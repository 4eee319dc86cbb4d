package breaker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDo_PassesThrough(t *testing.T) {
	b := New(Settings{Name: "test"})

	got, err := Do(b, func() (string, error) { return "ok", nil })
	if err != nil || got != "ok" {
		t.Fatalf("Do() = %q, %v", got, err)
	}

	boom := errors.New("boom")
	if _, err := Do(b, func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("Do() error = %v, want %v", err, boom)
	}
}

func TestDo_OpensAfterConsecutiveFailures(t *testing.T) {
	b := New(Settings{Name: "test", ConsecutiveFailures: 2, Cooldown: time.Hour})
	fail := func() (string, error) { return "", errors.New("upstream down") }

	_, _ = Do(b, fail)
	_, _ = Do(b, fail)

	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	called := false
	_, err := Do(b, func() (string, error) {
		called = true
		return "", nil
	})
	if !IsOpen(err) {
		t.Errorf("expected open breaker error, got %v", err)
	}
	if called {
		t.Error("open breaker must not run the call")
	}
}

func TestDo_NilBreaker(t *testing.T) {
	got, err := Do(nil, func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Errorf("Do(nil) = %d, %v", got, err)
	}
}

func TestDo_ContextErrorsDoNotTrip(t *testing.T) {
	b := New(Settings{Name: "test", ConsecutiveFailures: 2, Cooldown: time.Hour})

	errs := []error{
		context.Canceled,
		fmt.Errorf("transcribe: %w", context.DeadlineExceeded),
		context.Canceled,
	}
	for _, want := range errs {
		_, err := Do(b, func() (string, error) { return "", want })
		if !errors.Is(err, want) {
			t.Errorf("Do() error = %v, want %v", err, want)
		}
	}

	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}
