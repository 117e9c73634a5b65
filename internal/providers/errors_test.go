package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{StatusCode: 429}
	if got := err.Error(); got != "provider rate limited (status=429)" {
		t.Fatalf("unexpected message %q", got)
	}

	err = &RateLimitError{Message: "slow down"}
	if got := err.Error(); got != "slow down" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsRateLimitError(t *testing.T) {
	inner := &RateLimitError{Provider: "espn", StatusCode: 429}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	rl, ok := AsRateLimitError(wrapped)
	if !ok || rl.Provider != "espn" {
		t.Fatalf("expected unwrapped rate limit error, got %v ok=%v", rl, ok)
	}

	if _, ok := AsRateLimitError(errors.New("boom")); ok {
		t.Fatalf("expected no rate limit error for generic error")
	}
}
