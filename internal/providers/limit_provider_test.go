package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"fantasy-intel-service/internal/teststubs"
)

func TestRateLimitedProviderBlocksUntilTick(t *testing.T) {
	inner := &teststubs.StubLeagueProvider{}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	start := time.Now()
	if _, err := rl.FetchLeague(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 5*time.Millisecond {
		t.Fatalf("expected call to wait for ticker, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubLeagueProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchLeague(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner LeagueProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)

	_, err := rl.FetchLeague(context.Background())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&teststubs.StubLeagueProvider{}, 0, nil).(*rateLimitedProvider)
	if rl.interval != time.Minute {
		t.Fatalf("expected default interval 1m, got %s", rl.interval)
	}
	rl.Close()
}
