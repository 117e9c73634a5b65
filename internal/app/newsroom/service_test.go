package newsroom

import (
	"context"
	"errors"
	"testing"

	"fantasy-intel-service/internal/domain/news"
	"fantasy-intel-service/internal/providers"
	"fantasy-intel-service/internal/teststubs"
)

func TestLatestPassesLimitThrough(t *testing.T) {
	stub := &teststubs.StubNewsProvider{Feed: news.Feed{Items: []news.Item{{Headline: "h"}}}}
	svc := NewService(stub, 25)

	feed, err := svc.Latest(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("expected stub feed, got %+v", feed)
	}
	if stub.Calls.Load() != 1 {
		t.Fatalf("expected one provider call, got %d", stub.Calls.Load())
	}
}

func TestLatestDefaultsLimit(t *testing.T) {
	stub := &teststubs.StubNewsProvider{}
	svc := NewService(stub, 0)

	if _, err := svc.Latest(context.Background(), 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if svc.defaultLimit != 25 {
		t.Fatalf("expected fallback default limit, got %d", svc.defaultLimit)
	}
}

func TestLatestSurfacesProviderError(t *testing.T) {
	stub := &teststubs.StubNewsProvider{Err: errors.New("scrape failed")}
	svc := NewService(stub, 25)

	if _, err := svc.Latest(context.Background(), 5); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestLatestWithoutProvider(t *testing.T) {
	svc := NewService(nil, 25)

	if _, err := svc.Latest(context.Background(), 5); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
