package cache

import (
	"testing"
	"time"
)

func TestTTLGetSet(t *testing.T) {
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	c := newTTL[string](10*time.Minute, func() time.Time { return now })

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss for absent key")
	}

	c.Set("news", "cached")
	got, ok := c.Get("news")
	if !ok || got != "cached" {
		t.Fatalf("expected cached value, got %q ok=%v", got, ok)
	}
}

func TestTTLExpiry(t *testing.T) {
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	c := newTTL[int](10*time.Minute, func() time.Time { return now })

	c.Set("k", 42)

	now = now.Add(9 * time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestTTLInvalidate(t *testing.T) {
	c := NewTTL[int](time.Hour)
	c.Set("k", 1)
	c.Invalidate("k")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after invalidate")
	}
}
