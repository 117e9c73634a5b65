package providers

import "testing"

func TestResolveTimezone(t *testing.T) {
	if loc := ResolveTimezone(""); loc != nil {
		t.Fatalf("expected nil for empty tz")
	}
	if loc := ResolveTimezone("Not/AZone"); loc != nil {
		t.Fatalf("expected nil for invalid tz")
	}
	if loc := ResolveTimezone("America/New_York"); loc == nil {
		t.Fatalf("expected location for valid tz")
	}
}
