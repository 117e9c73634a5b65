package newsfeed

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const pageBody = `<html><body>
<ul class="PlayerNewsModuleList-items">
	<li class="PlayerNewsModuleList-item">
		<div class="PlayerNewsPost-headline"><a href="#">Jane Doe</a> erupts for 41 points</div>
		<div class="PlayerNewsPost-analysis">Keep starting her every night.</div>
		<div class="PlayerNewsPost-date">2 hours ago</div>
		<div class="PlayerNewsPost-team-abbr">BOS</div>
	</li>
	<li class="PlayerNewsModuleList-item">
		<div class="PlayerNewsPost-headline">John Roe questionable for Friday</div>
		<div class="PlayerNewsPost-story">Roe is dealing with a sore ankle.</div>
		<div class="PlayerNewsPost-date">5 hours ago</div>
		<div class="PlayerNewsPost-team-abbr">XYZ</div>
	</li>
	<li class="PlayerNewsModuleList-item">
		<div class="PlayerNewsPost-headline"><a href="#">A Duo</a><a href="#">Second Star</a> traded</div>
	</li>
</ul>
</body></html>`

func newsClient(t *testing.T, body string, status int) *Client {
	t.Helper()
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get("User-Agent") == "" {
			t.Fatalf("expected user agent header")
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})
	return NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
}

func TestFetchNewsParsesItems(t *testing.T) {
	client := newsClient(t, pageBody, http.StatusOK)

	feed, err := client.FetchNews(context.Background(), 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(feed.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(feed.Items))
	}

	first := feed.Items[0]
	if first.Player != "Jane Doe" {
		t.Fatalf("expected linked player name, got %q", first.Player)
	}
	if first.Headline != "Jane Doe erupts for 41 points" {
		t.Fatalf("unexpected headline %q", first.Headline)
	}
	if first.Report != "Keep starting her every night." {
		t.Fatalf("unexpected report %q", first.Report)
	}
	if first.Team != "Boston Celtics" {
		t.Fatalf("expected expanded team name, got %q", first.Team)
	}
	if first.Date != "2 hours ago" {
		t.Fatalf("unexpected date %q", first.Date)
	}

	second := feed.Items[1]
	if second.Player != "John Roe" {
		t.Fatalf("expected name from headline fallback, got %q", second.Player)
	}
	if second.Report != "Roe is dealing with a sore ankle." {
		t.Fatalf("expected story fallback, got %q", second.Report)
	}
	if second.Team != "XYZ" {
		t.Fatalf("expected unknown abbrev passthrough, got %q", second.Team)
	}

	if feed.Items[2].Player != "A Duo; Second Star" {
		t.Fatalf("expected joined player names, got %q", feed.Items[2].Player)
	}
}

func TestFetchNewsRespectsLimit(t *testing.T) {
	client := newsClient(t, pageBody, http.StatusOK)

	feed, err := client.FetchNews(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(feed.Items))
	}
}

func TestFetchNewsMissingListErrors(t *testing.T) {
	client := newsClient(t, "<html><body><p>redesigned</p></body></html>", http.StatusOK)

	if _, err := client.FetchNews(context.Background(), 10); err == nil {
		t.Fatal("expected error when news list is absent")
	}
}

func TestFetchNewsNon200(t *testing.T) {
	client := newsClient(t, "oops", http.StatusServiceUnavailable)

	if _, err := client.FetchNews(context.Background(), 10); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestLeadingName(t *testing.T) {
	cases := map[string]string{
		"Jane Doe scores 40":     "Jane Doe",
		"lowercase start here":   "Unknown Player",
		"The Jane Doe situation": "Jane Doe",
		"Solo with 20 boards":    "Solo",
	}
	for headline, want := range cases {
		if got := leadingName(headline); got != want {
			t.Fatalf("leadingName(%q) = %q, want %q", headline, got, want)
		}
	}
}
