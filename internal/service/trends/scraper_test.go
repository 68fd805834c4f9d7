package trends

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestExtractTag(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain hashtag", "#GoLang", "#golang"},
		{"surrounding whitespace", "  #fyp  ", "#fyp"},
		{"not a hashtag", "trending now", ""},
		{"bare hash", "#", ""},
		{"multiple words", "#tag with text", ""},
		{"too long", "#" + string(make([]byte, 70)), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractTag(tc.input); got != tc.expected {
				t.Errorf("extractTag(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestScrapePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<ul>
				<li><a href="/t/1">#summervibes</a></li>
				<li><a href="/t/2">#foodie</a></li>
				<li><a href="/t/2b">#foodie</a></li>
				<li><span>not a tag</span></li>
				<li><a href="/t/3">#traveldiary</a></li>
			</ul>
		</body></html>`)
	}))
	defer server.Close()

	s := NewScraperService(map[string]string{"instagram": server.URL}, nil, zap.NewNop())

	tags, err := s.scrapePage(context.Background(), "instagram", server.URL)
	if err != nil {
		t.Fatalf("scrapePage returned error: %v", err)
	}

	if len(tags) != 3 {
		t.Fatalf("got %d tags, want 3 (deduplicated)", len(tags))
	}
	if tags[0].Tag != "#summervibes" || tags[0].Rank != 1 {
		t.Errorf("first tag = %+v, want #summervibes rank 1", tags[0])
	}
	if tags[2].Tag != "#traveldiary" || tags[2].Rank != 3 {
		t.Errorf("third tag = %+v, want #traveldiary rank 3", tags[2])
	}
	for _, tag := range tags {
		if tag.Platform != "instagram" {
			t.Errorf("tag platform = %q, want instagram", tag.Platform)
		}
	}
}

func TestScrapePageStructureChanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer server.Close()

	s := NewScraperService(map[string]string{"x": server.URL}, nil, zap.NewNop())

	_, err := s.scrapePage(context.Background(), "x", server.URL)
	if err == nil {
		t.Fatal("expected error for page without hashtags")
	}
	if !IsStructureError(err) {
		t.Errorf("expected structure error, got %T: %v", err, err)
	}
}

func TestFetchPlatformUnknown(t *testing.T) {
	s := NewScraperService(map[string]string{}, nil, zap.NewNop())

	if _, err := s.FetchPlatform(context.Background(), "myspace"); err == nil {
		t.Fatal("expected error for unconfigured platform")
	}
}

func TestPlatformsSorted(t *testing.T) {
	s := NewScraperService(map[string]string{
		"tiktok":    "http://example.com/t",
		"instagram": "http://example.com/i",
	}, nil, zap.NewNop())

	platforms := s.Platforms()
	if len(platforms) != 2 || platforms[0] != "instagram" || platforms[1] != "tiktok" {
		t.Errorf("Platforms() = %v, want [instagram tiktok]", platforms)
	}
}
