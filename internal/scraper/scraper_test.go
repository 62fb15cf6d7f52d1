package scraper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestParseSections(t *testing.T) {
	data, err := os.ReadFile("testdata/sample_release.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	sections, err := ParseSections(strings.NewReader(string(data)), "https://test.example.com")
	if err != nil {
		t.Fatalf("ParseSections failed: %v", err)
	}

	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}

	wantCounts := map[string]int{
		"Heart of America Athletic Conference": 3,
		"Cascade Conference":                   3,
		"Mid-South Conference":                 3,
		"Sooner Athletic Conference":           0,
	}
	for _, sec := range sections {
		want, ok := wantCounts[sec.Conference]
		if !ok {
			t.Errorf("unexpected conference %q", sec.Conference)
			continue
		}
		if len(sec.Standings) != want {
			t.Errorf("%s: got %d entries, want %d", sec.Conference, len(sec.Standings), want)
		}
	}
}

func TestParseSectionsMergesSplitHeading(t *testing.T) {
	data, err := os.ReadFile("testdata/sample_release.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	sections, err := ParseSections(strings.NewReader(string(data)), "https://test.example.com")
	if err != nil {
		t.Fatalf("ParseSections failed: %v", err)
	}

	for _, sec := range sections {
		if sec.Conference == "Cascade Conference" {
			return
		}
		if sec.Conference == "cade Conference" {
			t.Fatal("split heading fragment was not merged")
		}
	}
	t.Error("Cascade Conference section not found")
}

func TestParseSectionsIndividualRankingsStripped(t *testing.T) {
	data, err := os.ReadFile("testdata/sample_release.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	sections, err := ParseSections(strings.NewReader(string(data)), "https://test.example.com")
	if err != nil {
		t.Fatalf("ParseSections failed: %v", err)
	}

	for _, sec := range sections {
		if sec.Conference != "Mid-South Conference" {
			continue
		}
		for _, entry := range sec.Standings {
			if strings.Contains(entry.School, "Individual") || strings.Contains(entry.School, "Smith") {
				t.Errorf("individual rankings leaked into standings: %+v", entry)
			}
		}
		return
	}
	t.Error("Mid-South Conference section not found")
}

func TestParseSectionsNoHeadings(t *testing.T) {
	html := `<html><body><p>Nothing to see here.</p></body></html>`

	_, err := ParseSections(strings.NewReader(html), "https://test.example.com")
	if err == nil {
		t.Fatal("expected ParseError for page without conference headings")
	}

	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.URL != "https://test.example.com" {
		t.Errorf("ParseError.URL = %q", perr.URL)
	}
	if !strings.Contains(perr.RawText, "Nothing to see here.") {
		t.Errorf("ParseError.RawText = %q, want the page text for diagnosis", perr.RawText)
	}
}

func TestFetchStandings(t *testing.T) {
	data, err := os.ReadFile("testdata/sample_release.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Write(data)
	}))
	defer srv.Close()

	sections, err := New().FetchStandings(srv.URL)
	if err != nil {
		t.Fatalf("FetchStandings failed: %v", err)
	}
	if len(sections) != 4 {
		t.Errorf("got %d sections, want 4", len(sections))
	}
}

func TestFetchStandingsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New().FetchStandings(srv.URL)
	if err == nil {
		t.Fatal("expected FetchError for 404")
	}
	ferr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if ferr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", ferr.StatusCode)
	}
}
