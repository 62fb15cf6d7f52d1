package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adydas-lantern/naia-standings/internal/roster"
	"github.com/adydas-lantern/naia-standings/internal/standings"
)

func sampleResult() *ScrapeResult {
	return &ScrapeResult{
		URL:  "https://www.naia.org/sports/mwrest/2024-25/Releases/Conf",
		Year: 2025,
		Sections: []standings.ConferenceSection{
			{Conference: "Heart of America Athletic Conference", Standings: []standings.Entry{
				{Rank: 1, School: "Grand View (Iowa)"},
				{Rank: 2, School: "Missouri Valley"},
			}},
			{Conference: "Sooner Athletic Conference"},
		},
		Report: &roster.ApplyReport{
			Year:        2025,
			Conferences: 2,
			Updated:     1,
			Added:       []string{"Missouri Valley - Mens"},
			Warnings: []roster.MatchWarning{
				{Parsed: "Grand View", Applied: "Grand View (Iowa) - Mens", Also: []string{"Grand View Prep - Mens"}},
			},
		},
	}
}

func TestWriteScrapeResultText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScrapeResult(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteScrapeResult failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Heart of America Athletic Conference: 2 schools",
		"Sooner Athletic Conference: 0 schools",
		"Updated 1 schools, added 1",
		"NEW: Missouri Valley - Mens",
		"AMBIGUOUS:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteScrapeResultTextVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScrapeResult(&buf, sampleResult(), FormatText, true); err != nil {
		t.Fatalf("WriteScrapeResult failed: %v", err)
	}
	if !strings.Contains(buf.String(), "1. Grand View (Iowa)") {
		t.Errorf("verbose output missing per-school lines:\n%s", buf.String())
	}
}

func TestWriteScrapeResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScrapeResult(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteScrapeResult failed: %v", err)
	}

	var decoded ScrapeResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Year != 2025 || len(decoded.Sections) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Report == nil || decoded.Report.Updated != 1 {
		t.Errorf("report = %+v", decoded.Report)
	}
}

func TestWriteScrapeResultUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScrapeResult(&buf, sampleResult(), OutputFormat("yaml"), false); err == nil {
		t.Error("expected error for unknown format")
	}
}
