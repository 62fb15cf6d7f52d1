package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/adydas-lantern/naia-standings/internal/roster"
	"github.com/adydas-lantern/naia-standings/internal/standings"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ScrapeResult contains the outcome of one scrape run.
type ScrapeResult struct {
	URL      string                         `json:"url"`
	Year     int                            `json:"year"`
	DryRun   bool                           `json:"dry_run,omitempty"`
	Sections []standings.ConferenceSection  `json:"sections"`
	Report   *roster.ApplyReport            `json:"report"`
}

// WriteScrapeResult writes the result in the specified format.
func WriteScrapeResult(w io.Writer, result *ScrapeResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs the result as human-readable text.
func writeText(w io.Writer, result *ScrapeResult, verbose bool) error {
	fmt.Fprintf(w, "Scraped %s (%d)\n", result.URL, result.Year)

	for _, sec := range result.Sections {
		fmt.Fprintf(w, "  %s: %d schools\n", sec.Conference, len(sec.Standings))
		if verbose {
			for _, entry := range sec.Standings {
				fmt.Fprintf(w, "    %d. %s\n", entry.Rank, entry.School)
			}
		}
	}

	r := result.Report
	fmt.Fprintf(w, "\nUpdated %d schools, added %d", r.Updated, len(r.Added))
	if result.DryRun {
		fmt.Fprint(w, " (dry run, nothing written)")
	}
	fmt.Fprintln(w)

	for _, name := range r.Added {
		fmt.Fprintf(w, "  NEW: %s\n", name)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  AMBIGUOUS: %q matched %q (also: %v)\n", warn.Parsed, warn.Applied, warn.Also)
	}

	return nil
}
