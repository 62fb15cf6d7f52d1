package scraper

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/adydas-lantern/naia-standings/internal/standings"
)

const (
	UserAgent = "naia-standings/1.0 (github.com/adydas-lantern/naia-standings)"
	Timeout   = 30 * time.Second

	// Heading fragments shorter than this are treated as the severed front
	// half of a heading the site split across adjacent bold tags.
	maxFragmentLen = 10

	// Blocks shorter than this are headings or filler, not standings.
	minBlockLen = 10
)

// Scraper fetches and parses NAIA standings release pages.
type Scraper struct {
	client *http.Client
}

// New creates a new Scraper instance.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// FetchStandings fetches a release page and extracts its conference
// sections. A fetch failure or non-200 response returns a *FetchError; a
// page without conference headings returns a *ParseError.
func (s *Scraper) FetchStandings(url string) ([]standings.ConferenceSection, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	return ParseSections(resp.Body, url)
}

// ParseSections extracts conference sections from a release page. Each
// heading yields one section in document order; a heading whose standings
// block is empty or unparseable yields a section with zero standings.
func ParseSections(r io.Reader, sourceURL string) ([]standings.ConferenceSection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{URL: sourceURL}
	}

	var sections []standings.ConferenceSection

	headings := doc.Find("strong").FilterFunction(func(i int, sel *goquery.Selection) bool {
		return strings.Contains(sel.Text(), "Conference")
	})

	headings.Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Text())

		// The site sometimes splits a heading across two bold tags
		// ("Cas" + "cade Conference"); reattach the severed fragment.
		prev := sel.PrevAllFiltered("strong").First()
		if prev.Length() > 0 {
			prevText := strings.TrimSpace(prev.Text())
			if len(prevText) < maxFragmentLen && !strings.Contains(prevText, "Conference") {
				name = prevText + name
			}
		}

		sections = append(sections, standings.ConferenceSection{
			Conference: name,
			Standings:  standings.ParseBlock(blockText(sel)),
		})
	})

	if len(sections) == 0 {
		return nil, &ParseError{URL: sourceURL, RawText: strings.TrimSpace(doc.Text())}
	}

	return sections, nil
}

// blockText returns the standings text that follows a conference heading:
// the next paragraph after the heading's parent, minus any trailing
// individual-rankings copy. Returns "" when the block is missing, too short
// to hold standings, or is itself another heading.
func blockText(heading *goquery.Selection) string {
	parent := heading.Parent()

	block := parent.NextAllFiltered("p").First()
	if block.Length() == 0 {
		block = parent.NextAll().Find("p").First()
	}
	if block.Length() == 0 {
		return ""
	}

	text := strings.TrimSpace(block.Text())
	if strings.Contains(text, "Conference") || len(text) < minBlockLen {
		return ""
	}

	// "Individual Rankings" copy shares the paragraph on some releases.
	if idx := strings.Index(text, "Individual Rankings"); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}

	return text
}
