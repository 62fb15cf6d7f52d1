package urlfinder

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adydas-lantern/naia-standings/internal/scraper"
)

// DefaultBase is the NAIA site root the candidate URLs are built against.
const DefaultBase = "https://www.naia.org"

var (
	seasonYearRe = regexp.MustCompile(`/(\d{4})-\d{2}/`)
	plainYearRe  = regexp.MustCompile(`/(\d{4})/`)
)

// Keywords that mark a page or link as standings-related.
var standingsKeywords = []string{
	"conference rating",
	"conference team",
	"standings",
	"team place",
}

var linkKeywords = []string{"rating", "standing", "conference", "team"}

// Finder probes for standings release pages.
type Finder struct {
	client *http.Client
	base   string
}

// New creates a Finder against the NAIA site.
func New() *Finder {
	return NewWithBase(DefaultBase)
}

// NewWithBase creates a Finder against an alternate site root.
func NewWithBase(base string) *Finder {
	return &Finder{
		client: &http.Client{Timeout: scraper.Timeout},
		base:   strings.TrimRight(base, "/"),
	}
}

// SeasonSlug converts a year to the NAIA season path segment
// ("2024" -> "2024-25").
func SeasonSlug(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// YearFromURL extracts the season year from a NAIA URL.
func YearFromURL(url string) (int, bool) {
	for _, re := range []*regexp.Regexp{seasonYearRe, plainYearRe} {
		if m := re.FindStringSubmatch(url); m != nil {
			var year int
			fmt.Sscanf(m[1], "%d", &year)
			return year, true
		}
	}
	return 0, false
}

// candidates returns the URL shapes the NAIA has published releases under
// for a season.
func (f *Finder) candidates(year int) []string {
	season := SeasonSlug(year)
	return []string{
		f.base + "/sports/mwrest/" + season + "/Releases/Conf",
		f.base + "/sports/mwrest/" + season + "/Releases/Conf_1",
		f.base + "/sports/mwrest/" + season + "/releases/conf",
		f.base + "/sports/mwrest/" + season + "/standings",
	}
}

// Probe tests each candidate release URL for a year and returns the ones
// whose pages carry standings data. Unreachable candidates are skipped.
func (f *Finder) Probe(year int) []string {
	var valid []string
	for _, url := range f.candidates(year) {
		doc, err := f.fetch(url)
		if err != nil {
			continue
		}
		if hasStandingsData(doc) {
			valid = append(valid, url)
		}
	}
	return valid
}

// ProbeRange probes every year in [start, end] and returns the valid URLs
// keyed by year. Years with no valid URL are absent from the map.
func (f *Finder) ProbeRange(start, end int) map[int][]string {
	results := make(map[int][]string)
	for year := start; year <= end; year++ {
		if urls := f.Probe(year); len(urls) > 0 {
			results[year] = urls
		}
	}
	return results
}

// Explore fetches a season landing page and returns the links whose anchor
// text suggests a standings page, with relative hrefs resolved.
func (f *Finder) Explore(baseURL string) ([]string, error) {
	doc, err := f.fetch(baseURL)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if href == "" || !containsAny(text, linkKeywords) {
			return
		}

		switch {
		case strings.HasPrefix(href, "/"):
			href = f.base + href
		case !strings.HasPrefix(href, "http"):
			href = strings.TrimRight(baseURL, "/") + "/" + href
		}
		links = append(links, href)
	})

	return links, nil
}

func (f *Finder) fetch(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scraper.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// hasStandingsData reports whether a page shows conference standings: either
// bold conference headings or standings keywords anywhere in the page text.
func hasStandingsData(doc *goquery.Document) bool {
	headings := doc.Find("strong").FilterFunction(func(i int, sel *goquery.Selection) bool {
		return strings.Contains(sel.Text(), "Conference")
	})
	if headings.Length() > 0 {
		return true
	}
	return containsAny(strings.ToLower(doc.Text()), standingsKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
