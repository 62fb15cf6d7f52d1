package scraper

import "fmt"

// FetchError reports an unreachable page or a non-success response. Fetch
// failures are terminal for that URL; there is no automatic retry.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a fetched page with no recognizable conference heading.
// RawText carries the page text so the operator can diagnose a new layout.
type ParseError struct {
	URL     string
	RawText string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no conference headings found on %s", e.URL)
}
