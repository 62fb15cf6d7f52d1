package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Ledger is the persisted set of already-scraped release URLs. It exists so
// a release is never ingested twice: re-running the scraper against a
// processed URL would double-apply nothing (the upsert overwrites), but it
// would re-append any schools the matcher failed to resolve.
type Ledger struct {
	path string
	urls map[string]bool
}

// ledgerFile is the on-disk shape of the ledger.
type ledgerFile struct {
	URLs []string `json:"urls"`
}

// LoadLedger reads the ledger from path. A missing file yields an empty
// ledger; that is the normal first-run state.
func LoadLedger(path string) (*Ledger, error) {
	l := &Ledger{path: path, urls: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var file ledgerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing ledger: %w", err)
	}
	for _, url := range file.URLs {
		l.urls[url] = true
	}
	return l, nil
}

// IsProcessed reports whether url has already been scraped.
func (l *Ledger) IsProcessed(url string) bool {
	return l.urls[url]
}

// MarkProcessed records url as scraped. Call Save to persist.
func (l *Ledger) MarkProcessed(url string) {
	l.urls[url] = true
}

// Clear drops all recorded URLs. Call Save to persist.
func (l *Ledger) Clear() {
	l.urls = make(map[string]bool)
}

// URLs returns the recorded URLs in sorted order.
func (l *Ledger) URLs() []string {
	out := make([]string, 0, len(l.urls))
	for url := range l.urls {
		out = append(out, url)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of recorded URLs.
func (l *Ledger) Len() int {
	return len(l.urls)
}

// Save writes the ledger back to its file, replacing it wholesale.
func (l *Ledger) Save() error {
	data, err := json.MarshalIndent(ledgerFile{URLs: l.URLs()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}
