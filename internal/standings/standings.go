package standings

// Entry is a single team placement within a conference standings block.
type Entry struct {
	Rank   int    `json:"rank"`
	School string `json:"school"`
}

// ConferenceSection holds the parsed standings that follow one conference
// heading on a release page. A section with no entries is valid: it records
// a heading whose standings block was empty or unparseable.
type ConferenceSection struct {
	Conference string  `json:"conference"`
	Standings  []Entry `json:"standings"`
}

// TotalEntries returns the number of entries across all sections.
func TotalEntries(sections []ConferenceSection) int {
	n := 0
	for _, sec := range sections {
		n += len(sec.Standings)
	}
	return n
}
