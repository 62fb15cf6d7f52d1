package standings

import (
	"regexp"
	"strings"
)

// Format identifies which of the known standings layouts a block of text
// uses. Detection is a fixed, ordered set of structural predicates so each
// layout can be exercised independently.
type Format int

const (
	// FormatNumbered is the older concatenated run format with no separator
	// punctuation between entries: "1 Grand View 2162 Missouri Valley 198...".
	FormatNumbered Format = iota

	// FormatDash is the list format "School - Score" with entries joined by
	// embedded scores: "Grand View (Iowa) - 216Missouri Valley - 198...".
	FormatDash

	// FormatTournament is the ranked list format "1. School - Score" where
	// the score may be a decimal (tie-broken tournament points).
	FormatTournament
)

func (f Format) String() string {
	switch f {
	case FormatNumbered:
		return "numbered"
	case FormatDash:
		return "dash"
	case FormatTournament:
		return "tournament"
	}
	return "unknown"
}

var rankedPrefixRe = regexp.MustCompile(`^\d+\.\s+\w+`)

// DetectFormat classifies a standings block. A " - " separator near the
// start of the text selects the dash family; within it, a leading "1. "
// rank marker selects the tournament layout. Anything else is treated as
// the numbered-concatenated run.
func DetectFormat(text string) Format {
	head := text
	if len(head) > 100 {
		head = head[:100]
	}
	if strings.Contains(head, " - ") {
		if rankedPrefixRe.MatchString(strings.TrimSpace(text)) {
			return FormatTournament
		}
		return FormatDash
	}
	return FormatNumbered
}
