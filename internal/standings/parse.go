package standings

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Matches an integer or decimal score such as "216" or "164.5".
	scoreRe = regexp.MustCompile(`\d+\.?\d*`)

	// Splits tournament text on rank markers like "1. ", "2. ".
	rankMarkerRe = regexp.MustCompile(`\d+\.\s+`)

	// Matches one dash entry: "School Name - 216" or "School Name - 164.5".
	dashEntryRe = regexp.MustCompile(`^(.+?)\s*-\s*(\d+\.?\d*)$`)

	// Matches one numbered-run entry: school name followed by a 2-4 digit
	// score (a 4-digit run is the score fused with the next entry's rank).
	numberedEntryRe = regexp.MustCompile(`^(.+?)\s+(\d{2,4})$`)

	// Finds the boundary between a score and the next entry's school name
	// in the numbered-concatenated run.
	numberedBoundaryRe = regexp.MustCompile(`(\d)\s+([A-Z])`)
)

// ParseBlock parses one standings block into ordered entries, detecting
// which of the known layouts the block uses. Unparseable fragments are
// skipped rather than failing the whole block.
func ParseBlock(text string) []Entry {
	switch DetectFormat(text) {
	case FormatTournament:
		return parseTournament(text)
	case FormatDash:
		return parseDash(text)
	default:
		return parseNumbered(text)
	}
}

// parseTournament handles "1. School - Score 2. School - Score ...".
// Ranks are assigned sequentially from entry order; the published rank
// markers only delimit entries.
func parseTournament(text string) []Entry {
	var out []Entry
	for _, raw := range rankMarkerRe.Split(text, -1) {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		m := dashEntryRe.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		out = append(out, Entry{Rank: len(out) + 1, School: cleanSchoolName(m[1])})
	}
	return out
}

// parseDash handles "School1 - Score1School2 - Score2..." where scores run
// straight into the next school name. Splitting on the embedded scores
// leaves alternating school/score fragments.
func parseDash(text string) []Entry {
	var parts []string
	for _, p := range splitKeepingScores(text) {
		p = strings.TrimSpace(p)
		if p == "" || p == "-" {
			continue
		}
		parts = append(parts, p)
	}

	var out []Entry
	for i := 0; i+1 < len(parts); i += 2 {
		school := cleanSchoolName(parts[i])
		if school == "" {
			continue
		}
		out = append(out, Entry{Rank: len(out) + 1, School: school})
	}
	return out
}

// parseNumbered handles the concatenated run "1 School1 2162 School2 198...".
// A delimiter is inserted at each score/name boundary, then each fragment is
// read as "school score". The rank comes from the preceding bare-digit
// fragment when present, falling back to sequential order (the fused
// score+rank runs lose the explicit rank digit).
func parseNumbered(text string) []Entry {
	delimited := numberedBoundaryRe.ReplaceAllString(text, "$1||$2")

	var entries []string
	for _, e := range strings.Split(delimited, "||") {
		e = strings.TrimSpace(e)
		if e != "" {
			entries = append(entries, e)
		}
	}

	var out []Entry
	for i, entry := range entries {
		if isAllDigits(entry) {
			continue
		}
		m := numberedEntryRe.FindStringSubmatch(entry)
		if m == nil {
			continue
		}

		rank := len(out) + 1
		if i > 0 && isAllDigits(entries[i-1]) {
			if n, err := strconv.Atoi(entries[i-1]); err == nil {
				rank = n
			}
		}
		out = append(out, Entry{Rank: rank, School: cleanSchoolName(m[1])})
	}
	return out
}

// splitKeepingScores splits text around score runs, keeping the scores as
// their own elements so callers can consume school/score pairs.
func splitKeepingScores(text string) []string {
	var parts []string
	last := 0
	for _, loc := range scoreRe.FindAllStringIndex(text, -1) {
		parts = append(parts, text[last:loc[0]], text[loc[0]:loc[1]])
		last = loc[1]
	}
	parts = append(parts, text[last:])
	return parts
}

// cleanSchoolName trims whitespace and the trailing score separator from an
// extracted school name.
func cleanSchoolName(s string) string {
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), " -"))
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
