package roster

import "strings"

// MatchResult is the outcome of resolving a scraped school name against the
// roster. Index is the first matching record in file order, or -1 when the
// name is new. Ambiguous lists any later records that also matched; the
// first match is still the one applied.
type MatchResult struct {
	Index     int
	Ambiguous []string
}

// Found reports whether the name resolved to an existing record.
func (m MatchResult) Found() bool {
	return m.Index >= 0
}

// Resolve matches a scraped school name against the roster. A record matches
// when either lowercased name contains the other (release pages abbreviate
// inconsistently: "Life University" must find "Life (Ga.) - Mens" and vice
// versa). Ties between multiple containing records are broken by file order.
func Resolve(parsed string, records []SchoolRecord) MatchResult {
	result := MatchResult{Index: -1}
	parsedLower := strings.ToLower(parsed)

	for i, rec := range records {
		recLower := strings.ToLower(rec.School)
		if !strings.Contains(recLower, parsedLower) && !strings.Contains(parsedLower, recLower) {
			continue
		}
		if result.Index < 0 {
			result.Index = i
		} else {
			result.Ambiguous = append(result.Ambiguous, rec.School)
		}
	}

	return result
}
