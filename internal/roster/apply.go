package roster

import (
	"fmt"

	"github.com/adydas-lantern/naia-standings/internal/standings"
)

// MatchWarning records an ambiguous name resolution. The first match was
// applied; Also lists the other roster names that contained the parsed name.
type MatchWarning struct {
	Parsed  string   `json:"parsed"`
	Applied string   `json:"applied"`
	Also    []string `json:"also"`
}

// ApplyReport summarizes one ApplyStandings run.
type ApplyReport struct {
	Year        int            `json:"year"`
	Conferences int            `json:"conferences"`
	Updated     int            `json:"updated"`
	Added       []string       `json:"added,omitempty"`
	Warnings    []MatchWarning `json:"warnings,omitempty"`
}

// ApplyStandings upserts parsed conference standings into a copy of the
// roster and returns it with a report of what changed. The input roster is
// not modified. Every school name resolves against the pre-batch records,
// so additions made earlier in the same batch never influence later
// matches. Places for the target year are overwritten, last write wins.
func ApplyStandings(r *Roster, year int, sections []standings.ConferenceSection) (*Roster, *ApplyReport, error) {
	if !r.HasYear(year) {
		return nil, nil, fmt.Errorf("roster has no place column for year %d", year)
	}

	out := r.Clone()
	report := &ApplyReport{Year: year, Conferences: len(sections)}
	snapshot := len(r.Records)

	for _, sec := range sections {
		for _, entry := range sec.Standings {
			match := Resolve(entry.School, out.Records[:snapshot])

			if !match.Found() {
				rec := newRecord(r, entry.School, sec.Conference)
				rec.Places[year] = entry.Rank
				out.Records = append(out.Records, rec)
				report.Added = append(report.Added, rec.School)
				continue
			}

			out.Records[match.Index].Places[year] = entry.Rank
			report.Updated++

			if len(match.Ambiguous) > 0 {
				report.Warnings = append(report.Warnings, MatchWarning{
					Parsed:  entry.School,
					Applied: out.Records[match.Index].School,
					Also:    match.Ambiguous,
				})
			}
		}
	}

	return out, report, nil
}

// newRecord builds a record for a school seen for the first time.
func newRecord(r *Roster, school, conference string) SchoolRecord {
	rec := SchoolRecord{
		CollegeDivision: CollegeDivision,
		School:          school + GenderSuffix,
		Conference:      conference,
		Places:          make(map[int]int),
	}
	if r.MultiSport {
		rec.Sport = DefaultSport
		rec.Division = DefaultDivision
		rec.Gender = DefaultGender
	}
	return rec
}
