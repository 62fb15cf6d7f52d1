package roster

// Default tags applied to new records. The current dataset is single-sport
// and single-gender; the multi-sport CSV variant carries these explicitly.
const (
	DefaultSport    = "wrestling"
	DefaultDivision = "naia"
	DefaultGender   = "mens"

	// CollegeDivision is the value of the legacy division column.
	CollegeDivision = "NAIA"

	// GenderSuffix is appended to newly created school names.
	GenderSuffix = " - Mens"
)

// SchoolRecord is one school's full placement history. Name is the identity
// key within a roster; Places is sparse, keyed by year.
type SchoolRecord struct {
	Sport           string      `json:"sport,omitempty"`
	Division        string      `json:"division,omitempty"`
	Gender          string      `json:"gender,omitempty"`
	CollegeDivision string      `json:"college_division"`
	School          string      `json:"school"`
	Conference      string      `json:"conference"`
	Places          map[int]int `json:"places"`
}

// Roster is the ordered collection of school records backed by the main CSV.
type Roster struct {
	Records []SchoolRecord

	// Years lists the place columns present in the CSV, in header order.
	Years []int

	// MultiSport reports whether the CSV carries the Sport/Division/Gender
	// prefix columns.
	MultiSport bool
}

// HasYear reports whether the roster has a place column for year.
func (r *Roster) HasYear(year int) bool {
	for _, y := range r.Years {
		if y == year {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the roster. ApplyStandings mutates the copy
// so the caller's snapshot stays unchanged.
func (r *Roster) Clone() *Roster {
	out := &Roster{
		Records:    make([]SchoolRecord, len(r.Records)),
		Years:      append([]int(nil), r.Years...),
		MultiSport: r.MultiSport,
	}
	for i, rec := range r.Records {
		places := make(map[int]int, len(rec.Places))
		for y, p := range rec.Places {
			places[y] = p
		}
		rec.Places = places
		out.Records[i] = rec
	}
	return out
}
