package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/adydas-lantern/naia-standings/internal/roster"
)

// Main CSV column names. The multi-sport variant prepends Sport, Division
// and Gender; the rest of the layout is shared.
const (
	colSport           = "Sport"
	colDivision        = "Division"
	colGender          = "Gender"
	colCollegeDivision = "College Division"
	colSchool          = "School"
	colRegion          = "Region"
)

var yearColumnRe = regexp.MustCompile(`^(\d{4}) Conference Team Place$`)

// YearColumn returns the place column name for a year.
func YearColumn(year int) string {
	return fmt.Sprintf("%d Conference Team Place", year)
}

// StoreError reports a missing or malformed roster CSV. Loading fails before
// any mutation, so the committed file is never half-written over.
type StoreError struct {
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("roster csv %s: %v", e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Load reads the main results CSV into a roster. The column layout is
// validated against the expected header; the sport/division/gender prefix
// is detected from the first header column.
func Load(path string) (*roster.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &StoreError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &StoreError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &StoreError{Path: path, Err: fmt.Errorf("empty file")}
	}

	header := records[0]
	r := &roster.Roster{MultiSport: len(header) > 0 && header[0] == colSport}

	fixed := []string{colCollegeDivision, colSchool, colRegion}
	if r.MultiSport {
		fixed = append([]string{colSport, colDivision, colGender}, fixed...)
	}

	if len(header) < len(fixed) {
		return nil, &StoreError{Path: path, Err: fmt.Errorf("expected at least %d columns, got %d", len(fixed), len(header))}
	}
	for i, want := range fixed {
		if header[i] != want {
			return nil, &StoreError{Path: path, Err: fmt.Errorf("column %d is %q, want %q", i, header[i], want)}
		}
	}
	for _, col := range header[len(fixed):] {
		m := yearColumnRe.FindStringSubmatch(col)
		if m == nil {
			return nil, &StoreError{Path: path, Err: fmt.Errorf("unrecognized column %q", col)}
		}
		year, _ := strconv.Atoi(m[1])
		r.Years = append(r.Years, year)
	}

	base := len(fixed) - 3
	for _, row := range records[1:] {
		rec := roster.SchoolRecord{
			CollegeDivision: row[base],
			School:          row[base+1],
			Conference:      row[base+2],
			Places:          make(map[int]int),
		}
		if r.MultiSport {
			rec.Sport, rec.Division, rec.Gender = row[0], row[1], row[2]
		}
		for i, year := range r.Years {
			cell := row[base+3+i]
			if cell == "" {
				continue
			}
			place, err := strconv.Atoi(cell)
			if err != nil {
				return nil, &StoreError{Path: path, Err: fmt.Errorf("school %q: bad %d place %q", rec.School, year, cell)}
			}
			rec.Places[year] = place
		}
		r.Records = append(r.Records, rec)
	}

	return r, nil
}

// Save writes the roster back to the main results CSV, replacing the whole
// file. Column order is stable so an unmodified load/save round-trips.
func Save(path string, r *roster.Roster) error {
	f, err := os.Create(path)
	if err != nil {
		return &StoreError{Path: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{colCollegeDivision, colSchool, colRegion}
	if r.MultiSport {
		header = append([]string{colSport, colDivision, colGender}, header...)
	}
	for _, year := range r.Years {
		header = append(header, YearColumn(year))
	}
	if err := w.Write(header); err != nil {
		return &StoreError{Path: path, Err: err}
	}

	for _, rec := range r.Records {
		var row []string
		if r.MultiSport {
			row = append(row, rec.Sport, rec.Division, rec.Gender)
		}
		row = append(row, rec.CollegeDivision, rec.School, rec.Conference)
		for _, year := range r.Years {
			if place, ok := rec.Places[year]; ok {
				row = append(row, strconv.Itoa(place))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return &StoreError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &StoreError{Path: path, Err: err}
	}
	return nil
}
