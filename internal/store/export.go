package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/adydas-lantern/naia-standings/internal/roster"
)

// sortedRow is one (year, conference, place, school) tuple of the normalized
// export.
type sortedRow struct {
	sport      string
	division   string
	gender     string
	year       int
	conference string
	place      int
	school     string
}

// WriteSorted writes the normalized standings export: one row per placement,
// sorted by year, conference and place. The read API serves its by-year
// standings queries from this file.
func WriteSorted(path string, r *roster.Roster) error {
	var rows []sortedRow
	for _, rec := range r.Records {
		for _, year := range r.Years {
			place, ok := rec.Places[year]
			if !ok {
				continue
			}
			rows = append(rows, sortedRow{
				sport:      rec.Sport,
				division:   rec.Division,
				gender:     rec.Gender,
				year:       year,
				conference: rec.Conference,
				place:      place,
				school:     rec.School,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].year != rows[j].year {
			return rows[i].year < rows[j].year
		}
		if rows[i].conference != rows[j].conference {
			return rows[i].conference < rows[j].conference
		}
		if rows[i].place != rows[j].place {
			return rows[i].place < rows[j].place
		}
		return rows[i].school < rows[j].school
	})

	f, err := os.Create(path)
	if err != nil {
		return &StoreError{Path: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"Year", "Conference", "Place", "School"}
	if r.MultiSport {
		header = append([]string{colSport, colDivision, colGender}, header...)
	}
	if err := w.Write(header); err != nil {
		return &StoreError{Path: path, Err: err}
	}

	for _, row := range rows {
		out := []string{strconv.Itoa(row.year), row.conference, strconv.Itoa(row.place), row.school}
		if r.MultiSport {
			out = append([]string{row.sport, row.division, row.gender}, out...)
		}
		if err := w.Write(out); err != nil {
			return &StoreError{Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return &StoreError{Path: path, Err: err}
	}
	return nil
}

// Migrate rewrites a legacy single-sport CSV with the Sport, Division and
// Gender columns prepended, tagging every row with the wrestling defaults.
// Already-migrated files are rewritten unchanged.
func Migrate(inPath, outPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return &StoreError{Path: inPath, Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return &StoreError{Path: inPath, Err: err}
	}
	if len(records) == 0 {
		return &StoreError{Path: inPath, Err: fmt.Errorf("empty file")}
	}

	if records[0][0] != colSport {
		out := make([][]string, 0, len(records))
		out = append(out, append([]string{colSport, colDivision, colGender}, records[0]...))
		for _, row := range records[1:] {
			tagged := append([]string{roster.DefaultSport, roster.DefaultDivision, roster.DefaultGender}, row...)
			out = append(out, tagged)
		}
		records = out
	}

	dst, err := os.Create(outPath)
	if err != nil {
		return &StoreError{Path: outPath, Err: err}
	}
	defer dst.Close()

	w := csv.NewWriter(dst)
	if err := w.WriteAll(records); err != nil {
		return &StoreError{Path: outPath, Err: err}
	}
	return nil
}
