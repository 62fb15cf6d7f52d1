package api

import (
	"sort"
	"strings"

	"github.com/adydas-lantern/naia-standings/internal/roster"
)

// Placement is one year's conference place for a school.
type Placement struct {
	Year       int    `json:"year"`
	Place      int    `json:"place"`
	Conference string `json:"conference"`
}

// School is the API view of a school record.
type School struct {
	Name       string      `json:"name"`
	Sport      string      `json:"sport"`
	Division   string      `json:"division"`
	Gender     string      `json:"gender"`
	Conference string      `json:"conference"`
	Placements []Placement `json:"placements"`
}

// Standing is one (year, conference, place, school) tuple.
type Standing struct {
	Sport      string `json:"sport"`
	Division   string `json:"division"`
	Gender     string `json:"gender"`
	Year       int    `json:"year"`
	Conference string `json:"conference"`
	Place      int    `json:"place"`
	School     string `json:"school"`
}

// Conference is the API view of a conference: its member schools and the
// years it has standings for.
type Conference struct {
	Name        string   `json:"name"`
	Sport       string   `json:"sport"`
	Division    string   `json:"division"`
	Gender      string   `json:"gender"`
	Schools     []string `json:"schools"`
	YearsActive []int    `json:"years_active"`
}

// ConferenceStandings is one conference's ordered standings for one year.
type ConferenceStandings struct {
	Sport      string     `json:"sport"`
	Division   string     `json:"division"`
	Gender     string     `json:"gender"`
	Year       int        `json:"year"`
	Conference string     `json:"conference"`
	Standings  []Standing `json:"standings"`
}

// Dataset is the immutable in-memory snapshot the API serves from.
type Dataset struct {
	Schools     []School
	Standings   []Standing
	Conferences []Conference
}

// NewDataset flattens a roster into the API views. Standings are ordered by
// year, conference and place; conferences and their school lists are sorted
// by name.
func NewDataset(r *roster.Roster) *Dataset {
	d := &Dataset{}

	years := append([]int(nil), r.Years...)
	sort.Ints(years)

	type confKey struct{ name, sport, division, gender string }
	confSchools := make(map[confKey]map[string]bool)
	confYears := make(map[confKey]map[int]bool)

	for _, rec := range r.Records {
		sport, division, gender := recordTags(rec)

		school := School{
			Name:       rec.School,
			Sport:      sport,
			Division:   division,
			Gender:     gender,
			Conference: rec.Conference,
			Placements: []Placement{},
		}
		for _, year := range years {
			place, ok := rec.Places[year]
			if !ok {
				continue
			}
			school.Placements = append(school.Placements, Placement{
				Year:       year,
				Place:      place,
				Conference: rec.Conference,
			})
			d.Standings = append(d.Standings, Standing{
				Sport:      sport,
				Division:   division,
				Gender:     gender,
				Year:       year,
				Conference: rec.Conference,
				Place:      place,
				School:     rec.School,
			})

			key := confKey{rec.Conference, sport, division, gender}
			if confSchools[key] == nil {
				confSchools[key] = make(map[string]bool)
				confYears[key] = make(map[int]bool)
			}
			confSchools[key][rec.School] = true
			confYears[key][year] = true
		}
		d.Schools = append(d.Schools, school)
	}

	sort.Slice(d.Standings, func(i, j int) bool {
		a, b := d.Standings[i], d.Standings[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Conference != b.Conference {
			return a.Conference < b.Conference
		}
		if a.Place != b.Place {
			return a.Place < b.Place
		}
		return a.School < b.School
	})

	for key, schools := range confSchools {
		conf := Conference{
			Name:     key.name,
			Sport:    key.sport,
			Division: key.division,
			Gender:   key.gender,
		}
		for name := range schools {
			conf.Schools = append(conf.Schools, name)
		}
		sort.Strings(conf.Schools)
		for year := range confYears[key] {
			conf.YearsActive = append(conf.YearsActive, year)
		}
		sort.Ints(conf.YearsActive)
		d.Conferences = append(d.Conferences, conf)
	}
	sort.Slice(d.Conferences, func(i, j int) bool {
		return d.Conferences[i].Name < d.Conferences[j].Name
	})

	return d
}

// recordTags returns a record's sport/division/gender, falling back to the
// single-sport dataset defaults.
func recordTags(rec roster.SchoolRecord) (string, string, string) {
	sport, division, gender := rec.Sport, rec.Division, rec.Gender
	if sport == "" {
		sport = roster.DefaultSport
	}
	if division == "" {
		division = roster.DefaultDivision
	}
	if gender == "" {
		gender = roster.DefaultGender
	}
	return sport, division, gender
}

// partialMatch reports whether either lowercased string contains the other.
// Lookup endpoints use the same bidirectional containment as the scrape-time
// name matcher.
func partialMatch(query, name string) bool {
	q := strings.ToLower(query)
	n := strings.ToLower(name)
	return strings.Contains(n, q) || strings.Contains(q, n)
}
