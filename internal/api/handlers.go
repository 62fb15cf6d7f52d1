package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adydas-lantern/naia-standings/internal/logger"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "NAIA Athletics Data API",
		"version":     Version,
		"description": "Read-only API for NAIA athletics conference standings",
		"endpoints": map[string]string{
			"health":      "/health",
			"stats":       "/api/v1/stats",
			"schools":     "/api/v1/schools?conference=&sport=&division=&gender=&skip=&limit=",
			"conferences": "/api/v1/conferences",
			"standings":   "/api/v1/standings/{year}",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	loaded := s.data != nil
	status := "healthy"
	if !loaded {
		status = "unhealthy"
	}
	resp := map[string]any{
		"status":      status,
		"version":     Version,
		"data_loaded": loaded,
	}
	if loaded {
		resp["total_schools"] = len(s.data.Schools)
		resp["total_standings"] = len(s.data.Standings)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	years := make(map[int]bool)
	for _, st := range s.data.Standings {
		years[st.Year] = true
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_schools":     len(s.data.Schools),
		"total_standings":   len(s.data.Standings),
		"total_conferences": len(s.data.Conferences),
		"years_covered":     len(years),
		"metrics":           logger.GetMetricsSnapshot(),
	})
}

func (s *Server) handleListSchools(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skip, limit, err := pagination(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	schools := make([]School, 0)
	for _, school := range s.data.Schools {
		if !matchTags(q, school.Sport, school.Division, school.Gender) {
			continue
		}
		if conf := q.Get("conference"); conf != "" &&
			!strings.Contains(strings.ToLower(school.Conference), strings.ToLower(conf)) {
			continue
		}
		schools = append(schools, school)
	}

	writeJSON(w, http.StatusOK, paginate(schools, skip, limit))
}

func (s *Server) handleGetSchool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	q := r.URL.Query()

	for _, school := range s.data.Schools {
		if !partialMatch(name, school.Name) {
			continue
		}
		if !matchTags(q, school.Sport, school.Division, school.Gender) {
			continue
		}
		writeJSON(w, http.StatusOK, school)
		return
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("school not found: %s", name))
}

func (s *Server) handleListConferences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	conferences := make([]Conference, 0)
	for _, conf := range s.data.Conferences {
		if matchTags(q, conf.Sport, conf.Division, conf.Gender) {
			conferences = append(conferences, conf)
		}
	}
	writeJSON(w, http.StatusOK, conferences)
}

func (s *Server) handleGetConference(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	q := r.URL.Query()

	for _, conf := range s.data.Conferences {
		if !partialMatch(name, conf.Name) {
			continue
		}
		if !matchTags(q, conf.Sport, conf.Division, conf.Gender) {
			continue
		}
		writeJSON(w, http.StatusOK, conf)
		return
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("conference not found: %s", name))
}

func (s *Server) handleConferenceStandings(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	q := r.URL.Query()

	canonical := ""
	for _, st := range s.data.Standings {
		if strings.Contains(strings.ToLower(st.Conference), strings.ToLower(name)) &&
			matchTags(q, st.Sport, st.Division, st.Gender) {
			canonical = st.Conference
			break
		}
	}
	if canonical == "" {
		writeError(w, http.StatusNotFound, fmt.Sprintf("conference not found: %s", name))
		return
	}

	byYear := make(map[int][]Standing)
	for _, st := range s.data.Standings {
		if st.Conference == canonical && matchTags(q, st.Sport, st.Division, st.Gender) {
			byYear[st.Year] = append(byYear[st.Year], st)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"conference": canonical,
		"years":      byYear,
	})
}

func (s *Server) handleStandingsByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year: %s", r.PathValue("year")))
		return
	}
	q := r.URL.Query()

	standings := make([]Standing, 0)
	for _, st := range s.data.Standings {
		if st.Year != year {
			continue
		}
		if !matchTags(q, st.Sport, st.Division, st.Gender) {
			continue
		}
		if conf := q.Get("conference"); conf != "" &&
			!strings.Contains(strings.ToLower(st.Conference), strings.ToLower(conf)) {
			continue
		}
		standings = append(standings, st)
	}

	if len(standings) == 0 {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no standings found for year %d", year))
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

func (s *Server) handleStandingsByYearAndConference(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid year: %s", r.PathValue("year")))
		return
	}
	name := r.PathValue("conference")
	q := r.URL.Query()

	var result *ConferenceStandings
	for _, st := range s.data.Standings {
		if st.Year != year {
			continue
		}
		if !strings.Contains(strings.ToLower(st.Conference), strings.ToLower(name)) {
			continue
		}
		if !matchTags(q, st.Sport, st.Division, st.Gender) {
			continue
		}
		if result == nil {
			result = &ConferenceStandings{
				Sport:      st.Sport,
				Division:   st.Division,
				Gender:     st.Gender,
				Year:       year,
				Conference: st.Conference,
			}
		}
		if st.Conference == result.Conference {
			result.Standings = append(result.Standings, st)
		}
	}

	if result == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no standings found for %s in %d", name, year))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// matchTags applies the optional sport/division/gender query filters.
func matchTags(q url.Values, sport, division, gender string) bool {
	if v := q.Get("sport"); v != "" && v != sport {
		return false
	}
	if v := q.Get("division"); v != "" && v != division {
		return false
	}
	if v := q.Get("gender"); v != "" && v != gender {
		return false
	}
	return true
}

// pagination parses the skip/limit query parameters.
func pagination(q url.Values) (skip, limit int, err error) {
	skip, limit = 0, defaultLimit

	if v := q.Get("skip"); v != "" {
		skip, err = strconv.Atoi(v)
		if err != nil || skip < 0 {
			return 0, 0, fmt.Errorf("invalid skip: %s", v)
		}
	}
	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, fmt.Errorf("invalid limit: %s", v)
		}
	}
	return skip, limit, nil
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
