// Package standings provides types and text parsing for NAIA conference
// standings releases.
//
// The standings package recognizes the three textual layouts the NAIA has
// published team standings in (dash-separated lists, tournament-style ranked
// lists with decimal scores, and the older numbered-concatenated run format)
// and converts a standings block into ordered (rank, school) entries. Scores
// are parsed only to locate entry boundaries and are discarded.
package standings
