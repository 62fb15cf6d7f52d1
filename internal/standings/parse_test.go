package standings

import (
	"reflect"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Format
	}{
		{
			name: "dash separated list",
			text: "Grand View (Iowa) - 216Missouri Valley - 198Benedictine - 165",
			want: FormatDash,
		},
		{
			name: "tournament ranked list",
			text: "1. Southeastern - 216 2. Life University - 198",
			want: FormatTournament,
		},
		{
			name: "tournament with decimal scores",
			text: "1. Southeastern - 216.5 2. Life University - 198",
			want: FormatTournament,
		},
		{
			name: "numbered concatenated run",
			text: "1 Grand View 2162 Missouri Valley 1983 Benedictine 165",
			want: FormatNumbered,
		},
		{
			name: "dash far into the text does not select dash family",
			text: "1 Grand View 2162 Missouri Valley 1983 Benedictine 1654 William Penn 1425 Graceland 1316 Central Methodist 120 something - 99",
			want: FormatNumbered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.text); got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBlockTournament(t *testing.T) {
	text := "1. Southeastern - 216\n2. Life University - 198\n3. Reinhardt University - 165"

	got := ParseBlock(text)
	want := []Entry{
		{Rank: 1, School: "Southeastern"},
		{Rank: 2, School: "Life University"},
		{Rank: 3, School: "Reinhardt University"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBlock() = %v, want %v", got, want)
	}
}

func TestParseBlockTournamentDecimalScores(t *testing.T) {
	text := "1. Montana Tech - 164.5 2. Providence - 120 3. Carroll - 98.5"

	got := ParseBlock(text)
	want := []Entry{
		{Rank: 1, School: "Montana Tech"},
		{Rank: 2, School: "Providence"},
		{Rank: 3, School: "Carroll"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBlock() = %v, want %v", got, want)
	}
}

func TestParseBlockDash(t *testing.T) {
	text := "Grand View (Iowa) - 216Missouri Valley - 198Benedictine - 165"

	got := ParseBlock(text)
	want := []Entry{
		{Rank: 1, School: "Grand View (Iowa)"},
		{Rank: 2, School: "Missouri Valley"},
		{Rank: 3, School: "Benedictine"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBlock() = %v, want %v", got, want)
	}
}

func TestParseBlockNumbered(t *testing.T) {
	// The score of each entry runs straight into the next entry's rank, so
	// only the first rank digit survives; the rest fall back to sequence.
	text := "1 Grand View 2162 Missouri Valley 1983 Benedictine 165"

	got := ParseBlock(text)
	want := []Entry{
		{Rank: 1, School: "Grand View"},
		{Rank: 2, School: "Missouri Valley"},
		{Rank: 3, School: "Benedictine"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBlock() = %v, want %v", got, want)
	}
}

func TestParseBlockEmpty(t *testing.T) {
	if got := ParseBlock(""); len(got) != 0 {
		t.Errorf("ParseBlock(\"\") = %v, want no entries", got)
	}
}

func TestParseBlockRanksNonDecreasing(t *testing.T) {
	texts := []string{
		"1. Southeastern - 216 2. Life University - 198 3. Reinhardt University - 165",
		"Grand View (Iowa) - 216Missouri Valley - 198Benedictine - 165",
		"1 Grand View 2162 Missouri Valley 1983 Benedictine 165",
	}

	for _, text := range texts {
		entries := ParseBlock(text)
		if len(entries) == 0 {
			t.Fatalf("ParseBlock(%q) returned no entries", text)
		}
		for i := 1; i < len(entries); i++ {
			if entries[i].Rank < entries[i-1].Rank {
				t.Errorf("ranks decrease at %d: %v", i, entries)
			}
		}
	}
}
