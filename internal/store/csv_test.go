package store

import (
	"os"
	"path/filepath"
	"testing"
)

const mainCSV = `College Division,School,Region,2020 Conference Team Place,2021 Conference Team Place,2022 Conference Team Place,2023 Conference Team Place,2024 Conference Team Place,2025 Conference Team Place
NAIA,Grand View (Iowa) - Mens,Heart of America Athletic Conference,1,1,1,1,1,
NAIA,Life (Ga.) - Mens,Mid-South Conference,2,,3,,2,1
NAIA,Reinhardt University - Mens,Appalachian Athletic Conference,,4,,,3,
`

const multiSportCSV = `Sport,Division,Gender,College Division,School,Region,2024 Conference Team Place,2025 Conference Team Place
wrestling,naia,mens,NAIA,Grand View (Iowa) - Mens,Heart of America Athletic Conference,1,
wrestling,naia,mens,NAIA,Missouri Valley - Mens,Heart of America Athletic Conference,2,3
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	r, err := Load(writeFixture(t, mainCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(r.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(r.Records))
	}
	if r.MultiSport {
		t.Error("single-sport CSV detected as multi-sport")
	}

	wantYears := []int{2020, 2021, 2022, 2023, 2024, 2025}
	if len(r.Years) != len(wantYears) {
		t.Fatalf("Years = %v, want %v", r.Years, wantYears)
	}
	for i, y := range wantYears {
		if r.Years[i] != y {
			t.Errorf("Years[%d] = %d, want %d", i, r.Years[i], y)
		}
	}

	life := r.Records[1]
	if life.School != "Life (Ga.) - Mens" {
		t.Errorf("School = %q", life.School)
	}
	if life.Conference != "Mid-South Conference" {
		t.Errorf("Conference = %q", life.Conference)
	}
	if life.Places[2020] != 2 || life.Places[2025] != 1 {
		t.Errorf("Places = %v", life.Places)
	}
	if _, ok := life.Places[2021]; ok {
		t.Error("empty place cell should not produce an entry")
	}
}

func TestLoadMultiSport(t *testing.T) {
	r, err := Load(writeFixture(t, multiSportCSV))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !r.MultiSport {
		t.Fatal("multi-sport CSV not detected")
	}
	rec := r.Records[0]
	if rec.Sport != "wrestling" || rec.Division != "naia" || rec.Gender != "mens" {
		t.Errorf("tags = %q/%q/%q", rec.Sport, rec.Division, rec.Gender)
	}
	if rec.School != "Grand View (Iowa) - Mens" || rec.Places[2024] != 1 {
		t.Errorf("record = %+v", rec)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong fixed column", "Division,School,Region,2020 Conference Team Place\nNAIA,Grand View,Heart,1\n"},
		{"unrecognized year column", "College Division,School,Region,2020 Team Place\nNAIA,Grand View,Heart,1\n"},
		{"row column count mismatch", mainCSV + "NAIA,Extra School\n"},
		{"non-integer place", "College Division,School,Region,2020 Conference Team Place\nNAIA,Grand View,Heart,first\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFixture(t, tt.content)); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := err.(*StoreError); !ok {
		t.Errorf("error type = %T, want *StoreError", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := writeFixture(t, mainCSV)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.csv")
	if err := Save(out, r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(got) != mainCSV {
		t.Errorf("round-trip changed the file:\ngot:\n%s\nwant:\n%s", got, mainCSV)
	}
}

func TestLoadSaveRoundTripMultiSport(t *testing.T) {
	path := writeFixture(t, multiSportCSV)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := Save(path, r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != multiSportCSV {
		t.Errorf("round-trip changed the file:\ngot:\n%s\nwant:\n%s", got, multiSportCSV)
	}
}
