package timeparse

import (
	"testing"
	"time"
)

func TestParse_ISO(t *testing.T) {
	got, err := Parse("2026-03-02T09:00:00Z", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_Offset(t *testing.T) {
	got, err := Parse("2026-03-02T09:00:00-05:00", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_LocalInDefaultLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	got, err := Parse("2026-03-02 09:00:00", ny)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := time.Date(2026, 3, 2, 9, 0, 0, 0, ny)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_SlashLayout(t *testing.T) {
	got, err := Parse("3/2/2026 9:00 AM", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_DateOnly(t *testing.T) {
	got, err := Parse("2026-03-02", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", got)
	}
}

func TestParse_Unparseable(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-timestamp", "99/99/9999"} {
		if _, err := Parse(s, nil); err == nil {
			t.Fatalf("Parse(%q): expected error", s)
		}
	}
}

func TestLocation_KnownAbbreviations(t *testing.T) {
	cases := map[string]string{
		"ET":  "America/New_York",
		"est": "America/New_York",
		"EDT": "America/New_York",
		"PT":  "America/Los_Angeles",
		"CST": "America/Chicago",
		"UTC": "UTC",
		"z":   "UTC",
	}
	for abbrev, want := range cases {
		loc, explicit := Location(abbrev, time.UTC)
		if !explicit {
			t.Fatalf("Location(%q): expected explicit", abbrev)
		}
		if loc.String() != want {
			t.Fatalf("Location(%q): expected %s, got %s", abbrev, want, loc)
		}
	}
}

func TestLocation_UnknownFallsBackToDefault(t *testing.T) {
	chi, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	loc, explicit := Location("XYZT", chi)
	if explicit {
		t.Fatal("expected explicit=false for unknown abbreviation")
	}
	if loc != chi {
		t.Fatalf("expected default location, got %s", loc)
	}

	loc, explicit = Location("", nil)
	if explicit || loc != time.UTC {
		t.Fatalf("expected UTC fallback for empty abbreviation, got %s explicit=%v", loc, explicit)
	}
}

func TestLocation_DSTResolvesPerDate(t *testing.T) {
	// "ET" maps to one IANA zone; the offset depends on the date.
	loc, _ := Location("ET", time.UTC)
	winter := time.Date(2026, 1, 15, 12, 0, 0, 0, loc)
	summer := time.Date(2026, 7, 15, 12, 0, 0, 0, loc)
	_, winterOff := winter.Zone()
	_, summerOff := summer.Zone()
	if winterOff != -5*3600 || summerOff != -4*3600 {
		t.Fatalf("expected EST/EDT offsets, got %d and %d", winterOff, summerOff)
	}
}
