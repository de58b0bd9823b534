package output

import (
	"testing"

	"github.com/ntari/tally/internal/model"
)

func sampleAnalysis() *model.Analysis {
	return &model.Analysis{
		PerIdentity: map[string]*model.IdentityResult{
			"J Graves": {
				Name:       "J Graves",
				Aliases:    []string{"J Graves", "j graves"},
				Sessions:   []model.Session{{Hours: 3.5, Included: true}},
				Filtered:   []model.Session{{Hours: 9.25}},
				TotalHours: 3.5,
			},
		},
		Order:     []string{"J Graves"},
		Ranking:   []model.RankEntry{{Rank: 1, Name: "J Graves", Hours: 3.5}},
		Discarded: []model.DiscardedSession{{Volunteer: "J Graves", Hours: 9.25}},
	}
}

func TestFormat_FullReturnsOriginal(t *testing.T) {
	a := sampleAnalysis()
	if got := Format(a, Full); got != a {
		t.Fatal("full verbosity must pass the analysis through")
	}
}

func TestFormat_StandardDropsAliases(t *testing.T) {
	a := sampleAnalysis()
	got := Format(a, Standard)

	r := got.PerIdentity["J Graves"]
	if r.Aliases != nil {
		t.Fatalf("expected aliases stripped, got %v", r.Aliases)
	}
	if len(r.Sessions) != 1 || len(r.Filtered) != 1 {
		t.Fatal("standard verbosity must keep session lists")
	}
	if len(got.Discarded) != 1 {
		t.Fatal("standard verbosity must keep the discarded roll-up")
	}
}

func TestFormat_MinimalDropsSessionLists(t *testing.T) {
	a := sampleAnalysis()
	got := Format(a, Minimal)

	r := got.PerIdentity["J Graves"]
	if r.Sessions != nil || r.Filtered != nil || r.Aliases != nil {
		t.Fatalf("expected detail stripped, got %+v", r)
	}
	if got.Discarded != nil {
		t.Fatal("minimal verbosity must drop the discarded roll-up")
	}
	if r.TotalHours != 3.5 || len(got.Ranking) != 1 {
		t.Fatal("aggregates must survive minimal verbosity")
	}
}

func TestFormat_NeverMutatesOriginal(t *testing.T) {
	a := sampleAnalysis()
	Format(a, Minimal)

	r := a.PerIdentity["J Graves"]
	if r.Aliases == nil || r.Sessions == nil || r.Filtered == nil || a.Discarded == nil {
		t.Fatal("formatting must not mutate the original analysis")
	}
}

func TestParseVerbosity(t *testing.T) {
	cases := map[string]Verbosity{
		"minimal":  Minimal,
		"standard": Standard,
		"full":     Full,
		"":         Standard,
		"wild":     Standard,
	}
	for in, want := range cases {
		if got := ParseVerbosity(in); got != want {
			t.Fatalf("ParseVerbosity(%q) = %v, want %v", in, got, want)
		}
	}
}
