package filter

import (
	"testing"

	"github.com/ntari/tally/internal/model"
)

func TestNew_RejectsUnknownStandard(t *testing.T) {
	for _, tau := range []float64{0, 3, 7.5, -1} {
		if _, err := New(tau); err == nil {
			t.Fatalf("New(%v): expected error", tau)
		}
	}
	for _, tau := range []float64{999, 8, 4, 2, 1} {
		if _, err := New(tau); err != nil {
			t.Fatalf("New(%v): unexpected error %v", tau, err)
		}
	}
}

func TestApply_DiscardsLongUnannotated(t *testing.T) {
	f, _ := New(8)
	s := model.Session{Hours: 9, Included: true}
	if !f.Apply(&s) {
		t.Fatal("expected 9h unannotated session discarded at τ=8")
	}
	if s.Included {
		t.Fatal("discarded session must be excluded from totals")
	}
	if s.Reason != "Session over 8h without notes (9.00h)" {
		t.Fatalf("unexpected reason %q", s.Reason)
	}
}

func TestApply_StrictBoundary(t *testing.T) {
	f, _ := New(8)

	exact := model.Session{Hours: 8, Included: true}
	if f.Apply(&exact) || !exact.Included {
		t.Fatal("a session of exactly τ hours must be kept")
	}

	over := model.Session{Hours: 8.000001, Included: true}
	if !f.Apply(&over) {
		t.Fatal("τ + ε without notes must be discarded")
	}
}

func TestApply_NotesKeepLongSessions(t *testing.T) {
	f, _ := New(8)
	s := model.Session{Hours: 12, Notes: "harvest festival setup and teardown", Included: true}
	if f.Apply(&s) || !s.Included {
		t.Fatal("annotated session must be kept regardless of length")
	}

	ws := model.Session{Hours: 12, Notes: "   ", Included: true}
	if !f.Apply(&ws) {
		t.Fatal("whitespace-only notes count as empty")
	}
}

func TestApply_LeavesStructurallyExcludedAlone(t *testing.T) {
	f, _ := New(8)
	s := model.Session{
		Hours:    0,
		Included: false,
		Reason:   "Clock-in without matching clock-out",
	}
	if f.Apply(&s) {
		t.Fatal("already-excluded session must not be re-filtered")
	}
	if s.Reason != "Clock-in without matching clock-out" {
		t.Fatalf("reason overwritten: %q", s.Reason)
	}
}

func TestApply_DisabledStandard(t *testing.T) {
	f, _ := New(999)
	s := model.Session{Hours: 130, Included: true}
	if f.Apply(&s) {
		t.Fatal("τ=999 must never discard")
	}
}

func TestRule(t *testing.T) {
	f, _ := New(8)
	if got := f.Rule(); got != "Sessions over 8 hours without explanatory notes are discarded" {
		t.Fatalf("unexpected rule %q", got)
	}
	f, _ = New(1)
	if got := f.Rule(); got != "Sessions over 1 hour without explanatory notes are discarded" {
		t.Fatalf("unexpected rule %q", got)
	}
}
