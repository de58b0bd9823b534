// Package filter applies the configurable quality standard: a session
// longer than the threshold τ with no explanatory notes is discarded
// from totals but retained for audit.
package filter

import (
	"fmt"
	"strings"

	"github.com/ntari/tally/internal/config"
	"github.com/ntari/tally/internal/model"
)

// Filter holds the active quality standard. τ is always an explicit
// parameter of the run, never shared mutable state, so several
// thresholds can be evaluated over the same dataset concurrently.
type Filter struct {
	Tau float64
}

// New creates a Filter. An unrecognized τ preset is a fatal
// configuration error: the run must abort before producing a partial
// result.
func New(tau float64) (Filter, error) {
	if !config.ValidStandard(tau) {
		return Filter{}, fmt.Errorf("filter: unrecognized quality standard %v (want 999, 8, 4, 2 or 1)", tau)
	}
	return Filter{Tau: tau}, nil
}

// Apply checks one session against the standard and reports whether it
// was discarded. The rule is strict: duration must exceed τ AND notes
// must be empty or whitespace; a session of exactly τ hours is kept.
// Sessions already excluded structurally are left alone.
func (f Filter) Apply(s *model.Session) bool {
	if !s.Included {
		return false
	}
	if s.Hours > f.Tau && strings.TrimSpace(s.Notes) == "" {
		s.Included = false
		s.Reason = f.Reason(s.Hours)
		return true
	}
	return false
}

// Reason is the human-readable exclusion reason for a discarded session.
func (f Filter) Reason(hours float64) string {
	return fmt.Sprintf("Session over %gh without notes (%.2fh)", f.Tau, hours)
}

// Rule describes the active filter in reporting output.
func (f Filter) Rule() string {
	unit := "hours"
	if f.Tau == 1 {
		unit = "hour"
	}
	return fmt.Sprintf("Sessions over %g %s without explanatory notes are discarded", f.Tau, unit)
}
