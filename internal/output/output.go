package output

import (
	"context"

	"github.com/ntari/tally/internal/model"
)

// Output defines the interface for analysis destinations. One run
// produces one Analysis; reporting, notification, and persistence
// collaborators consume it without knowing about raw rows, pattern
// classes, or pairing state.
type Output interface {
	Write(ctx context.Context, analysis *model.Analysis) error
	Close() error
}

// Verbosity controls how much per-session detail is serialized.
type Verbosity int

const (
	Minimal  Verbosity = iota // aggregates and ranking only
	Standard                  // plus session and audit lists
	Full                      // plus aliases and flagged diagnostics
)

// ParseVerbosity maps a string to a Verbosity. Unknown strings default
// to Standard.
func ParseVerbosity(s string) Verbosity {
	switch s {
	case "minimal":
		return Minimal
	case "full":
		return Full
	default:
		return Standard
	}
}
