package model

import "time"

// EventKind distinguishes clock-in from clock-out events.
type EventKind int

const (
	KindIn EventKind = iota
	KindOut
)

func (k EventKind) String() string {
	if k == KindIn {
		return "in"
	}
	return "out"
}

// Source weights order competing time candidates for the same session
// boundary. Higher wins; a human-authored correction always outranks an
// automatic timestamp.
const (
	WeightAutomatic    = 10  // system-recorded clock field
	WeightSystemMarker = 50  // generic system marker in notes
	WeightAutoTimeout  = 60  // system auto-timeout marker in notes
	WeightBreak        = 90  // break-start / break-end marker
	WeightClockIn      = 95  // explicit clock-in marker
	WeightClockOut     = 100 // explicit clock-out marker
)

// Event is a single typed clock event. Produced by the normalizer
// (automatic timestamps) and the marker extractor (note overrides).
// Immutable once created.
type Event struct {
	IdentityKey string
	RowIndex    int // source row; events from one row compete for one boundary
	Timestamp   time.Time
	Kind        EventKind
	Weight      int    // source priority from the table above
	Note        string // annotation carried from the source row
	Flags       []Flag
}
