package model

import "time"

// IdentityResult holds the per-identity aggregates for one canonical
// identity: sessions, totals, the filtered list, and weekly flags.
type IdentityResult struct {
	Key          string    `json:"userId"`
	Name         string    `json:"name"`
	Aliases      []string  `json:"aliases,omitempty"`
	Sessions     []Session `json:"sessions"`
	Filtered     []Session `json:"filteredSessions,omitempty"`
	TotalHours   float64   `json:"totalHours"`
	WindowHours  float64   `json:"recentWindowHours"`
	SessionCount int       `json:"sessionCount"`
	Flags        []Flag    `json:"flags,omitempty"`
}

// RankEntry is one row of the activity ranking. Rank is 1-based and
// contiguous; ties keep first-seen order.
type RankEntry struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// Window is the trailing recent-activity span. The dataset defines its
// own present: End is the maximum timestamp observed in the batch.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window (inclusive bounds).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DataQuality summarizes how much of the input survived filtering.
type DataQuality struct {
	TotalEntries     int     `json:"totalEntries"`
	ValidSessions    int     `json:"validSessions"`
	FilteredSessions int     `json:"filteredSessions"`
	FilterRule       string  `json:"filterRule"`
	OriginalHours    float64 `json:"originalHours"`
	IncludedHours    float64 `json:"includedHours"`
	FilteredHours    float64 `json:"filteredHours"`
	ReductionPercent float64 `json:"reductionPercent"`
}

// DiscardedSession is the global audit record for one quality-filtered
// session.
type DiscardedSession struct {
	Volunteer string  `json:"volunteer"`
	Date      string  `json:"date"`
	Hours     float64 `json:"duration"`
	Notes     string  `json:"notes,omitempty"`
	Reason    string  `json:"reason"`
}

// Analysis is the sole contract handed to reporting, notification, and
// persistence collaborators. Built once at the end of a run; immutable.
type Analysis struct {
	PerIdentity map[string]*IdentityResult `json:"results"`
	Order       []string                   `json:"-"` // canonical names, first-seen order
	Ranking     []RankEntry                `json:"ranking"`
	Window      Window                     `json:"recentWindow"`
	Period      string                     `json:"period"` // "<start date> to <end date>"

	TotalVolunteers  int     `json:"totalVolunteers"`
	ActiveVolunteers int     `json:"activeVolunteers"`
	QualityStandard  float64 `json:"qualityStandard"`

	DataQuality DataQuality        `json:"dataQuality"`
	Discarded   []DiscardedSession `json:"discardedSessions,omitempty"`
}
