package model

import "time"

// Session is one reconstructed start/end work interval for one identity.
// Incomplete pairings (missing end, orphan end) are represented as
// sessions too, flagged and excluded from totals, so audit output can
// show them alongside regular sessions.
type Session struct {
	Identity string `json:"-"` // canonical name, set during assembly
	Start    Event  `json:"-"`
	End      Event  `json:"-"`

	Date     string  `json:"date"` // calendar date of the start (YYYY-MM-DD)
	StartsAt string  `json:"startTime,omitempty"`
	EndsAt   string  `json:"endTime,omitempty"`
	Hours    float64 `json:"duration"`
	Notes    string  `json:"notes,omitempty"`
	Flags    []Flag  `json:"flags,omitempty"`
	InWindow bool    `json:"inRecentWindow"`

	// Included is true when the session counts toward totals and ranking.
	Included bool `json:"included"`
	// Reason is the human-readable exclusion reason when Included is false.
	Reason string `json:"reason,omitempty"`
}

// Stamp fills the serialized date/time fields from the boundary events.
func (s *Session) Stamp() {
	if !s.Start.Timestamp.IsZero() {
		s.Date = s.Start.Timestamp.UTC().Format("2006-01-02")
		s.StartsAt = s.Start.Timestamp.UTC().Format(time.RFC3339)
	} else if !s.End.Timestamp.IsZero() {
		s.Date = s.End.Timestamp.UTC().Format("2006-01-02")
	}
	if !s.End.Timestamp.IsZero() {
		s.EndsAt = s.End.Timestamp.UTC().Format(time.RFC3339)
	}
}
