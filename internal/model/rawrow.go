package model

import "strings"

// RawRow is one tabular input line as delivered by a loader, before any
// parsing or validation. Timestamp fields stay strings until the
// normalizer decides whether they parse.
type RawRow struct {
	Index     int    // position in the input batch
	FirstName string
	LastName  string
	UserID    string // stable identifier used for grouping
	TimeIn    string // optional clock-in timestamp text
	TimeOut   string // optional clock-out timestamp text
	Notes     string // optional free-text annotation
}

// DisplayName joins the name fields, using whichever half is present.
func (r RawRow) DisplayName() string {
	first := strings.TrimSpace(r.FirstName)
	last := strings.TrimSpace(r.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
