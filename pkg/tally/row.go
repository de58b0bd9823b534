package tally

// Row is one raw input record from a volunteer time export. Timestamp
// fields stay strings: the engine decides whether they parse, and a
// field that doesn't is a per-row diagnostic, never an error.
type Row struct {
	FirstName string
	LastName  string
	UserID    string // stable identifier used to group name variants
	TimeIn    string // optional; ISO-8601 or a local layout
	TimeOut   string // optional
	Notes     string // optional free-text annotation
}
