package model

// CanonicalIdentity is the single normalized identity representing all
// alias spellings observed for one stable identifier. The canonical name
// is fixed by the first alias-table hit, else the first alias seen.
type CanonicalIdentity struct {
	Key     string   // stable identifier from the raw data
	Name    string   // canonical display name
	Aliases []string // distinct display names observed, first-seen order
}
