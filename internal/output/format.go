package output

import "github.com/ntari/tally/internal/model"

// Format returns a copy of the analysis with fields stripped according
// to verbosity. The original is never mutated — an Analysis is
// immutable once built.
//
// Minimal keeps aggregates, ranking, and data quality; session and
// audit lists are dropped. Standard keeps session lists but drops alias
// sets. Full keeps everything.
func Format(a *model.Analysis, v Verbosity) *model.Analysis {
	if v == Full {
		return a
	}

	out := *a
	out.PerIdentity = make(map[string]*model.IdentityResult, len(a.PerIdentity))
	for name, r := range a.PerIdentity {
		c := *r
		c.Aliases = nil
		if v == Minimal {
			c.Sessions = nil
			c.Filtered = nil
		}
		out.PerIdentity[name] = &c
	}
	if v == Minimal {
		out.Discarded = nil
	}
	return &out
}
