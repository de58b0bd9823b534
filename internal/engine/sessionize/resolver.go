package sessionize

import "github.com/ntari/tally/internal/model"

// pickBoundary selects the winning candidate for one session boundary:
// highest source weight, ties broken by latest timestamp.
func pickBoundary(candidates []model.Event) model.Event {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Weight > best.Weight ||
			(c.Weight == best.Weight && c.Timestamp.After(best.Timestamp)) {
			best = c
		}
	}
	return best
}

// resolve builds a completed session from the start and end candidate
// sets. A valid session's end strictly follows its start; anything else
// is excluded from totals regardless of later filtering. Zero hours
// mean the pairing is invalid, and a negative duration additionally
// raises END_BEFORE_START.
func resolve(starts, ends []model.Event) model.Session {
	start := pickBoundary(starts)
	end := pickBoundary(ends)

	s := model.Session{
		Start:    start,
		End:      end,
		Notes:    sessionNotes(start, end),
		Flags:    boundaryFlags(start, end),
		Included: true,
	}

	hours := end.Timestamp.Sub(start.Timestamp).Hours()
	switch {
	case hours < 0:
		s.Hours = 0
		s.Flags = model.AddFlag(s.Flags, model.FlagEndBeforeStart)
		s.Included = false
		s.Reason = "Clock-out precedes clock-in"
	case hours == 0:
		s.Hours = 0
		s.Included = false
		s.Reason = "Clock-out does not follow clock-in"
	default:
		s.Hours = hours
	}
	s.Stamp()
	return s
}

// sessionNotes prefers the start row's annotation, falling back to the
// end row's.
func sessionNotes(start, end model.Event) string {
	if start.Note != "" {
		return start.Note
	}
	return end.Note
}

// boundaryFlags carries the winning candidates' diagnostics onto the
// session.
func boundaryFlags(start, end model.Event) []model.Flag {
	var flags []model.Flag
	for _, f := range start.Flags {
		flags = model.AddFlag(flags, f)
	}
	for _, f := range end.Flags {
		flags = model.AddFlag(flags, f)
	}
	return flags
}
