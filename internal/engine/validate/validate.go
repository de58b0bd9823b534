// Package validate flags sessions and weekly totals against fixed
// duration bands. Flags are advisory metadata: they never exclude a
// session from aggregation by themselves.
package validate

import "github.com/ntari/tally/internal/model"

// Session duration bands, in hours.
const (
	extremeShortMax    = 5.0 / 60  // under 5 minutes
	suspiciousShortMax = 0.5       // under 30 minutes
	concerningLongMin  = 8.0       // over a full workday
	extremeLongMin     = 20.0      // beyond any plausible single session
)

// Weekly thresholds over included hours in the recent window.
const (
	weeklyConcernHours = 40.0
	weeklyExtremeHours = 60.0
)

// Session attaches the duration-band flag for a completed session.
// Sessions already excluded from totals (missing end, orphan end,
// non-positive duration) are skipped; their zero duration is not a
// "short session".
func Session(s *model.Session) {
	if !s.Included {
		return
	}
	switch {
	case s.Hours < extremeShortMax:
		s.Flags = model.AddFlag(s.Flags, model.FlagExtremeShort)
	case s.Hours < suspiciousShortMax:
		s.Flags = model.AddFlag(s.Flags, model.FlagSuspiciousShort)
	case s.Hours > extremeLongMin:
		s.Flags = model.AddFlag(s.Flags, model.FlagExtremeLong)
	case s.Hours > concerningLongMin:
		s.Flags = model.AddFlag(s.Flags, model.FlagConcerningLong)
	}
}

// Weekly attaches the weekly-total flag for one identity's included
// hours over the trailing recent window.
func Weekly(r *model.IdentityResult) {
	switch {
	case r.WindowHours > weeklyExtremeHours:
		r.Flags = model.AddFlag(r.Flags, model.FlagWeeklyExtreme)
	case r.WindowHours > weeklyConcernHours:
		r.Flags = model.AddFlag(r.Flags, model.FlagWeeklyConcern)
	}
}
