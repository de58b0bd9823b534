package model

// Flag is advisory metadata attached to events and sessions. Flags never
// exclude a session from totals by themselves; only the quality filter
// and the structural exclusions (missing end, orphan end, negative
// duration) do that.
type Flag string

const (
	// Structural exclusions — session retained for audit, never counted.
	FlagMissingEnd     Flag = "MISSING_END"
	FlagOrphanEnd      Flag = "ORPHAN_END"
	FlagEndBeforeStart Flag = "END_BEFORE_START"

	// Marker extraction diagnostics.
	FlagTimeParseFallback Flag = "TIME_PARSE_FALLBACK"
	FlagTZAssumed         Flag = "TZ_ASSUMED" // local time parsed with the configured default zone

	// Duration validation bands.
	FlagExtremeShort    Flag = "EXTREME_SHORT"    // under 5 minutes
	FlagSuspiciousShort Flag = "SUSPICIOUS_SHORT" // under 30 minutes
	FlagConcerningLong  Flag = "CONCERNING_LONG"  // 8 to 20 hours
	FlagExtremeLong     Flag = "EXTREME_LONG"     // over 20 hours

	// Weekly totals, checked over the recent window.
	FlagWeeklyConcern Flag = "WEEKLY_CONCERN" // over 40 included hours
	FlagWeeklyExtreme Flag = "WEEKLY_EXTREME" // over 60 included hours
)

// HasFlag reports whether fs contains f.
func HasFlag(fs []Flag, f Flag) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}
	return false
}

// AddFlag appends f unless already present.
func AddFlag(fs []Flag, f Flag) []Flag {
	if HasFlag(fs, f) {
		return fs
	}
	return append(fs, f)
}
