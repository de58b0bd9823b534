// Package marker scans free-text annotations for explicit time
// corrections and state declarations. A human-authored marker outranks
// any automatic timestamp, so each match carries a source weight the
// duration resolver uses to pick between competing boundary candidates.
package marker

import (
	"regexp"

	"github.com/ntari/tally/internal/model"
)

// Class identifies a pattern class. Classes are tried in declaration
// order; the first match wins and at most one override is produced per
// annotation.
type Class int

const (
	ClassClockOut Class = iota
	ClassClockIn
	ClassBreakStart
	ClassBreakEnd
	ClassAutoTimeout
	ClassSystem
	ClassNone
)

func (c Class) String() string {
	switch c {
	case ClassClockOut:
		return "clock_out"
	case ClassClockIn:
		return "clock_in"
	case ClassBreakStart:
		return "break_start"
	case ClassBreakEnd:
		return "break_end"
	case ClassAutoTimeout:
		return "auto_timeout"
	case ClassSystem:
		return "system"
	default:
		return "none"
	}
}

// matcher is one independent pattern class. unless vetoes a match so
// explicit human classes don't swallow system phrasings (RE2 has no
// lookbehind). New classes are added by extending the table, not by
// editing control flow.
type matcher struct {
	class  Class
	kind   model.EventKind
	weight int
	re     *regexp.Regexp
	unless *regexp.Regexp
}

var systemPhrase = regexp.MustCompile(`(?i)\b(?:auto(?:matic(?:ally)?)?|system|timed\s+out)\b`)

var matchers = []matcher{
	{
		class: ClassClockOut, kind: model.KindOut, weight: model.WeightClockOut,
		re:     regexp.MustCompile(`(?i)\b(?:clock(?:ed)?|check(?:ed)?|sign(?:ed)?|log(?:ged)?)[\s-]*out\b`),
		unless: systemPhrase,
	},
	{
		class: ClassClockIn, kind: model.KindIn, weight: model.WeightClockIn,
		re:     regexp.MustCompile(`(?i)\b(?:clock(?:ed)?|check(?:ed)?|sign(?:ed)?|log(?:ged)?)[\s-]*in\b`),
		unless: systemPhrase,
	},
	{
		class: ClassBreakStart, kind: model.KindOut, weight: model.WeightBreak,
		re: regexp.MustCompile(`(?i)\b(?:start(?:ed|ing)?\s+(?:my\s+)?break|break\s+start(?:ed)?|on\s+break|taking\s+a\s+break)\b`),
	},
	{
		class: ClassBreakEnd, kind: model.KindIn, weight: model.WeightBreak,
		re: regexp.MustCompile(`(?i)\b(?:back\s+from\s+break|break\s+(?:end(?:ed)?|over)|end(?:ed|ing)?\s+(?:my\s+)?break)\b`),
	},
	{
		class: ClassAutoTimeout, kind: model.KindOut, weight: model.WeightAutoTimeout,
		re: regexp.MustCompile(`(?i)\b(?:auto(?:matic(?:ally)?)?[\s-]*(?:time[\s-]?out|timed[\s-]*out|log(?:ged)?[\s-]*out|clock(?:ed)?[\s-]*out)|timed\s+out)\b`),
	},
	{
		class: ClassSystem, kind: model.KindOut, weight: model.WeightSystemMarker,
		re: regexp.MustCompile(`(?i)\bsystem\s+(?:log(?:ged)?|clock(?:ed)?|sign(?:ed)?|check(?:ed)?)[\s-]*(?:me\s+)?out\b`),
	},
}

// match runs the ordered classes against text. ClassNone when nothing hits.
func match(text string) (matcher, bool) {
	for _, m := range matchers {
		if !m.re.MatchString(text) {
			continue
		}
		if m.unless != nil && m.unless.MatchString(text) {
			continue
		}
		return m, true
	}
	return matcher{class: ClassNone}, false
}
