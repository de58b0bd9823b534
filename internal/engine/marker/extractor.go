package marker

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ntari/tally/internal/engine/timeparse"
	"github.com/ntari/tally/internal/model"
)

// timeExpr captures a local time like "10:30 PM ET" or "22:15". Minutes
// are required unless an am/pm suffix disambiguates a bare hour.
var timeExpr = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)?(?:\s*([A-Za-z]{1,4}))?\b`)

// Extractor turns annotated events into override candidates. Extracted
// local times are anchored to the calendar date of the row's first
// timestamp, in the marker's explicit zone or the configured default,
// so a correction like "clocked out at 10:30 PM" lands on the day the
// session began rather than the day a runaway timeout fired.
type Extractor struct {
	loc *time.Location
	log *zap.Logger
}

// New creates an Extractor with the given default location for
// annotations that carry no timezone abbreviation.
func New(loc *time.Location, log *zap.Logger) *Extractor {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{loc: loc, log: log}
}

// Extract scans the annotation shared by one row's events. A row's
// note produces at most one override, whatever mix of timestamp fields
// the row had. On a marker with a parseable time it returns the
// override event and ok=true. On a marker whose time text is missing or
// unparseable it returns ok=false plus the TIME_PARSE_FALLBACK flag for
// the caller to attach to the row's events — extraction failure never
// raises; the automatic timestamps stand.
func (x *Extractor) Extract(rowEvents []model.Event) (override model.Event, flags []model.Flag, ok bool) {
	if len(rowEvents) == 0 {
		return model.Event{}, nil, false
	}
	note := strings.TrimSpace(rowEvents[0].Note)
	if note == "" {
		return model.Event{}, nil, false
	}
	m, hit := match(note)
	if !hit {
		return model.Event{}, nil, false
	}

	anchor := rowEvents[0]
	at, tzFlags, err := x.localTime(note, anchor.Timestamp)
	if err != nil {
		x.log.Debug("marker time unparseable, keeping automatic timestamp",
			zap.Int("row", anchor.RowIndex),
			zap.String("class", m.class.String()),
			zap.String("note", note))
		return model.Event{}, []model.Flag{model.FlagTimeParseFallback}, false
	}

	x.log.Debug("extracted override",
		zap.Int("row", anchor.RowIndex),
		zap.String("class", m.class.String()),
		zap.Time("at", at))

	return model.Event{
		IdentityKey: anchor.IdentityKey,
		RowIndex:    anchor.RowIndex,
		Timestamp:   at,
		Kind:        m.kind,
		Weight:      m.weight,
		Note:        anchor.Note,
		Flags:       tzFlags,
	}, nil, true
}

// localTime finds the first plausible clock expression in the note and
// anchors it to anchor's calendar date.
func (x *Extractor) localTime(note string, anchor time.Time) (time.Time, []model.Flag, error) {
	for _, m := range timeExpr.FindAllStringSubmatch(note, -1) {
		hourText, minText, ampm, abbrev := m[1], m[2], m[3], m[4]
		if minText == "" && ampm == "" {
			continue // a bare number is not a time
		}
		hour, err := strconv.Atoi(hourText)
		if err != nil {
			continue
		}
		min := 0
		if minText != "" {
			if min, err = strconv.Atoi(minText); err != nil || min > 59 {
				continue
			}
		}
		switch strings.ToLower(strings.ReplaceAll(ampm, ".", "")) {
		case "am":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour == 12 {
				hour = 0
			}
		case "pm":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour != 12 {
				hour += 12
			}
		default:
			if hour > 23 {
				continue
			}
		}

		loc, explicit := timeparse.Location(abbrev, x.loc)
		var flags []model.Flag
		if !explicit {
			// Non-explicit zones are an audit concern, not a guess we hide.
			flags = []model.Flag{model.FlagTZAssumed}
		}

		day := anchor.In(loc)
		at := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, loc)
		return at, flags, nil
	}
	return time.Time{}, nil, errUnparseable
}

var errUnparseable = errors.New("marker: no parseable time in annotation")
