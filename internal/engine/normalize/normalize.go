// Package normalize turns raw tabular rows into typed clock events.
// System-generated rows are dropped silently; unparseable timestamps
// are recorded as diagnostics and skipped, never fatal.
package normalize

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ntari/tally/internal/engine/timeparse"
	"github.com/ntari/tally/internal/model"
)

// maxNameLen is the longest plausible human name field, in runes.
// Anything longer is a system artifact.
const maxNameLen = 50

// uuidFragment matches hex runs embedded in identifier fields by the
// upstream system (full UUIDs or their leading groups).
var uuidFragment = regexp.MustCompile(`\b[0-9a-fA-F]{8}(?:-[0-9a-fA-F]{4}){1,3}(?:-[0-9a-fA-F]{12})?\b`)

// Normalizer parses raw rows into automatic clock events.
type Normalizer struct {
	loc *time.Location
	log *zap.Logger
}

// New creates a Normalizer. Zoneless timestamps are interpreted in loc.
func New(loc *time.Location, log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{loc: loc, log: log}
}

// Normalize converts rows into events with automatic source weight.
// Returns the events and the rows that survived system filtering; the
// surviving row count is the batch's data-quality entry total.
func (n *Normalizer) Normalize(rows []model.RawRow) ([]model.Event, []model.RawRow) {
	var events []model.Event
	kept := make([]model.RawRow, 0, len(rows))

	for _, row := range rows {
		if isSystemRow(row) {
			n.log.Debug("dropping system row",
				zap.Int("row", row.Index),
				zap.String("name", row.FirstName))
			continue
		}
		kept = append(kept, row)

		if ev, ok := n.event(row, row.TimeIn, model.KindIn); ok {
			events = append(events, ev)
		}
		if ev, ok := n.event(row, row.TimeOut, model.KindOut); ok {
			events = append(events, ev)
		}
	}
	return events, kept
}

// event builds one automatic event from a timestamp field, if it parses.
func (n *Normalizer) event(row model.RawRow, field string, kind model.EventKind) (model.Event, bool) {
	if strings.TrimSpace(field) == "" {
		return model.Event{}, false
	}
	ts, err := timeparse.Parse(field, n.loc)
	if err != nil {
		n.log.Warn("unparseable timestamp, skipping field",
			zap.Int("row", row.Index),
			zap.String("kind", kind.String()),
			zap.String("value", field))
		return model.Event{}, false
	}
	return model.Event{
		IdentityKey: strings.TrimSpace(row.UserID),
		RowIndex:    row.Index,
		Timestamp:   ts,
		Kind:        kind,
		Weight:      model.WeightAutomatic,
		Note:        strings.TrimSpace(row.Notes),
	}, true
}

// isSystemRow reports whether the row was produced by the platform
// rather than a person: a UUID (whole or fragment) in the name field,
// or a name field beyond any plausible length.
func isSystemRow(row model.RawRow) bool {
	name := strings.TrimSpace(row.FirstName)
	if utf8.RuneCountInString(name) > maxNameLen {
		return true
	}
	if _, err := uuid.Parse(name); err == nil {
		return true
	}
	return uuidFragment.MatchString(name)
}
