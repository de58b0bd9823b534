// Package sessionize pairs one identity's chronologically ordered clock
// events into sessions and resolves each boundary among its competing
// time candidates.
//
// Pairing is intentionally greedy, left-to-right, and deterministic: no
// multi-hypothesis matching. Events from the same source row compete for
// the same boundary rather than pairing against each other, so an
// explicit "clocked out at 10:30 PM" annotation corrects the boundary of
// the session its row belongs to instead of opening a phantom one.
package sessionize

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ntari/tally/internal/model"
)

// Builder runs the per-identity pairing state machine. Each identity's
// machine is independent; callers may run builders for different
// identities in parallel.
type Builder struct {
	log *zap.Logger
}

// New creates a Builder.
func New(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

// bundle is all events originating from one raw row: the automatic
// timestamps plus any note overrides. In-kind events are start
// candidates, out-kind events end candidates for the same boundary.
type bundle struct {
	rowIndex int
	ins      []model.Event
	outs     []model.Event
	anchor   model.Event // earliest automatic event, used for ordering
}

// hasAutoOut reports whether the row carried a real clock-out field.
// Out overrides without one are deferred: they correct a later end or
// close a trailing start, they do not end the session on their own row.
func (b *bundle) hasAutoOut() bool {
	for _, e := range b.outs {
		if e.Weight == model.WeightAutomatic {
			return true
		}
	}
	return false
}

// pending is an open session start awaiting its end.
type pending struct {
	ins          []model.Event // start boundary candidates
	deferredOuts []model.Event // end candidates carried by the start row
}

// Build pairs events into sessions. Completed pairs become sessions with
// resolved boundaries; an in-event arriving over an open start emits the
// previous start as a MISSING_END incomplete session; an out-event with
// no open start becomes an ORPHAN_END zero-duration diagnostic; a
// trailing open start is emitted incomplete unless a deferred explicit
// out can close it.
func (b *Builder) Build(events []model.Event) []model.Session {
	if len(events) == 0 {
		return nil
	}

	bundles := bundleByRow(events)
	var sessions []model.Session
	var open *pending

	for _, bd := range bundles {
		if len(bd.ins) > 0 {
			if open != nil {
				sessions = append(sessions, b.closeOrAbandon(open))
			}
			open = &pending{ins: bd.ins}
			if !bd.hasAutoOut() {
				open.deferredOuts = bd.outs
				bd.outs = nil
			}
		}
		if len(bd.outs) > 0 {
			if open == nil {
				sessions = append(sessions, orphanEnd(bd.outs))
				continue
			}
			ends := append(append([]model.Event(nil), bd.outs...), open.deferredOuts...)
			sessions = append(sessions, resolve(open.ins, ends))
			open = nil
		}
	}
	if open != nil {
		sessions = append(sessions, b.closeOrAbandon(open))
	}
	return sessions
}

// closeOrAbandon finishes an open start: a deferred explicit out closes
// it as a regular session, otherwise it is emitted incomplete.
func (b *Builder) closeOrAbandon(open *pending) model.Session {
	if len(open.deferredOuts) > 0 {
		return resolve(open.ins, open.deferredOuts)
	}
	start := pickBoundary(open.ins)
	b.log.Debug("unmatched start",
		zap.String("identity", start.IdentityKey),
		zap.Time("start", start.Timestamp))
	s := model.Session{
		Start:    start,
		Notes:    start.Note,
		Flags:    []model.Flag{model.FlagMissingEnd},
		Included: false,
		Reason:   "Clock-in without matching clock-out",
	}
	s.Stamp()
	return s
}

// orphanEnd records an end with no open start as a zero-duration
// diagnostic, never a billable session.
func orphanEnd(outs []model.Event) model.Session {
	end := pickBoundary(outs)
	s := model.Session{
		End:      end,
		Notes:    end.Note,
		Flags:    append([]model.Flag(nil), end.Flags...),
		Included: false,
		Reason:   "Clock-out without matching clock-in",
	}
	s.Flags = model.AddFlag(s.Flags, model.FlagOrphanEnd)
	s.Stamp()
	return s
}

// bundleByRow groups events by source row and orders bundles by their
// anchor timestamp, automatic events first within a row. The ordering is
// total (ties break on row index) so identical inputs always produce an
// identical session stream.
func bundleByRow(events []model.Event) []*bundle {
	byRow := make(map[int]*bundle)
	var order []*bundle
	for _, ev := range events {
		bd, ok := byRow[ev.RowIndex]
		if !ok {
			bd = &bundle{rowIndex: ev.RowIndex}
			byRow[ev.RowIndex] = bd
			order = append(order, bd)
		}
		if ev.Kind == model.KindIn {
			bd.ins = append(bd.ins, ev)
		} else {
			bd.outs = append(bd.outs, ev)
		}
		if ev.Weight == model.WeightAutomatic &&
			(bd.anchor.Timestamp.IsZero() || ev.Timestamp.Before(bd.anchor.Timestamp)) {
			bd.anchor = ev
		}
	}

	for _, bd := range order {
		if bd.anchor.Timestamp.IsZero() {
			// Row produced only overrides; anchor on the earliest of them.
			for _, e := range append(bd.ins, bd.outs...) {
				if bd.anchor.Timestamp.IsZero() || e.Timestamp.Before(bd.anchor.Timestamp) {
					bd.anchor = e
				}
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		ti, tj := order[i].anchor.Timestamp, order[j].anchor.Timestamp
		if ti.Equal(tj) {
			return order[i].rowIndex < order[j].rowIndex
		}
		return ti.Before(tj)
	})
	return order
}
