// Package aggregate sums included hours per identity, computes the
// trailing recent-activity window, and ranks active identities.
package aggregate

import (
	"sort"
	"time"

	"github.com/ntari/tally/internal/model"
)

// WindowDays is the span of the recent-activity window.
const WindowDays = 7

// Window computes the trailing window from the maximum timestamp in the
// batch — the dataset defines its own "present", not the wall clock.
// ok is false when the batch holds no events.
func Window(events []model.Event) (model.Window, bool) {
	var max time.Time
	for _, ev := range events {
		if ev.Timestamp.After(max) {
			max = ev.Timestamp
		}
	}
	if max.IsZero() {
		return model.Window{}, false
	}
	return model.Window{
		Start: max.Add(-WindowDays * 24 * time.Hour),
		End:   max,
	}, true
}

// Totals fills one identity's aggregates from its sessions: included
// hours, session count, and hours whose session start falls within the
// recent window. Sessions are marked InWindow as a side effect so
// reporting does not recompute the bound.
func Totals(r *model.IdentityResult, w model.Window) {
	r.TotalHours = 0
	r.WindowHours = 0
	r.SessionCount = 0
	for i := range r.Sessions {
		s := &r.Sessions[i]
		s.InWindow = !s.Start.Timestamp.IsZero() && w.Contains(s.Start.Timestamp)
		if !s.Included {
			continue
		}
		r.TotalHours += s.Hours
		r.SessionCount++
		if s.InWindow {
			r.WindowHours += s.Hours
		}
	}
}

// Rank orders identities with recent activity by descending window
// hours. The sort is stable — ties keep first-seen encounter order —
// and ranks are 1-based and contiguous.
func Rank(results []*model.IdentityResult) []model.RankEntry {
	var active []*model.IdentityResult
	for _, r := range results {
		if r.WindowHours > 0 {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].WindowHours > active[j].WindowHours
	})
	ranking := make([]model.RankEntry, len(active))
	for i, r := range active {
		ranking[i] = model.RankEntry{Rank: i + 1, Name: r.Name, Hours: r.WindowHours}
	}
	return ranking
}
