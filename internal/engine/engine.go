// Package engine orchestrates the reconciliation pipeline: normalize →
// resolve identities → extract markers → build sessions → validate →
// filter → aggregate. The run is a pure function of its inputs: the
// same rows, alias table, and threshold always produce an identical
// Analysis.
package engine

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ntari/tally/internal/engine/aggregate"
	"github.com/ntari/tally/internal/engine/filter"
	"github.com/ntari/tally/internal/engine/identity"
	"github.com/ntari/tally/internal/engine/marker"
	"github.com/ntari/tally/internal/engine/normalize"
	"github.com/ntari/tally/internal/engine/sessionize"
	"github.com/ntari/tally/internal/engine/validate"
	"github.com/ntari/tally/internal/model"
)

// Config holds the engine's run parameters. The quality standard is an
// explicit parameter threaded through every call, never module state.
type Config struct {
	QualityStandard float64           // τ: 999, 8, 4, 2 or 1 hours
	Aliases         map[string]string // lower-cased display name → canonical name
	RequireAliases  bool              // abort when no alias table is supplied
	DefaultLocation *time.Location    // zone for ambiguous local-time parses
}

// Engine reconstructs volunteer sessions from a batch of raw rows.
// Safe for concurrent use; per-identity state machines are independent.
type Engine struct {
	filter  filter.Filter
	norm    *normalize.Normalizer
	ident   *identity.Resolver
	extract *marker.Extractor
	build   *sessionize.Builder
	log     *zap.Logger
}

// New creates an Engine, validating configuration up front. An
// unrecognized quality standard or a missing-but-required alias table is
// fatal: no partial Analysis is ever produced from bad configuration.
func New(cfg Config, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	f, err := filter.New(cfg.QualityStandard)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if cfg.RequireAliases && len(cfg.Aliases) == 0 {
		return nil, fmt.Errorf("engine: alias table required but not provided")
	}
	loc := cfg.DefaultLocation
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		filter:  f,
		norm:    normalize.New(loc, log),
		ident:   identity.New(cfg.Aliases, log),
		extract: marker.New(loc, log),
		build:   sessionize.New(log),
		log:     log,
	}, nil
}

// Analyze runs the full pipeline over one batch. Malformed rows degrade
// gracefully per-row; a well-configured engine always returns a result.
func (e *Engine) Analyze(rows []model.RawRow) (*model.Analysis, error) {
	events, kept := e.norm.Normalize(rows)
	window, _ := aggregate.Window(events)
	groups := e.ident.Resolve(kept, events)

	// Identity groups share nothing, so session building fans out; the
	// indexed slice keeps assembly in first-seen order regardless of
	// which worker finishes first.
	results := make([]*model.IdentityResult, len(groups))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, grp := range groups {
		g.Go(func() error {
			results[i] = e.processIdentity(grp, window)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	return e.assemble(results, window, len(kept)), nil
}

// processIdentity runs one identity's events through marker extraction,
// pairing, validation, filtering, and totals.
func (e *Engine) processIdentity(grp identity.Group, window model.Window) *model.IdentityResult {
	// Annotations live on rows, so extraction runs once per source row:
	// a row with both timestamps still yields at most one override.
	augmented := make([]model.Event, 0, len(grp.Events))
	for _, row := range byRow(grp.Events) {
		override, fallback, ok := e.extract.Extract(row)
		for _, ev := range row {
			if len(fallback) > 0 {
				ev.Flags = append(append([]model.Flag(nil), ev.Flags...), fallback...)
			}
			augmented = append(augmented, ev)
		}
		if ok {
			augmented = append(augmented, override)
		}
	}

	sessions := e.build.Build(augmented)

	r := &model.IdentityResult{
		Key:     grp.Identity.Key,
		Name:    grp.Identity.Name,
		Aliases: grp.Identity.Aliases,
	}
	for i := range sessions {
		s := &sessions[i]
		s.Identity = grp.Identity.Name
		validate.Session(s)
		if e.filter.Apply(s) {
			r.Filtered = append(r.Filtered, *s)
			continue
		}
		r.Sessions = append(r.Sessions, *s)
	}

	aggregate.Totals(r, window)
	validate.Weekly(r)
	return r
}

// assemble builds the immutable Analysis from per-identity results,
// merging identities whose canonical names coincide.
func (e *Engine) assemble(results []*model.IdentityResult, window model.Window, entries int) *model.Analysis {
	perIdentity := make(map[string]*model.IdentityResult, len(results))
	var order []string
	var merged []*model.IdentityResult

	for _, r := range results {
		existing, ok := perIdentity[r.Name]
		if !ok {
			perIdentity[r.Name] = r
			order = append(order, r.Name)
			merged = append(merged, r)
			continue
		}
		// Two identifiers resolved to one canonical name: one person,
		// two accounts. Fold the later group in and re-derive totals.
		existing.Sessions = append(existing.Sessions, r.Sessions...)
		existing.Filtered = append(existing.Filtered, r.Filtered...)
		existing.Aliases = mergeAliases(existing.Aliases, r.Aliases)
		aggregate.Totals(existing, window)
		existing.Flags = nil
		validate.Weekly(existing)
	}

	a := &model.Analysis{
		PerIdentity:     perIdentity,
		Order:           order,
		Ranking:         aggregate.Rank(merged),
		Window:          window,
		QualityStandard: e.filter.Tau,
		TotalVolunteers: len(merged),
	}
	a.ActiveVolunteers = len(a.Ranking)
	if !window.End.IsZero() {
		a.Period = fmt.Sprintf("%s to %s",
			window.Start.UTC().Format("2006-01-02"),
			window.End.UTC().Format("2006-01-02"))
	}

	var includedHours, filteredHours float64
	for _, name := range order {
		r := perIdentity[name]
		includedHours += r.TotalHours
		a.DataQuality.ValidSessions += r.SessionCount
		for _, s := range r.Filtered {
			filteredHours += s.Hours
			a.Discarded = append(a.Discarded, model.DiscardedSession{
				Volunteer: r.Name,
				Date:      s.Date,
				Hours:     s.Hours,
				Notes:     s.Notes,
				Reason:    s.Reason,
			})
		}
	}
	a.DataQuality.TotalEntries = entries
	a.DataQuality.FilteredSessions = len(a.Discarded)
	a.DataQuality.FilterRule = e.filter.Rule()
	a.DataQuality.IncludedHours = includedHours
	a.DataQuality.FilteredHours = filteredHours
	a.DataQuality.OriginalHours = includedHours + filteredHours
	if a.DataQuality.OriginalHours > 0 {
		a.DataQuality.ReductionPercent = filteredHours / a.DataQuality.OriginalHours * 100
	}

	e.log.Info("analysis complete",
		zap.Int("entries", entries),
		zap.Int("identities", len(merged)),
		zap.Int("validSessions", a.DataQuality.ValidSessions),
		zap.Int("filteredSessions", a.DataQuality.FilteredSessions),
		zap.Float64("qualityStandard", e.filter.Tau))
	return a
}

// byRow groups an identity's events by source row, preserving the
// order rows first appear.
func byRow(events []model.Event) [][]model.Event {
	idx := make(map[int]int, len(events))
	var rows [][]model.Event
	for _, ev := range events {
		i, ok := idx[ev.RowIndex]
		if !ok {
			i = len(rows)
			idx[ev.RowIndex] = i
			rows = append(rows, nil)
		}
		rows[i] = append(rows[i], ev)
	}
	return rows
}

func mergeAliases(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			a = append(a, s)
		}
	}
	return a
}
