// Package identity groups events by their stable identifier and maps
// free-form name variants to one canonical identity via an alias table.
package identity

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/ntari/tally/internal/model"
)

// Group is one identity's events, ready for session building. Groups
// come back in first-seen identifier order so downstream assembly is
// deterministic.
type Group struct {
	Identity model.CanonicalIdentity
	Events   []model.Event
}

// Resolver canonicalizes identities against an alias table. Lookups are
// Unicode case-folded, so "D BURNETT" and "d burnett" hit the same entry.
type Resolver struct {
	table map[string]string // folded alias → canonical display name
	fold  cases.Caser
	log   *zap.Logger
}

// New creates a Resolver. table maps observed display names (any case)
// to canonical names; nil means no alias table.
func New(table map[string]string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	fold := cases.Fold()
	folded := make(map[string]string, len(table))
	for alias, canonical := range table {
		folded[fold.String(alias)] = canonical
	}
	return &Resolver{table: folded, fold: cases.Fold(), log: log}
}

// Resolve groups events by identifier and picks each group's canonical
// name: the first alias-table hit among observed names, else the first
// observed name verbatim. Groups resolving to an empty or single-rune
// name are unusable data and are dropped (with a diagnostic, not an
// error). Canonicalization is idempotent: a name already canonical in
// the table resolves to itself.
func (r *Resolver) Resolve(rows []model.RawRow, events []model.Event) []Group {
	type bucket struct {
		aliases []string
		seen    map[string]bool
		events  []model.Event
	}
	var order []string
	buckets := make(map[string]*bucket)

	get := func(key string) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{seen: make(map[string]bool)}
			buckets[key] = b
			order = append(order, key)
		}
		return b
	}

	// Observed names come from every surviving row, including rows that
	// produced no events; the alias set is a property of the identifier.
	for _, row := range rows {
		b := get(strings.TrimSpace(row.UserID))
		if name := row.DisplayName(); name != "" && !b.seen[name] {
			b.seen[name] = true
			b.aliases = append(b.aliases, name)
		}
	}
	for _, ev := range events {
		b := get(ev.IdentityKey)
		b.events = append(b.events, ev)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		name := r.canonical(b.aliases)
		if len([]rune(name)) < 2 {
			r.log.Debug("dropping identity with unusable canonical name",
				zap.String("key", key),
				zap.Strings("aliases", b.aliases))
			continue
		}
		groups = append(groups, Group{
			Identity: model.CanonicalIdentity{Key: key, Name: name, Aliases: b.aliases},
			Events:   b.events,
		})
	}
	return groups
}

// canonical returns the first alias-table hit among the observed names,
// else the first observed name.
func (r *Resolver) canonical(aliases []string) string {
	for _, alias := range aliases {
		if canonical, ok := r.table[r.fold.String(alias)]; ok {
			return canonical
		}
	}
	if len(aliases) > 0 {
		return aliases[0]
	}
	return ""
}

