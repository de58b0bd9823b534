// Package sqlite loads rows from a SQLite export of the time-tracking
// database, the shape produced by the platform's backup tooling.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite" // CGO-free SQLite

	"github.com/ntari/tally/internal/loader"
	"github.com/ntari/tally/internal/model"
)

func init() {
	loader.Register("sqlite", func() loader.Loader {
		return &Loader{}
	})
}

const defaultTable = "time_entries"

// Table names come from configuration; identifiers cannot be
// placeholder-bound, so they are validated instead.
var validTable = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Loader reads volunteer time entries from cfg.Path. The table must
// expose first_name, last_name, user_id, time_in, time_out, notes;
// timestamp columns may be NULL.
type Loader struct{}

// Load fetches every entry, ordered by rowid so batch indices are
// stable across runs.
func (l *Loader) Load(ctx context.Context, cfg loader.Config) ([]model.RawRow, error) {
	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	if !validTable.MatchString(table) {
		return nil, fmt.Errorf("sqlite loader: invalid table name %q", table)
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite loader: open %s: %w", cfg.Path, err)
	}
	defer db.Close()

	query := fmt.Sprintf(
		"SELECT first_name, last_name, user_id, time_in, time_out, notes FROM %s ORDER BY rowid", table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite loader: query %s: %w", table, err)
	}
	defer rows.Close()

	var out []model.RawRow
	index := 0
	for rows.Next() {
		var first, last, userID sql.NullString
		var timeIn, timeOut, notes sql.NullString
		if err := rows.Scan(&first, &last, &userID, &timeIn, &timeOut, &notes); err != nil {
			return nil, fmt.Errorf("sqlite loader: scan row %d: %w", index, err)
		}
		out = append(out, model.RawRow{
			Index:     index,
			FirstName: first.String,
			LastName:  last.String,
			UserID:    userID.String,
			TimeIn:    timeIn.String,
			TimeOut:   timeOut.String,
			Notes:     notes.String,
		})
		index++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite loader: %w", err)
	}
	return out, nil
}
