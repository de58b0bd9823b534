// Package tsv loads tab-separated volunteer time exports. Expected
// column order: firstName, lastName, userId, timeIn, timeOut, notes.
// Rows with fewer than three fields are skipped; missing trailing
// fields are treated as empty.
package tsv

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ntari/tally/internal/loader"
	"github.com/ntari/tally/internal/model"
)

const minFields = 3

func init() {
	loader.Register("tsv", func() loader.Loader {
		return &Loader{}
	})
}

// Loader reads a TSV file from cfg.Path.
type Loader struct{}

// Load reads the whole file into raw rows.
func (l *Loader) Load(_ context.Context, cfg loader.Config) ([]model.RawRow, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("tsv loader: %w", err)
	}
	defer f.Close()
	rows, err := Parse(f, cfg.Header)
	if err != nil {
		return nil, fmt.Errorf("tsv loader: %s: %w", cfg.Path, err)
	}
	return rows, nil
}

// Parse converts tab-separated text into raw rows. Blank lines are
// skipped; when header is true the first non-blank line is discarded.
// Row indices count from the start of the data, so diagnostics can
// point back at the source line.
func Parse(r io.Reader, header bool) ([]model.RawRow, error) {
	var rows []model.RawRow
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	skippedHeader := !header
	index := 0
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !skippedHeader {
			skippedHeader = true
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < minFields {
			index++
			continue
		}
		rows = append(rows, model.RawRow{
			Index:     index,
			FirstName: strings.TrimSpace(parts[0]),
			LastName:  strings.TrimSpace(parts[1]),
			UserID:    strings.TrimSpace(parts[2]),
			TimeIn:    field(parts, 3),
			TimeOut:   field(parts, 4),
			Notes:     notes(parts),
		})
		index++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return rows, nil
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return strings.TrimSpace(parts[i])
	}
	return ""
}

// notes joins every column past timeOut, so annotations containing tabs
// survive.
func notes(parts []string) string {
	if len(parts) <= 5 {
		return ""
	}
	return strings.TrimSpace(strings.Join(parts[5:], " "))
}
