// Package testdata embeds a small labeled volunteer time export used by
// engine and pipeline tests.
package testdata

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/ntari/tally/internal/loader/tsv"
	"github.com/ntari/tally/internal/model"
)

//go:embed corpus.tsv
var corpusTSV []byte

// Corpus parses the embedded export. It covers the interesting shapes:
// alias variants, split in/out rows, an explicit clock-out correction,
// a system row, an unparseable timestamp, and an unclosed session.
func Corpus() ([]model.RawRow, error) {
	rows, err := tsv.Parse(bytes.NewReader(corpusTSV), true)
	if err != nil {
		return nil, fmt.Errorf("parse corpus.tsv: %w", err)
	}
	return rows, nil
}
