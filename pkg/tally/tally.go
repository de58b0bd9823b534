package tally

import (
	"fmt"
	"time"

	"github.com/ntari/tally/internal/engine"
	"github.com/ntari/tally/internal/model"
)

// Analyzer is a volunteer session reconciliation engine. Create once,
// reuse across batches; it holds configuration only, never batch state.
type Analyzer struct {
	engine *engine.Engine
}

// New creates an Analyzer. Configuration is validated here: an
// unrecognized quality standard, an unknown timezone, or a missing
// required alias table fails fast rather than producing a partial
// report later.
func New(opts ...Option) (*Analyzer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	loc, err := time.LoadLocation(o.defaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("tally: unknown timezone %q: %w", o.defaultTimezone, err)
	}

	eng, err := engine.New(engine.Config{
		QualityStandard: o.qualityStandard,
		Aliases:         o.aliases,
		RequireAliases:  o.requireAliases,
		DefaultLocation: loc,
	}, o.logger)
	if err != nil {
		return nil, fmt.Errorf("tally: %w", err)
	}
	return &Analyzer{engine: eng}, nil
}

// Analyze reconstructs sessions from one batch of rows and returns the
// aggregated report. Malformed rows degrade per-row; Analyze fails only
// on conditions that would make the whole result meaningless.
func (a *Analyzer) Analyze(rows []Row) (*Report, error) {
	raws := make([]model.RawRow, len(rows))
	for i, r := range rows {
		raws[i] = model.RawRow{
			Index:     i,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			UserID:    r.UserID,
			TimeIn:    r.TimeIn,
			TimeOut:   r.TimeOut,
			Notes:     r.Notes,
		}
	}
	analysis, err := a.engine.Analyze(raws)
	if err != nil {
		return nil, fmt.Errorf("tally: %w", err)
	}
	return reportFromAnalysis(analysis), nil
}
