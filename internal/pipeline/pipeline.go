// Package pipeline connects a loader, the engine, and an output into a
// one-shot batch run: the entire input is read before processing begins
// and the whole pipeline runs to completion as one pass.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ntari/tally/internal/engine"
	"github.com/ntari/tally/internal/loader"
	"github.com/ntari/tally/internal/model"
	"github.com/ntari/tally/internal/output"
)

// Pipeline wires the components of one analysis run.
type Pipeline struct {
	loader loader.Loader
	engine *engine.Engine
	output output.Output
	log    *zap.Logger
}

// New creates a Pipeline from the given components.
func New(ld loader.Loader, eng *engine.Engine, out output.Output, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{loader: ld, engine: eng, output: out, log: log}
}

// Run loads the batch, analyzes it, and writes the result.
func (p *Pipeline) Run(ctx context.Context, cfg loader.Config) (*model.Analysis, error) {
	rows, err := p.loader.Load(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline load: %w", err)
	}
	p.log.Info("loaded rows", zap.Int("count", len(rows)), zap.String("source", cfg.Source))

	analysis, err := p.engine.Analyze(rows)
	if err != nil {
		return nil, fmt.Errorf("pipeline analyze: %w", err)
	}

	if err := p.output.Write(ctx, analysis); err != nil {
		return nil, fmt.Errorf("pipeline output: %w", err)
	}
	return analysis, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
