package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ntari/tally/internal/model"
	"github.com/ntari/tally/internal/output"
)

// Output writes the JSON-encoded analysis to stdout.
type Output struct {
	w         io.Writer
	verbosity output.Verbosity
	pretty    bool
}

// New creates a stdout Output with verbosity-aware field omission and
// optional pretty-printed JSON.
func New(verbosity output.Verbosity, pretty bool) *Output {
	return &Output{w: os.Stdout, verbosity: verbosity, pretty: pretty}
}

func (o *Output) Write(_ context.Context, analysis *model.Analysis) error {
	enc := json.NewEncoder(o.w)
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output.Format(analysis, o.verbosity)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
