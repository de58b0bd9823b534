package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ntari/tally/internal/model"
	"github.com/ntari/tally/internal/output"
)

// Output writes the analysis as a JSON document to a file. The write is
// atomic: a temp file in the same directory is renamed over the target,
// so a crashed run never leaves a half-written report behind.
type Output struct {
	path      string
	verbosity output.Verbosity
	pretty    bool
}

// New creates a file output targeting path.
func New(path string, verbosity output.Verbosity, pretty bool) *Output {
	return &Output{path: path, verbosity: verbosity, pretty: pretty}
}

func (o *Output) Write(_ context.Context, analysis *model.Analysis) error {
	dir := filepath.Dir(o.path)
	tmp, err := os.CreateTemp(dir, ".tally-*.json")
	if err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output.Format(analysis, o.verbosity)); err != nil {
		tmp.Close()
		return fmt.Errorf("file output: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	if err := os.Rename(tmp.Name(), o.path); err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
