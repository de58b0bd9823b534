// Package httpsrc loads a TSV export over HTTP, for deployments where
// the time-tracking platform publishes a periodic export URL.
package httpsrc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ntari/tally/internal/loader"
	"github.com/ntari/tally/internal/loader/httpclient"
	"github.com/ntari/tally/internal/loader/tsv"
	"github.com/ntari/tally/internal/model"
)

func init() {
	loader.Register("http", func() loader.Loader {
		return &Loader{}
	})
}

// Loader fetches cfg.Endpoint and parses the body as TSV.
type Loader struct{}

// Load downloads and parses the export in one shot.
func (l *Loader) Load(ctx context.Context, cfg loader.Config) ([]model.RawRow, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("http loader: endpoint not configured")
	}
	client := httpclient.New(cfg.APIKey)
	body, err := client.Get(ctx, cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("http loader: fetch %s: %w", cfg.Endpoint, err)
	}
	rows, err := tsv.Parse(bytes.NewReader(body), cfg.Header)
	if err != nil {
		return nil, fmt.Errorf("http loader: parse %s: %w", cfg.Endpoint, err)
	}
	return rows, nil
}
