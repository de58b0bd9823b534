// Package loader defines the row-source abstraction. Loaders fetch raw
// tabular rows from wherever the volunteer time data lives; everything
// after that is the engine's business.
package loader

import (
	"context"

	"github.com/ntari/tally/internal/model"
)

// Loader defines the interface all row sources must implement.
type Loader interface {
	// Load fetches the full batch of raw rows for one analysis run.
	Load(ctx context.Context, cfg Config) ([]model.RawRow, error)
}

// Config holds source-specific connection settings.
type Config struct {
	Source   string // provider name ("tsv", "http", "sqlite")
	Path     string // file or database path
	Endpoint string // URL for remote sources
	APIKey   string // bearer token for remote sources
	Table    string // table name for database sources
	Header   bool   // first row of tabular input is a header
}
