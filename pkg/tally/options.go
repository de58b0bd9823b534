package tally

import (
	"go.uber.org/zap"
)

type options struct {
	qualityStandard float64
	aliases         map[string]string
	requireAliases  bool
	defaultTimezone string
	logger          *zap.Logger
}

// Option configures an Analyzer.
type Option func(*options)

// WithQualityStandard sets the filtering threshold τ in hours.
// Recognized values: 999 (disabled), 8, 4, 2, 1. Default: 8.
func WithQualityStandard(hours float64) Option {
	return func(o *options) {
		o.qualityStandard = hours
	}
}

// WithAliases supplies the alias table mapping observed display names
// (any case) to canonical names.
func WithAliases(table map[string]string) Option {
	return func(o *options) {
		o.aliases = table
	}
}

// WithRequireAliases makes New fail when no alias table is supplied.
// Use this in deployments where name variants are known to exist.
func WithRequireAliases() Option {
	return func(o *options) {
		o.requireAliases = true
	}
}

// WithDefaultTimezone sets the IANA zone used for timestamps and note
// markers that carry no zone of their own. Default: UTC.
func WithDefaultTimezone(name string) Option {
	return func(o *options) {
		o.defaultTimezone = name
	}
}

// WithLogger attaches a zap logger for per-row diagnostics. Default:
// no logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		qualityStandard: 8,
		defaultTimezone: "UTC",
	}
}
