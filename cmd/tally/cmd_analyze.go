package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ntari/tally/internal/config"
	"github.com/ntari/tally/internal/engine"
	"github.com/ntari/tally/internal/loader"
	"github.com/ntari/tally/internal/output"
	"github.com/ntari/tally/internal/output/file"
	"github.com/ntari/tally/internal/output/multi"
	"github.com/ntari/tally/internal/output/stdout"
	"github.com/ntari/tally/internal/output/webhook"
	"github.com/ntari/tally/internal/pipeline"

	// Register row-source implementations.
	_ "github.com/ntari/tally/internal/loader/httpsrc"
	_ "github.com/ntari/tally/internal/loader/sqlite"
	_ "github.com/ntari/tally/internal/loader/tsv"
)

var (
	inputPath      string
	sourceName     string
	standard       string
	aliasPath      string
	timezone       string
	outputPath     string
	webhookURL     string
	prettyJSON     bool
	verbosity      string
	requireAliases bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one reconciliation pass over a volunteer time export",
	Long: `Loads a batch of raw time rows, reconstructs sessions, applies the
selected quality standard, and writes the analysis as JSON.

Quality standards:
  none          999h  no filtering (baseline)
  conservative    8h  filter obvious data quality issues [default]
  moderate        4h  encourage extended-session documentation
  professional    2h  developing professional standards
  strict          1h  full professional time tracking

Example:
  tally analyze --input export.tsv --standard conservative --aliases names.yaml`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file or database path")
	analyzeCmd.Flags().StringVar(&sourceName, "source", "", "row source: tsv, http, sqlite (default from config)")
	analyzeCmd.Flags().StringVarP(&standard, "standard", "s", "", "quality standard preset or threshold hours")
	analyzeCmd.Flags().StringVar(&aliasPath, "aliases", "", "YAML alias table path")
	analyzeCmd.Flags().StringVar(&timezone, "timezone", "", "default IANA timezone for ambiguous local times")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write JSON to file instead of stdout")
	analyzeCmd.Flags().StringVar(&webhookURL, "webhook", "", "also POST the analysis to this URL")
	analyzeCmd.Flags().BoolVar(&prettyJSON, "pretty", false, "pretty-print JSON output")
	analyzeCmd.Flags().StringVar(&verbosity, "verbosity", "", "output detail: minimal, standard, full")
	analyzeCmd.Flags().BoolVar(&requireAliases, "require-aliases", false, "fail when no alias table is supplied")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Flags override file/env configuration.
	if inputPath != "" {
		cfg.Loader.Path = inputPath
	}
	if sourceName != "" {
		cfg.Loader.Source = sourceName
	}
	if aliasPath != "" {
		cfg.Engine.AliasPath = aliasPath
	}
	if timezone != "" {
		cfg.Engine.DefaultTimezone = timezone
	}
	if verbosity != "" {
		cfg.Output.Verbosity = verbosity
	}
	if prettyJSON {
		cfg.Output.Pretty = true
	}
	if requireAliases {
		cfg.Engine.RequireAliases = true
	}
	tau := cfg.Engine.QualityStandard
	if standard != "" {
		var err error
		if tau, err = config.ParseStandard(standard); err != nil {
			return err
		}
	}

	var aliases config.AliasTable
	if cfg.Engine.AliasPath != "" {
		var err error
		if aliases, err = config.LoadAliases(cfg.Engine.AliasPath); err != nil {
			return err
		}
	}

	loc, err := time.LoadLocation(cfg.Engine.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", cfg.Engine.DefaultTimezone, err)
	}

	eng, err := engine.New(engine.Config{
		QualityStandard: tau,
		Aliases:         aliases,
		RequireAliases:  cfg.Engine.RequireAliases,
		DefaultLocation: loc,
	}, logger)
	if err != nil {
		return err
	}

	ctor, err := loader.Get(cfg.Loader.Source)
	if err != nil {
		return err
	}

	out, err := buildOutput()
	if err != nil {
		return err
	}

	p := pipeline.New(ctor(), eng, out, logger)
	defer p.Close()

	logger.Info("starting analysis",
		zap.String("source", cfg.Loader.Source),
		zap.Float64("qualityStandard", tau),
		zap.String("standard", config.StandardName(tau)))

	analysis, err := p.Run(cmd.Context(), loader.Config{
		Source:   cfg.Loader.Source,
		Path:     cfg.Loader.Path,
		Endpoint: cfg.Loader.Endpoint,
		APIKey:   cfg.Loader.APIKey,
		Table:    cfg.Loader.Table,
		Header:   cfg.Loader.Header,
	})
	if err != nil {
		return err
	}

	logger.Info("analysis written",
		zap.Int("volunteers", analysis.TotalVolunteers),
		zap.Int("active", analysis.ActiveVolunteers),
		zap.String("period", analysis.Period))
	return nil
}

// buildOutput assembles the output sink from flags: stdout or file,
// optionally fanned out to a webhook.
func buildOutput() (output.Output, error) {
	v := output.ParseVerbosity(cfg.Output.Verbosity)

	var primary output.Output
	if outputPath != "" {
		primary = file.New(outputPath, v, cfg.Output.Pretty)
	} else if cfg.Output.Format == "file" && cfg.Output.Path != "" {
		primary = file.New(cfg.Output.Path, v, cfg.Output.Pretty)
	} else {
		primary = stdout.New(v, cfg.Output.Pretty)
	}

	if webhookURL == "" {
		return primary, nil
	}
	return multi.New(primary, webhook.New(webhookURL, v)), nil
}
