package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ntari/tally/internal/config"
	"github.com/ntari/tally/internal/logging"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Logger, initialized before any command runs.
	logger *zap.Logger

	// Effective configuration: env defaults, then file, then flags.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "tally - volunteer time reconciliation engine",
	Long: `tally reconstructs volunteer work sessions from noisy clock-in/clock-out
exports, resolves conflicting time sources, applies configurable quality
filtering, and ranks volunteers by recent activity.

The analysis is a pure function of its input batch: identical rows,
alias table, and quality standard always produce identical output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.LoadFile(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Load()
		}

		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		outputIsStdout := cfg.Output.Format == "stdout"
		logger, err = logging.New(outputIsStdout, level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(standardsCmd)
	rootCmd.AddCommand(sourcesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
