// Command bazi computes Four Pillars natal charts, yearly context
// overlays, and solar-term calendars from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose   bool
	rulesPath string

	cfg    Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bazi",
	Short: "Four Pillars (BaZi) chart calculator",
	Long: `bazi derives sexagenary pillars from a birth instant and reads the
chart symbolically: Ten-Gods classification against the Day Master,
branch interactions, element distribution, and the luck-pillar
timeline.

All astronomy is computed locally; no network access is needed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		config := zap.NewProductionConfig()
		if verbose || cfg.Debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "YAML file overriding debated interaction outcomes")

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(termsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
