package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunarium-dev/ganzhi/chart"
	"github.com/lunarium-dev/ganzhi/chartstore"
	"github.com/lunarium-dev/ganzhi/solarterm"
)

var (
	contextYear int
	contextJSON bool
)

var contextCmd = &cobra.Command{
	Use:   "context <chart-name>",
	Short: "Overlay a calendar year onto an archived chart",
	Long: `Load a previously saved chart and overlay the annual pillar of a
calendar year: its Ten-God relation to the Day Master and the branch
interactions it activates against the natal branches.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().IntVar(&contextYear, "year", 0, "calendar year to overlay (default: current year)")
	contextCmd.Flags().BoolVar(&contextJSON, "json", false, "emit the overlay as JSON")
}

func runContext(cmd *cobra.Command, args []string) error {
	year := contextYear
	if year == 0 {
		year = time.Now().Year()
	}

	store, err := chartstore.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Load(context.Background(), args[0])
	if err != nil {
		return err
	}
	logger.Debug("chart loaded",
		zap.String("name", rec.Name),
		zap.Int64("id", rec.ID),
		zap.Int("year", year))

	tables, err := loadTables(rulesPath)
	if err != nil {
		return err
	}
	engine := chart.NewEngine(nil, solarterm.NewCalendar(), tables)
	overlay, err := engine.AnnualOverlay(&rec.Chart, year)
	if err != nil {
		return fmt.Errorf("annual overlay: %w", err)
	}

	if contextJSON {
		return printJSON(cmd, overlay)
	}

	fmt.Printf("Chart %q, year %d\n\n", rec.Name, year)
	fmt.Printf("Annual pillar: %s\n", overlay.AnnualPillar.String())
	fmt.Printf("Ten God vs Day Master: %s\n", overlay.AnnualTenGod)
	if len(overlay.AnnualInteractions) == 0 {
		fmt.Println("No annual-natal branch interactions.")
		return nil
	}
	fmt.Println("\nAnnual-natal interactions:")
	for _, r := range overlay.AnnualInteractions {
		fmt.Printf("  %s: %v\n", r.Type, r.Branches)
	}
	return nil
}
