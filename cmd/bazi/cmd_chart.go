package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunarium-dev/ganzhi/chart"
	"github.com/lunarium-dev/ganzhi/chartstore"
	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/luck"
	"github.com/lunarium-dev/ganzhi/solarterm"
)

var (
	chartDate      string
	chartHour      int
	chartGender    string
	chartLongitude float64
	chartMeridian  float64
	chartSaveName  string
	chartJSON      bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a natal chart from a birth instant",
	Long: `Compute the four natal pillars, Ten-Gods map, branch interactions,
element distribution, and luck-pillar timeline.

When --longitude is given the clock hour is first corrected to local
mean solar time against --meridian (the timezone's standard meridian,
UTC offset times 15).`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartDate, "date", "", "birth date, YYYY-MM-DD (required)")
	chartCmd.Flags().IntVar(&chartHour, "hour", 12, "birth hour of day, 0-23")
	chartCmd.Flags().StringVar(&chartGender, "gender", "", "male or female (required)")
	chartCmd.Flags().Float64Var(&chartLongitude, "longitude", 0, "birthplace longitude, east positive")
	chartCmd.Flags().Float64Var(&chartMeridian, "meridian", 120, "standard meridian of the birth timezone")
	chartCmd.Flags().StringVar(&chartSaveName, "save", "", "archive the chart under this name")
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "emit the full chart as JSON")
	_ = chartCmd.MarkFlagRequired("date")
	_ = chartCmd.MarkFlagRequired("gender")
}

func runChart(cmd *cobra.Command, args []string) error {
	birth, err := time.Parse("2006-01-02", chartDate)
	if err != nil {
		return fmt.Errorf("parse --date: %w", err)
	}
	if chartHour < 0 || chartHour > 23 {
		return fmt.Errorf("--hour must be between 0 and 23")
	}
	gender := luck.Gender(chartGender)
	if gender != luck.Male && gender != luck.Female {
		return luck.ErrBadGender
	}

	at := time.Date(birth.Year(), birth.Month(), birth.Day(), chartHour, 0, 0, 0, time.UTC)
	if cmd.Flags().Changed("longitude") {
		at = solarterm.ApplyLMT(at, chartLongitude, chartMeridian)
		logger.Debug("applied local mean time correction",
			zap.Float64("longitude", chartLongitude),
			zap.Float64("meridian", chartMeridian),
			zap.Float64("offset_minutes", solarterm.LMTOffset(chartLongitude, chartMeridian)))
	}

	tables, err := loadTables(rulesPath)
	if err != nil {
		return err
	}

	in := chart.Input{
		Year:             at.Year(),
		Month:            int(at.Month()),
		Day:              at.Day(),
		HourLMT:          at.Hour(),
		Gender:           gender,
		MonthBranchIndex: solarterm.MonthBranchAt(at),
	}
	engine := chart.NewEngine(nil, solarterm.NewCalendar(), tables)
	natal, err := engine.Compute(in)
	if err != nil {
		return fmt.Errorf("compute chart: %w", err)
	}
	logger.Debug("chart computed",
		zap.String("day_master", natal.DayMaster.Stem),
		zap.Int("month_branch", in.MonthBranchIndex))

	if chartSaveName != "" {
		store, err := chartstore.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Save(context.Background(), chartSaveName, in, natal)
		if err != nil {
			return err
		}
		fmt.Printf("Saved chart %q (id %d) to %s\n", chartSaveName, id, cfg.DBPath)
	}

	if chartJSON {
		return printJSON(cmd, natal)
	}
	printChartSummary(natal)
	return nil
}

func printChartSummary(natal *chart.Chart) {
	fmt.Printf("Day Master: %s\n\n", natal.DayMaster.Description)
	for _, p := range natal.Pillars.List() {
		fmt.Printf("  %-6s %s\n", string(p.Position)+":", p.String())
	}

	fmt.Println("\nTen Gods:")
	for _, pg := range natal.TenGods {
		fmt.Printf("  %-6s %s\n", string(pg.Position)+":", pg.TenGod)
	}

	fmt.Println("\nElement distribution:")
	for _, el := range cycle.Elements {
		fmt.Printf("  %-6s %.1f\n", el, natal.ElementDistribution[el])
	}

	if len(natal.NatalInteractions) > 0 {
		fmt.Println("\nBranch interactions:")
		for _, rec := range natal.NatalInteractions {
			fmt.Printf("  %s: %v\n", rec.Type, rec.Branches)
		}
	}

	fmt.Println("\nLuck pillars:")
	for _, lp := range natal.LuckPillars {
		fmt.Printf("  %s\n", lp.Description)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
