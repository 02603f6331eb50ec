package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunarium-dev/ganzhi/solarterm"
)

var (
	termsYear int
	termsJSON bool
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List the 12 Jie solar-term dates of a year",
	Long: `Compute the 12 month-opening solar terms (Jie) of a calendar year:
the instant the Sun's apparent longitude crosses each 30-degree
boundary, and the month branch each crossing opens.`,
	RunE: runTerms,
}

func init() {
	termsCmd.Flags().IntVar(&termsYear, "year", 0, "calendar year (default: current year)")
	termsCmd.Flags().BoolVar(&termsJSON, "json", false, "emit the term list as JSON")
}

func runTerms(cmd *cobra.Command, args []string) error {
	year := termsYear
	if year == 0 {
		year = time.Now().Year()
	}

	dates, err := solarterm.NewCalendar().JieDates(year)
	if err != nil {
		return fmt.Errorf("solar terms for %d: %w", year, err)
	}

	if termsJSON {
		return printJSON(cmd, dates)
	}

	fmt.Printf("Jie solar terms, %d (UT)\n\n", year)
	for _, d := range dates {
		h := int(d.HourUTC)
		m := int(math.Round((d.HourUTC - float64(h)) * 60))
		if m == 60 {
			h, m = h+1, 0
		}
		fmt.Printf("  %-10s %04d-%02d-%02d %02d:%02d  opens %s month\n",
			d.Name, d.Year, d.Month, d.Day, h, m, d.Branch)
	}
	return nil
}
