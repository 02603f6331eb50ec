package chart

import (
	"errors"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/interact"
	"github.com/lunarium-dev/ganzhi/luck"
	"github.com/lunarium-dev/ganzhi/pillar"
	"github.com/lunarium-dev/ganzhi/tengod"
)

// ErrNilChart indicates an overlay request against a nil chart.
var ErrNilChart = errors.New("chart: nil chart")

// Input is one chart computation request.
type Input struct {
	// Year, Month, Day form the civil birth date.
	Year  int
	Month int
	Day   int
	// HourLMT is the birth hour (0–23) already corrected to local mean
	// solar time; see solarterm.ApplyLMT.
	HourLMT int
	// Gender selects the luck-pillar traversal direction.
	Gender luck.Gender
	// MonthBranchIndex is the solar-term month branch (0–11), resolved
	// upstream from the Sun's ecliptic longitude.
	MonthBranchIndex int
	// YearBoundary optionally overrides the Li Chun civil date for the
	// birth year; nil means the conventional Feb 4.
	YearBoundary *pillar.YearOptions
}

// DayMaster describes the day pillar's stem, the reference point of all
// relational classification.
type DayMaster struct {
	Stem        string         `json:"stem"`
	Chinese     string         `json:"chinese"`
	Element     cycle.Element  `json:"element"`
	Polarity    cycle.Polarity `json:"polarity"`
	Description string         `json:"description"`
}

// Pillars is the natal pillar set keyed by position.
type Pillars struct {
	Year  pillar.Pillar `json:"year"`
	Month pillar.Pillar `json:"month"`
	Day   pillar.Pillar `json:"day"`
	Hour  pillar.Pillar `json:"hour"`
}

// List returns the pillars in year, month, day, hour order.
func (p Pillars) List() []pillar.Pillar {
	return []pillar.Pillar{p.Year, p.Month, p.Day, p.Hour}
}

// Chart is the full natal profile. Assembled per request, never
// mutated; persistence is an external concern.
type Chart struct {
	DayMaster           DayMaster                 `json:"day_master"`
	Pillars             Pillars                   `json:"pillars"`
	TenGods             []tengod.PillarGods       `json:"ten_gods"`
	ElementDistribution map[cycle.Element]float64 `json:"element_distribution"`
	NatalInteractions   []interact.Record         `json:"natal_branch_interactions"`
	LuckPillars         []luck.Pillar             `json:"luck_pillars"`
}

// Overlay is the interaction profile of one transit year against a
// natal chart.
type Overlay struct {
	AnnualPillar pillar.Pillar `json:"annual_pillar"`
	AnnualTenGod tengod.God    `json:"annual_ten_god"`
	// AnnualInteractions keeps only records involving the annual
	// branch; AllInteractions is the unfiltered natal+annual scan.
	AnnualInteractions []interact.Record `json:"annual_interactions_with_natal"`
	AllInteractions    []interact.Record `json:"all_active_interactions"`
}
