package pillar

import (
	"errors"
	"strconv"

	"github.com/lunarium-dev/ganzhi/cycle"
)

var (
	// ErrInvalidDate indicates a calendar date outside the supported
	// Gregorian range or a month/day combination that does not exist.
	ErrInvalidDate = errors.New("pillar: invalid calendar date")

	// ErrInvalidHour indicates an hour outside 0–23.
	ErrInvalidHour = errors.New("pillar: hour out of range")

	// ErrIndexRange indicates a stem index outside 0–9 or a branch
	// index outside 0–11.
	ErrIndexRange = errors.New("pillar: cyclic index out of range")
)

// Position tags a pillar with the time unit it belongs to.
type Position string

const (
	PositionYear   Position = "year"
	PositionMonth  Position = "month"
	PositionDay    Position = "day"
	PositionHour   Position = "hour"
	PositionAnnual Position = "annual"
)

// LuckPosition returns the position tag for the n-th luck pillar
// (1-based): "luck-1", "luck-2", …
func LuckPosition(n int) Position {
	return Position("luck-" + strconv.Itoa(n))
}

// Pillar is one (stem, branch, position) triple. Created per derivation,
// never mutated.
type Pillar struct {
	Stem     cycle.Stem   `json:"stem"`
	Branch   cycle.Branch `json:"branch"`
	Position Position     `json:"position"`
}

// String renders the pillar as "Ji You (yin earth Rooster)".
func (p Pillar) String() string {
	return p.Stem.Name + " " + p.Branch.Name +
		" (" + string(p.Stem.Polarity) + " " + string(p.Stem.Element) + " " + p.Branch.Animal + ")"
}

// Combined returns the short "Stem Branch" form, e.g. "Ji You".
func (p Pillar) Combined() string {
	return p.Stem.Name + " " + p.Branch.Name
}

// YearOptions configures the solar-year boundary for Year.
//
// The sexagenary year begins at Li Chun (Start of Spring), not January 1.
// The civil date of Li Chun drifts between Feb 3 and Feb 5; callers who
// know the exact date for the birth year may override the default Feb 4.
type YearOptions struct {
	// BoundaryMonth is the month of Li Chun. Default 2.
	BoundaryMonth int
	// BoundaryDay is the day of Li Chun. Default 4.
	BoundaryDay int
}

// DefaultYearOptions returns the conventional Feb 4 boundary.
func DefaultYearOptions() YearOptions {
	return YearOptions{BoundaryMonth: 2, BoundaryDay: 4}
}
