package luck

import (
	"errors"
	"time"

	"github.com/lunarium-dev/ganzhi/pillar"
)

var (
	// ErrBadGender indicates a gender outside {male, female}; the
	// traversal direction is undefined without one.
	ErrBadGender = errors.New("luck: gender must be male or female")

	// ErrBadIndex indicates a stem or branch index outside its cycle.
	ErrBadIndex = errors.New("luck: cyclic index out of range")

	// ErrNoSource indicates a Generator built without a BoundarySource.
	ErrNoSource = errors.New("luck: boundary source is required")

	// ErrBoundaryUnavailable indicates the boundary collaborator failed
	// to resolve a solar-term instant near the birth date.
	ErrBoundaryUnavailable = errors.New("luck: solar boundary unavailable")
)

// Gender selects the traversal direction together with the year stem's
// polarity.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// BoundarySource resolves the nearest solar-term boundary to a
// reference instant, expressed as an astronomical day count (Julian
// Day, UT). Implementations must cover [year-1, year+1] around the
// given calendar year; the search direction is next when forward is
// true, previous otherwise.
//
// Package solarterm provides the standard implementation; tests may
// inject a fixed stub.
type BoundarySource interface {
	FindBoundary(referenceDay float64, calendarYear int, forward bool) (float64, error)
}

// Params are the inputs of one timeline computation.
type Params struct {
	// YearStemIndex is the natal year pillar's stem index (0–9); its
	// parity is the chart's polarity (even = yang).
	YearStemIndex int
	// MonthStemIndex and MonthBranchIndex anchor the walk at the natal
	// month pillar.
	MonthStemIndex   int
	MonthBranchIndex int
	// Gender combines with the year polarity to set the direction.
	Gender Gender
	// Birth is the birth instant the start age is measured from.
	Birth time.Time
}

// Options configures timeline generation.
type Options struct {
	// Count is the number of decade pillars to generate. Default 10.
	Count int
}

// DefaultOptions returns the conventional 10-period timeline.
func DefaultOptions() Options {
	return Options{Count: 10}
}

// Pillar is one decade period of the timeline.
type Pillar struct {
	// Number is the 1-based position in the sequence.
	Number int `json:"number"`
	// Pillar carries the stem/branch pair, tagged "luck-<Number>".
	Pillar pillar.Pillar `json:"pillar"`
	// AgeStart and AgeEnd bound the decade, inclusive.
	AgeStart int `json:"age_start"`
	AgeEnd   int `json:"age_end"`
	// Description is the rendered "LP3: Ren Wu (Horse) ages 27-36" form.
	Description string `json:"description"`
}
