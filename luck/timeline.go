package luck

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/pillar"
)

// daysPerSymbolicYear converts elapsed days to the boundary into start
// age: the traditional rule equates 3 days with 1 year.
const daysPerSymbolicYear = 3.0

// Generator produces luck-pillar timelines against an injected catalog
// registry and boundary collaborator. Safe for concurrent use as long
// as the source is.
type Generator struct {
	reg *cycle.Registry
	src BoundarySource
}

// NewGenerator returns a Generator; reg may be nil for cycle.Default().
func NewGenerator(reg *cycle.Registry, src BoundarySource) *Generator {
	if reg == nil {
		reg = cycle.Default()
	}
	return &Generator{reg: reg, src: src}
}

// Forward reports the traversal direction: true iff the year stem is
// yang (even index) and the subject male, or yin and female.
//
// Errors: ErrBadIndex, ErrBadGender.
func Forward(yearStemIndex int, gender Gender) (bool, error) {
	if yearStemIndex < 0 || yearStemIndex >= cycle.StemCount {
		return false, ErrBadIndex
	}
	yang := yearStemIndex%2 == 0
	switch gender {
	case Male:
		return yang, nil
	case Female:
		return !yang, nil
	}
	return false, ErrBadGender
}

// StartAge resolves the nearest solar-term boundary in the traversal
// direction and converts the elapsed days to a starting age, rounding
// half away from zero.
//
// Errors: ErrNoSource, ErrBoundaryUnavailable.
func (g *Generator) StartAge(birth time.Time, forward bool) (int, error) {
	if g.src == nil {
		return 0, ErrNoSource
	}
	birthJD := julianDay0h(birth)
	boundaryJD, err := g.src.FindBoundary(birthJD, birth.Year(), forward)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBoundaryUnavailable, err)
	}
	days := math.Abs(boundaryJD - birthJD)
	return int(math.Round(days / daysPerSymbolicYear)), nil
}

// Timeline generates the decade sequence for p. Pillar i steps the
// month pillar's stem and branch indices by ±(i+1) in the traversal
// direction; its age range is [startAge+10i, startAge+10i+9].
//
// opts may be nil for the default 10 periods.
// Errors: ErrBadIndex, ErrBadGender, ErrNoSource, ErrBoundaryUnavailable.
func (g *Generator) Timeline(p Params, opts *Options) ([]Pillar, error) {
	if p.MonthStemIndex < 0 || p.MonthStemIndex >= cycle.StemCount ||
		p.MonthBranchIndex < 0 || p.MonthBranchIndex >= cycle.BranchCount {
		return nil, ErrBadIndex
	}
	forward, err := Forward(p.YearStemIndex, p.Gender)
	if err != nil {
		return nil, err
	}
	startAge, err := g.StartAge(p.Birth, forward)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	if opts != nil && opts.Count > 0 {
		o.Count = opts.Count
	}

	step := 1
	if !forward {
		step = -1
	}

	out := make([]Pillar, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		sIdx := mod(p.MonthStemIndex+step*(i+1), cycle.StemCount)
		bIdx := mod(p.MonthBranchIndex+step*(i+1), cycle.BranchCount)

		stem, _ := g.reg.StemByIndex(sIdx)
		branch, _ := g.reg.BranchByIndex(bIdx)

		ageStart := startAge + 10*i
		ageEnd := ageStart + 9
		number := i + 1

		out = append(out, Pillar{
			Number: number,
			Pillar: pillar.Pillar{
				Stem:     stem,
				Branch:   branch,
				Position: pillar.LuckPosition(number),
			},
			AgeStart: ageStart,
			AgeEnd:   ageEnd,
			Description: "LP" + strconv.Itoa(number) + ": " +
				stem.Name + " " + branch.Name + " (" + branch.Animal + ") ages " +
				strconv.Itoa(ageStart) + "-" + strconv.Itoa(ageEnd),
		})
	}
	return out, nil
}

// julianDay0h returns the astronomical Julian Day of t's civil date at
// 0h UT (Fliegel–Van Flandern noon value minus half a day).
func julianDay0h(t time.Time) float64 {
	year, month, day := t.Date()
	m := int(month)
	a := (m - 14) / 12
	jdnNoon := (1461*(year+4800+a))/4 +
		(367*(m-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075
	return float64(jdnNoon) - 0.5
}

// mod is the non-negative modulus.
func mod(x, n int) int {
	return ((x % n) + n) % n
}
