package pillar

import (
	"time"

	"github.com/lunarium-dev/ganzhi/cycle"
)

// cycleOriginYear is the calendar year whose pillar is Jia Zi, the
// origin of the sexagenary cycle.
const cycleOriginYear = 4

// jdnSexagenaryOffset aligns the integer Julian Day Number at 0h with
// the 60-day stem/branch cycle. Calibrated against two independently
// verified reference dates: 1990-03-15 = Ji You, 1986-06-19 = Jia Zi.
const jdnSexagenaryOffset = 20

// tigerStartStems maps yearStemIndex%5 to the stem index of the Tiger
// month (Five Tigers Escape): Jia/Ji→Bing, Yi/Geng→Wu, Bing/Xin→Geng,
// Ding/Ren→Ren, Wu/Gui→Jia.
var tigerStartStems = [5]int{2, 4, 6, 8, 0}

// ratStartStems maps dayStemIndex%5 to the stem index of the Rat hour
// slot (Five Rats Escape): Jia/Ji→Jia, Yi/Geng→Bing, Bing/Xin→Wu,
// Ding/Ren→Geng, Wu/Gui→Ren.
var ratStartStems = [5]int{0, 2, 4, 6, 8}

// Deriver computes pillars against an injected catalog registry.
// The zero-cost construction makes it cheap to share or recreate;
// all methods are pure and safe for concurrent use.
type Deriver struct {
	reg *cycle.Registry
}

// NewDeriver returns a Deriver over reg; nil selects cycle.Default().
func NewDeriver(reg *cycle.Registry) *Deriver {
	if reg == nil {
		reg = cycle.Default()
	}
	return &Deriver{reg: reg}
}

// Year derives the year pillar for a civil (year, month, day).
//
// Births before the Li Chun boundary belong to the previous sexagenary
// year. Stem and branch then follow the cycle origin:
// stem=(y−4) mod 10, branch=(y−4) mod 12.
//
// opts may be nil for the conventional Feb 4 boundary.
// Errors: ErrInvalidDate.
func (d *Deriver) Year(year, month, day int, opts *YearOptions) (Pillar, error) {
	if err := validateDate(year, month, day); err != nil {
		return Pillar{}, err
	}
	o := DefaultYearOptions()
	if opts != nil {
		o = *opts
		if o.BoundaryMonth == 0 {
			o.BoundaryMonth = 2
		}
		if o.BoundaryDay == 0 {
			o.BoundaryDay = 4
		}
	}

	effective := year
	if month < o.BoundaryMonth || (month == o.BoundaryMonth && day < o.BoundaryDay) {
		effective--
	}

	return d.build(
		mod(effective-cycleOriginYear, cycle.StemCount),
		mod(effective-cycleOriginYear, cycle.BranchCount),
		PositionYear,
	), nil
}

// Month derives the month pillar from the year stem and the month
// branch (Five Tigers Escape). The month branch itself comes from the
// solar-term calendar, not from the civil month number.
//
// Errors: ErrIndexRange.
func (d *Deriver) Month(yearStemIndex, monthBranchIndex int) (Pillar, error) {
	if yearStemIndex < 0 || yearStemIndex >= cycle.StemCount {
		return Pillar{}, ErrIndexRange
	}
	if monthBranchIndex < 0 || monthBranchIndex >= cycle.BranchCount {
		return Pillar{}, ErrIndexRange
	}

	start := tigerStartStems[yearStemIndex%5]
	monthsFromTiger := mod(monthBranchIndex-2, cycle.BranchCount)
	stemIndex := (start + monthsFromTiger) % cycle.StemCount

	return d.build(stemIndex, monthBranchIndex, PositionMonth), nil
}

// Day derives the day pillar from the civil date of t.
//
// The 60-day cycle maps onto the integer Julian Day Number at 0h with a
// fixed offset: sexagenary = (JDN+20) mod 60, stem = sexagenary mod 10,
// branch = sexagenary mod 12.
//
// Errors: ErrInvalidDate.
func (d *Deriver) Day(t time.Time) (Pillar, error) {
	y, m, day := t.Date()
	if err := validateDate(y, int(m), day); err != nil {
		return Pillar{}, err
	}

	jdn0 := julianDayNumber0h(y, int(m), day)
	sexagenary := mod(jdn0+jdnSexagenaryOffset, 60)

	return d.build(sexagenary%cycle.StemCount, sexagenary%cycle.BranchCount, PositionDay), nil
}

// Hour derives the hour pillar from the day stem and the local mean
// solar hour (Five Rats Escape).
//
// The 24 hours fold into 12 two-hour slots; hours 23 and 0 both belong
// to the Rat slot (branch 0), every later slot starts on an odd hour.
// The input hour must already be LMT-corrected, not clock time.
//
// Errors: ErrIndexRange, ErrInvalidHour.
func (d *Deriver) Hour(dayStemIndex, hour int) (Pillar, error) {
	if dayStemIndex < 0 || dayStemIndex >= cycle.StemCount {
		return Pillar{}, ErrIndexRange
	}
	if hour < 0 || hour > 23 {
		return Pillar{}, ErrInvalidHour
	}

	branchIndex := 0
	if hour != 23 && hour != 0 {
		branchIndex = ((hour + 1) / 2) % cycle.BranchCount
	}

	start := ratStartStems[dayStemIndex%5]
	stemIndex := (start + branchIndex) % cycle.StemCount

	return d.build(stemIndex, branchIndex, PositionHour), nil
}

// Annual derives the pillar of a whole calendar year, used when
// overlaying a transit year on a natal chart. Unlike Year it takes no
// boundary: the target is the year as a unit, not a birth instant.
func (d *Deriver) Annual(year int) (Pillar, error) {
	if year < minYear || year > maxYear {
		return Pillar{}, ErrInvalidDate
	}
	return d.build(
		mod(year-cycleOriginYear, cycle.StemCount),
		mod(year-cycleOriginYear, cycle.BranchCount),
		PositionAnnual,
	), nil
}

// build assembles a Pillar from catalog indices known to be in range.
func (d *Deriver) build(stemIndex, branchIndex int, pos Position) Pillar {
	s, _ := d.reg.StemByIndex(stemIndex)
	b, _ := d.reg.BranchByIndex(branchIndex)
	return Pillar{Stem: s, Branch: b, Position: pos}
}

// Supported civil-year window. The JDN formula below is exact for the
// proleptic Gregorian calendar; the window simply rejects junk input.
const (
	minYear = 1
	maxYear = 9999
)

// validateDate rejects out-of-range or non-existent civil dates.
func validateDate(year, month, day int) error {
	if year < minYear || year > maxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return ErrInvalidDate
	}
	// Round-trip through time.Date to catch Feb 30 and friends:
	// time normalizes overflow instead of failing.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	y2, m2, d2 := t.Date()
	if y2 != year || int(m2) != month || d2 != day {
		return ErrInvalidDate
	}
	return nil
}

// julianDayNumber0h returns the integer Julian Day Number of the civil
// date at 0h UT (Fliegel–Van Flandern, truncating division). The
// canonical FvF value names the noon epoch, hence the −1.
func julianDayNumber0h(year, month, day int) int {
	a := (month - 14) / 12
	jdnNoon := (1461*(year+4800+a))/4 +
		(367*(month-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075
	return jdnNoon - 1
}

// mod is the non-negative modulus (Go's % follows the dividend's sign).
func mod(x, n int) int {
	return ((x % n) + n) % n
}
