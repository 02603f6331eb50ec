package solarterm

import (
	"sort"
	"time"
)

// Supported civil-year window, matching the pillar deriver's.
const (
	minYear = 1
	maxYear = 9999
)

// bisections per crossing: 40 halvings of a one-day bracket resolve the
// instant to well under a millisecond.
const bisectSteps = 40

// Calendar resolves Jie crossings. The zero value is ready to use; it
// holds no state, so one instance may serve any number of goroutines.
// It satisfies luck.BoundarySource.
type Calendar struct{}

// NewCalendar returns a Calendar.
func NewCalendar() *Calendar { return &Calendar{} }

// JieDates computes the 12 Jie crossings that fall inside a Gregorian
// year, in chronological order.
//
// Errors: ErrBadYear.
func (c *Calendar) JieDates(year int) ([]Date, error) {
	if year < minYear || year > maxYear {
		return nil, ErrBadYear
	}

	start := julianDay(year, 1, 1, 0)
	end := julianDay(year+1, 1, 1, 0)

	out := make([]Date, 0, 12)
	for _, jie := range jieDefinitions {
		jd, ok := findCrossing(jie.Longitude, start, end)
		if !ok {
			continue
		}
		y, m, d, h := civilDate(jd)
		if y != year {
			continue
		}
		out = append(out, Date{
			Jie:     jie,
			Year:    y,
			Month:   m,
			Day:     d,
			HourUTC: h,
			JD:      jd,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JD < out[j].JD })
	return out, nil
}

// FindBoundary returns the Julian Day of the nearest Jie crossing from
// referenceDay in the given direction (next when forward, previous
// otherwise), searching [calendarYear-1, calendarYear+1].
//
// Errors: ErrBadYear, ErrNoBoundary.
func (c *Calendar) FindBoundary(referenceDay float64, calendarYear int, forward bool) (float64, error) {
	var all []Date
	for y := calendarYear - 1; y <= calendarYear+1; y++ {
		dates, err := c.JieDates(y)
		if err != nil {
			return 0, err
		}
		all = append(all, dates...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].JD < all[j].JD })

	if forward {
		for _, d := range all {
			if d.JD > referenceDay {
				return d.JD, nil
			}
		}
	} else {
		for i := len(all) - 1; i >= 0; i-- {
			if all[i].JD < referenceDay {
				return all[i].JD, nil
			}
		}
	}
	return 0, ErrNoBoundary
}

// findCrossing locates the instant the apparent solar longitude crosses
// target within [start, end): a daily scan for the negative→positive
// sign change of the wrapped delta, then bisection.
func findCrossing(target, start, end float64) (float64, bool) {
	prev := wrapDelta(apparentSolarLongitude(start), target)
	for jd := start + 1; jd <= end+1; jd++ {
		cur := wrapDelta(apparentSolarLongitude(jd), target)
		if prev < 0 && cur >= 0 {
			lo, hi := jd-1, jd
			for i := 0; i < bisectSteps; i++ {
				mid := (lo + hi) / 2
				if wrapDelta(apparentSolarLongitude(mid), target) < 0 {
					lo = mid
				} else {
					hi = mid
				}
			}
			return (lo + hi) / 2, true
		}
		prev = cur
	}
	return 0, false
}

// SunLongitude returns the apparent ecliptic longitude of the Sun in
// degrees [0, 360) at a civil instant, interpreted as UT.
func SunLongitude(t time.Time) float64 {
	u := t.UTC()
	hour := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600
	return apparentSolarLongitude(julianDay(u.Year(), int(u.Month()), u.Day(), hour))
}

// MonthBranchAt resolves the month-branch index in force at a civil
// instant. Shorthand for MonthBranch(SunLongitude(t)).
func MonthBranchAt(t time.Time) int {
	return MonthBranch(SunLongitude(t))
}

// branchByMonthSlot maps ((sunLon-315) mod 360)/30 to a month branch
// index: Li Chun opens Tiger (2), and the slots advance around the
// cycle back to Ox (1).
var branchByMonthSlot = [12]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 1}

// MonthBranch maps a continuous apparent solar longitude (degrees) to
// the discrete month-branch index consumed by the month-pillar rule.
func MonthBranch(sunLongitude float64) int {
	adjusted := normalizeDeg(sunLongitude - 315)
	return branchByMonthSlot[int(adjusted/30)%12]
}

// LMTOffset returns the local-mean-time correction in minutes for a
// location east-positive longitude against its timezone's standard
// meridian. Negative means local solar time lags clock time.
//
// Example: Nanning (108.37°E) against China's 120°E meridian is
// (108.37−120)·4 ≈ −46.5 minutes.
func LMTOffset(longitude, standardMeridian float64) float64 {
	return (longitude - standardMeridian) * 4
}

// ApplyLMT shifts a clock-time instant to local mean solar time. The
// standard meridian is utcOffset·15 for a whole-hour zone.
func ApplyLMT(clock time.Time, longitude, standardMeridian float64) time.Time {
	minutes := LMTOffset(longitude, standardMeridian)
	return clock.Add(time.Duration(minutes * float64(time.Minute)))
}
