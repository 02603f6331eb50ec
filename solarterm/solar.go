package solarterm

import "math"

// Low-precision solar position after Meeus, Astronomical Algorithms,
// 2nd ed., ch. 25. Accuracy ≈0.01° of longitude, under a minute of
// boundary timing — far inside the day resolution the start-age rule
// consumes downstream.

const (
	j2000         = 2451545.0
	julianCentury = 36525.0
	degToRad      = math.Pi / 180.0
)

// apparentSolarLongitude returns the Sun's apparent ecliptic longitude
// in degrees, normalized to [0, 360), for an astronomical Julian Day.
func apparentSolarLongitude(jd float64) float64 {
	t := (jd - j2000) / julianCentury

	// Geometric mean longitude and mean anomaly.
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	mRad := m * degToRad

	// Equation of center.
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	trueLon := l0 + c

	// Apparent longitude: nutation + aberration correction.
	omega := (125.04 - 1934.136*t) * degToRad
	apparent := trueLon - 0.00569 - 0.00478*math.Sin(omega)

	return normalizeDeg(apparent)
}

// normalizeDeg wraps an angle into [0, 360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapDelta maps the signed difference between two longitudes into
// (-180, 180], so crossings appear as a negative→positive transition.
func wrapDelta(lon, target float64) float64 {
	d := math.Mod(lon-target, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// julianDay returns the astronomical Julian Day for a civil instant
// (UT), hour fractional.
func julianDay(year, month, day int, hour float64) float64 {
	a := (month - 14) / 12
	jdnNoon := (1461*(year+4800+a))/4 +
		(367*(month-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075
	return float64(jdnNoon) - 0.5 + hour/24
}

// civilDate inverts julianDay for the Gregorian calendar, returning the
// civil date and fractional hour (UT).
func civilDate(jd float64) (year, month, day int, hour float64) {
	z, f := math.Modf(jd + 0.5)
	zi := int64(z)

	alpha := int64((float64(zi) - 1867216.25) / 36524.25)
	a := zi + 1 + alpha - alpha/4
	b := a + 1524
	c := int64((float64(b) - 122.1) / 365.25)
	d := int64(365.25 * float64(c))
	e := int64(float64(b-d) / 30.6001)

	day = int(b - d - int64(30.6001*float64(e)))
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	hour = f * 24
	return year, month, day, hour
}
