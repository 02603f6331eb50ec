// Package solarterm computes the 12 Jie solar-term boundaries that
// anchor the sexagenary calendar: month transitions, the solar year
// start (Li Chun) and the luck-pillar start age all derive from them.
//
// 🚀 What is a Jie?
//
//	Each Jie is the instant the Sun's apparent ecliptic longitude
//	crosses a fixed multiple of 30° offset by 15°: Li Chun at 315°
//	opens the Tiger month, Jing Zhe at 345° the Rabbit month, and so
//	on around the zodiac. Twelve Jie per year, one month branch each.
//
// ✨ Key features:
//   - closed-form apparent solar longitude (Meeus, Astronomical
//     Algorithms ch. 25 low-precision series, ≈0.01° ⇒ under a minute
//     of boundary timing)
//   - JieDates: all crossings inside a Gregorian year, chronological
//   - Calendar implements luck.BoundarySource over a 3-year window
//   - MonthBranch: continuous solar longitude → discrete month branch
//   - local mean time correction for hour-pillar input
//
// ⚙️ Usage:
//
//	cal := solarterm.NewCalendar()
//	terms, err := cal.JieDates(1990)
//	jd, err := cal.FindBoundary(ref, 1990, true)
//	branch := solarterm.MonthBranch(354.2) // 3 (Mao)
//	lmt := solarterm.ApplyLMT(clock, -122.42, -120)
//
// Instants are exchanged as astronomical Julian Days (UT). Crossings
// are found by a daily sign-change scan plus bisection; each term
// crosses exactly once per year, so the scan is total.
//
// All functions are pure and safe for concurrent use.
package solarterm
