// Package pillar derives sexagenary (stem, branch) pillars from
// calendrical inputs: year, month, day and hour of birth, plus the
// annual pillar of an arbitrary calendar year.
//
// 🚀 What is a pillar?
//
//	A pillar is one stem+branch pair assigned to a time unit. A natal
//	chart has four: year, month, day and hour. Each follows its own
//	fixed derivation rule over the two cycles:
//	  • Year  — (effectiveYear−4) mod 10 / mod 12, where the effective
//	    year rolls back by one before the Li Chun boundary (≈ Feb 4).
//	  • Month — Five Tigers Escape: the year stem's residue mod 5
//	    selects the stem of the Tiger month (branch index 2).
//	  • Day   — integer Julian Day Number at 0h, (JDN+20) mod 60.
//	  • Hour  — Five Rats Escape: the day stem's residue mod 5 selects
//	    the stem of the Rat slot; hours 23 and 0 both map to Rat.
//
// ✨ Key features:
//   - four independent, pure, deterministic derivation rules
//   - escape rules stored as 5-entry residue arrays, not pairwise maps
//   - day rule calibrated against published reference dates
//     (1990-03-15 = Ji You, 1986-06-19 = Jia Zi)
//   - invalid dates/hours/indices rejected with sentinel errors
//
// ⚙️ Usage:
//
//	d := pillar.NewDeriver(nil) // nil ⇒ shared cycle.Default() registry
//	yp, err := d.Year(1990, 3, 15, nil)
//	mp, err := d.Month(yp.Stem.Index, 3)
//	dp, err := d.Day(time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC))
//	hp, err := d.Hour(dp.Stem.Index, 10)
//
// The hour passed to Hour must already be corrected to local mean solar
// time; clock-time correction lives in package solarterm.
//
// Complexity: O(1) per pillar. All methods are safe for concurrent use.
package pillar
