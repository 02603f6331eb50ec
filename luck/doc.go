// Package luck generates the decade-long "luck pillar" timeline that
// follows a birth chart: a direction- and parity-dependent walk along
// both cycles, anchored to the nearest solar-term boundary.
//
// 🚀 What is a luck pillar?
//
//	Post-natal time divides into ten-year periods, each carrying its
//	own stem+branch pair. The sequence starts from the month pillar and
//	steps both cyclic indices by ±1 per decade:
//	  • Direction — forward iff (yang year stem AND male) OR
//	    (yin year stem AND female); otherwise backward.
//	  • Start age — elapsed days from birth to the nearest solar-term
//	    boundary in the traversal direction, divided by 3 and rounded
//	    (3 days ≈ 1 symbolic year).
//
// ✨ Key features:
//   - pure arithmetic except for one injected collaborator: the
//     BoundarySource that resolves solar-term instants
//   - deterministic given (yearStemIndex, monthStemIndex,
//     monthBranchIndex, gender, start age)
//   - default 10 periods, configurable via Options
//
// ⚙️ Usage:
//
//	gen := luck.NewGenerator(nil, source) // nil ⇒ shared registry
//	pillars, err := gen.Timeline(luck.Params{
//	  YearStemIndex:    6,
//	  MonthStemIndex:   5,
//	  MonthBranchIndex: 3,
//	  Gender:           luck.Male,
//	  Birth:            birthDate,
//	}, nil)
//
// The boundary lookup is synchronous and opaque; package solarterm
// provides the standard implementation.
package luck
