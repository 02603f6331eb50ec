// Package chart assembles a complete Four Pillars profile from a birth
// instant: the Day Master, the four natal pillars, their Ten-God map,
// the weighted element distribution, the natal interaction list and the
// luck-pillar timeline. It also overlays an arbitrary transit year on a
// natal chart.
//
// 🚀 What is a chart?
//
//	A transient aggregate built per request from the pure components:
//	pillar derivation, Ten-God classification, interaction detection
//	and timeline generation. Derivation is all-or-nothing — no partial
//	chart is ever returned.
//
// ✨ Key features:
//   - Engine.Compute: one call from birth data to full chart
//   - Distribution: weighted element tally (visible stems 1.0; hidden
//     stems 0.7 / 0.5 / 0.3 by qi position, optional)
//   - Engine.AnnualOverlay: annual pillar, its Ten God against the Day
//     Master, and interactions with the natal branch set
//   - every result struct serializes with stable JSON field names
//
// ⚙️ Usage:
//
//	eng := chart.NewEngine(nil, boundarySource, nil)
//	c, err := eng.Compute(chart.Input{
//	  Year: 1990, Month: 3, Day: 15,
//	  HourLMT:          10,
//	  Gender:           luck.Male,
//	  MonthBranchIndex: 3,
//	})
//	overlay, err := eng.AnnualOverlay(c, 2026)
//
// The Day Master always equals the day pillar's stem; it is never
// assigned independently.
//
// Computation is synchronous and O(1) per chart; Engine is safe for
// concurrent use when its boundary source is.
package chart
