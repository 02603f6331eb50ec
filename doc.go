// Package ganzhi is a symbolic computation engine for the Chinese
// sexagenary calendar — from stem & branch primitives to full Four
// Pillars (BaZi) chart analysis.
//
// 🚀 What is ganzhi?
//
//	A deterministic, self-contained library that brings together:
//		• Core primitives: the 10 Heavenly Stems & 12 Earthly Branches with hidden stems
//		• Pillar derivation: year, month, day, hour and annual pillars
//		• Ten-Gods classification: relational roles against the Day Master
//		• Branch interactions: combinations, clashes, harms, destructions, punishments
//		• Element distribution: weighted five-phase aggregation
//		• Luck pillars: the decade timeline with solar-term start ages
//		• Solar terms: apparent solar longitude & the 12 Jie boundaries
//
// ✨ Why choose ganzhi?
//
//   - Deterministic – the same birth instant always yields the same chart
//   - Self-contained astronomy – no ephemeris files, no network access
//   - Faithful rule tables – debated outcomes stay overridable, not hidden
//   - Extensible – registries and tables are values you can copy & adjust
//
// Under the hood, everything is organized under focused subpackages:
//
//	cycle/      — stem, branch & element registry
//	pillar/     — sexagenary pillar derivation rules
//	tengod/     — Ten-Gods relational classifier
//	interact/   — branch interaction detection & tables
//	luck/       — luck-pillar timeline generation
//	solarterm/  — solar-longitude astronomy & Jie calendar
//	chart/      — chart orchestration & annual overlays
//	chartstore/ — SQLite chart archive
//	cmd/bazi/   — the command-line front end
//
// Quick example:
//
//	engine := chart.NewEngine(nil, solarterm.NewCalendar(), nil)
//	natal, err := engine.Compute(chart.Input{
//		Year: 1990, Month: 3, Day: 15, HourLMT: 10,
//		Gender:           luck.Male,
//		MonthBranchIndex: 3,
//	})
//
// Dive into each subpackage's doc.go for the full contract.
//
//	go get github.com/lunarium-dev/ganzhi
package ganzhi
