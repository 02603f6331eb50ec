package chart

import (
	"time"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/interact"
	"github.com/lunarium-dev/ganzhi/luck"
	"github.com/lunarium-dev/ganzhi/pillar"
	"github.com/lunarium-dev/ganzhi/tengod"
)

// Engine wires the pure components together around a shared registry,
// an interaction rule set and the boundary collaborator.
type Engine struct {
	reg     *cycle.Registry
	deriver *pillar.Deriver
	gen     *luck.Generator
	tables  *interact.Tables
}

// NewEngine builds an Engine. reg may be nil for cycle.Default();
// tables may be nil for interact.DefaultTables(). src is required for
// luck-pillar generation and may be nil only if Compute is never
// called.
func NewEngine(reg *cycle.Registry, src luck.BoundarySource, tables *interact.Tables) *Engine {
	if reg == nil {
		reg = cycle.Default()
	}
	if tables == nil {
		tables = interact.DefaultTables()
	}
	return &Engine{
		reg:     reg,
		deriver: pillar.NewDeriver(reg),
		gen:     luck.NewGenerator(reg, src),
		tables:  tables,
	}
}

// natalLabels tag the four natal positions in detector input order.
var natalLabels = [4]string{"year", "month", "day", "hour"}

// Compute derives the full natal chart for in. Derivation is
// all-or-nothing: any failing step aborts the chart.
//
// Errors: pillar.ErrInvalidDate, pillar.ErrInvalidHour,
// pillar.ErrIndexRange, luck.ErrBadGender, luck.ErrNoSource,
// luck.ErrBoundaryUnavailable, tengod.ErrUndefinedRelation.
func (e *Engine) Compute(in Input) (*Chart, error) {
	yp, err := e.deriver.Year(in.Year, in.Month, in.Day, in.YearBoundary)
	if err != nil {
		return nil, err
	}
	mp, err := e.deriver.Month(yp.Stem.Index, in.MonthBranchIndex)
	if err != nil {
		return nil, err
	}
	dp, err := e.deriver.Day(time.Date(in.Year, time.Month(in.Month), in.Day, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	hp, err := e.deriver.Hour(dp.Stem.Index, in.HourLMT)
	if err != nil {
		return nil, err
	}

	pillars := Pillars{Year: yp, Month: mp, Day: dp, Hour: hp}
	dayMaster := dp.Stem

	gods, err := tengod.MapTenGods(dayMaster, pillars.List())
	if err != nil {
		return nil, err
	}

	entries := make([]interact.Entry, 0, 4)
	for i, p := range pillars.List() {
		entries = append(entries, interact.Entry{Branch: p.Branch, Label: natalLabels[i]})
	}
	natal, err := interact.Detect(entries, e.tables)
	if err != nil {
		return nil, err
	}

	lucks, err := e.gen.Timeline(luck.Params{
		YearStemIndex:    yp.Stem.Index,
		MonthStemIndex:   mp.Stem.Index,
		MonthBranchIndex: mp.Branch.Index,
		Gender:           in.Gender,
		Birth:            time.Date(in.Year, time.Month(in.Month), in.Day, 0, 0, 0, 0, time.UTC),
	}, nil)
	if err != nil {
		return nil, err
	}

	return &Chart{
		DayMaster: DayMaster{
			Stem:        dayMaster.Name,
			Chinese:     dayMaster.Chinese,
			Element:     dayMaster.Element,
			Polarity:    dayMaster.Polarity,
			Description: dayMaster.String(),
		},
		Pillars:             pillars,
		TenGods:             gods,
		ElementDistribution: Distribution(pillars.List(), nil),
		NatalInteractions:   natal,
		LuckPillars:         lucks,
	}, nil
}

// CurrentLuckPillar returns the luck pillar covering age, or nil when
// the age precedes the first period or the timeline is empty.
func CurrentLuckPillar(c *Chart, age int) *luck.Pillar {
	if c == nil {
		return nil
	}
	for i := range c.LuckPillars {
		lp := &c.LuckPillars[i]
		if lp.AgeStart <= age && age <= lp.AgeEnd {
			return lp
		}
	}
	return nil
}
