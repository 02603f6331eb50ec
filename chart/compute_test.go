package chart_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lunarium-dev/ganzhi/chart"
	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/interact"
	"github.com/lunarium-dev/ganzhi/luck"
	"github.com/lunarium-dev/ganzhi/pillar"
	"github.com/lunarium-dev/ganzhi/tengod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource anchors the solar boundary a fixed distance from birth.
type fixedSource struct{ days float64 }

func (s fixedSource) FindBoundary(ref float64, _ int, forward bool) (float64, error) {
	if forward {
		return ref + s.days, nil
	}
	return ref - s.days, nil
}

// referenceInput is the published sample chart: March 15 1990,
// 10 AM LMT, male, Mao (Rabbit) solar month.
// Expected pillars: Geng Wu, Ji Mao, Ji You, Ji Si.
var referenceInput = chart.Input{
	Year: 1990, Month: 3, Day: 15,
	HourLMT:          10,
	Gender:           luck.Male,
	MonthBranchIndex: 3,
}

func computeReference(t *testing.T) *chart.Chart {
	t.Helper()
	eng := chart.NewEngine(nil, fixedSource{days: 21}, nil)
	c, err := eng.Compute(referenceInput)
	require.NoError(t, err)
	return c
}

// TestCompute_ReferencePillars pins the four pillars and the Day Master
// of the reference chart.
func TestCompute_ReferencePillars(t *testing.T) {
	c := computeReference(t)

	assert.Equal(t, "Geng Wu", c.Pillars.Year.Combined())
	assert.Equal(t, "Ji Mao", c.Pillars.Month.Combined())
	assert.Equal(t, "Ji You", c.Pillars.Day.Combined())
	assert.Equal(t, "Ji Si", c.Pillars.Hour.Combined())

	assert.Equal(t, "Ji", c.DayMaster.Stem, "Day Master is the day pillar's stem")
	assert.Equal(t, cycle.Earth, c.DayMaster.Element)
	assert.Equal(t, cycle.Yin, c.DayMaster.Polarity)
}

// TestCompute_TenGods checks the visible-stem titles of the reference
// chart, including Self for stems identical to the Day Master.
func TestCompute_TenGods(t *testing.T) {
	c := computeReference(t)

	require.Len(t, c.TenGods, 4)
	assert.Equal(t, tengod.HurtingOfficer, c.TenGods[0].TenGod, "Geng vs Ji")
	assert.Equal(t, tengod.Self, c.TenGods[1].TenGod, "month Ji is the Day Master's own stem")
	assert.Equal(t, tengod.Self, c.TenGods[2].TenGod)
	assert.Equal(t, tengod.Self, c.TenGods[3].TenGod)

	// Hidden stems ride along per pillar, order preserved.
	assert.Equal(t, "Mao", c.TenGods[1].Branch)
	require.Len(t, c.TenGods[1].HiddenGods, 1)
	assert.Equal(t, "Yi", c.TenGods[1].HiddenGods[0].Stem)
	assert.Equal(t, tengod.SevenKillings, c.TenGods[1].HiddenGods[0].TenGod, "yin wood controls yin earth")
}

// TestCompute_NatalInteractions verifies the reference chart's flag
// list: Mao–Wu destruction, Mao–You clash, partial metal frame.
func TestCompute_NatalInteractions(t *testing.T) {
	c := computeReference(t)

	byType := map[string]int{}
	for _, rec := range c.NatalInteractions {
		byType[rec.Type]++
	}
	assert.Equal(t, 1, byType[interact.TypeDestruction])
	assert.Equal(t, 1, byType[interact.TypeClash])
	assert.Equal(t, 1, byType[interact.TypeHarmonyPartial])
	assert.Len(t, c.NatalInteractions, 3)

	for _, rec := range c.NatalInteractions {
		if rec.Type == interact.TypeHarmonyPartial {
			assert.Equal(t, cycle.Metal, rec.ResultElement)
			assert.Equal(t, "Chou(Ox)", rec.Missing)
		}
	}
}

// TestCompute_LuckPillars: forward chart, boundary 21 days out ⇒ start
// age 7, first period Geng Chen.
func TestCompute_LuckPillars(t *testing.T) {
	c := computeReference(t)

	require.Len(t, c.LuckPillars, 10)
	first := c.LuckPillars[0]
	assert.Equal(t, 7, first.AgeStart)
	assert.Equal(t, 16, first.AgeEnd)
	assert.Equal(t, "Geng Chen", first.Pillar.Combined())

	lp := chart.CurrentLuckPillar(c, 36)
	require.NotNil(t, lp)
	assert.Equal(t, 3, lp.Number, "age 36 falls in LP3 (ages 27-36)")

	assert.Nil(t, chart.CurrentLuckPillar(c, 3), "before the first period")
}

// TestCompute_AllOrNothing: any failing step aborts the whole chart.
func TestCompute_AllOrNothing(t *testing.T) {
	eng := chart.NewEngine(nil, fixedSource{days: 21}, nil)

	bad := referenceInput
	bad.HourLMT = 24
	_, err := eng.Compute(bad)
	assert.ErrorIs(t, err, pillar.ErrInvalidHour)

	bad = referenceInput
	bad.MonthBranchIndex = 12
	_, err = eng.Compute(bad)
	assert.ErrorIs(t, err, pillar.ErrIndexRange)

	bad = referenceInput
	bad.Gender = luck.Gender("other")
	_, err = eng.Compute(bad)
	assert.ErrorIs(t, err, luck.ErrBadGender)
}

// TestDistribution_VisibleTotal: four visible stems always sum to 4.0
// before hidden weighting.
func TestDistribution_VisibleTotal(t *testing.T) {
	c := computeReference(t)

	visible := chart.Distribution(c.Pillars.List(), &chart.DistributionOptions{IncludeHidden: false})
	var total float64
	for _, w := range visible {
		total += w
	}
	assert.InDelta(t, 4.0, total, 1e-9)

	// Hidden contribution only ever adds weight.
	full := chart.Distribution(c.Pillars.List(), nil)
	for _, el := range cycle.Elements {
		assert.GreaterOrEqual(t, full[el], visible[el], "element %s", el)
	}
}

// TestDistribution_HiddenWeights pins the tier weights on a single
// known pillar.
func TestDistribution_HiddenWeights(t *testing.T) {
	d := pillar.NewDeriver(nil)
	// Bing Yin: visible Bing (fire); hidden Jia (wood, 0.7),
	// Bing (fire, 0.5), Wu (earth, 0.3).
	p, err := d.Month(0, 2)
	require.NoError(t, err)

	dist := chart.Distribution([]pillar.Pillar{p}, nil)
	assert.InDelta(t, 1.5, dist[cycle.Fire], 1e-9)
	assert.InDelta(t, 0.7, dist[cycle.Wood], 1e-9)
	assert.InDelta(t, 0.3, dist[cycle.Earth], 1e-9)
	assert.Zero(t, dist[cycle.Metal])
	assert.Zero(t, dist[cycle.Water])
}

// TestAnnualOverlay_2026 checks the annual pillar, its Ten God and the
// annual-specific filtering (the Wu–Wu repeat self-punishes).
func TestAnnualOverlay_2026(t *testing.T) {
	eng := chart.NewEngine(nil, fixedSource{days: 21}, nil)
	c, err := eng.Compute(referenceInput)
	require.NoError(t, err)

	ov, err := eng.AnnualOverlay(c, 2026)
	require.NoError(t, err)

	assert.Equal(t, "Bing Wu", ov.AnnualPillar.Combined())
	assert.Equal(t, tengod.DirectResource, ov.AnnualTenGod, "yang fire produces yin earth")

	var sawSelfPunish bool
	for _, rec := range ov.AnnualInteractions {
		found := false
		for _, b := range rec.Branches {
			if len(b) >= 7 && b[:7] == "annual:" {
				found = true
			}
		}
		assert.True(t, found, "filtered records must involve the annual branch")
		if rec.Type == interact.TypeSelfPunishment {
			sawSelfPunish = true
		}
	}
	assert.True(t, sawSelfPunish, "natal Wu + annual Wu repeats a self-punishing index")

	assert.GreaterOrEqual(t, len(ov.AllInteractions), len(ov.AnnualInteractions))

	_, err = eng.AnnualOverlay(nil, 2026)
	assert.ErrorIs(t, err, chart.ErrNilChart)
}

// TestChart_JSONContract spot-checks the stable field names consumed by
// persistence and rendering layers.
func TestChart_JSONContract(t *testing.T) {
	c := computeReference(t)

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"day_master", "pillars", "ten_gods", "element_distribution",
		"natal_branch_interactions", "luck_pillars",
	} {
		assert.Contains(t, decoded, key)
	}

	pillars := decoded["pillars"].(map[string]any)
	for _, pos := range []string{"year", "month", "day", "hour"} {
		assert.Contains(t, pillars, pos)
	}

	dm := decoded["day_master"].(map[string]any)
	assert.Equal(t, "Ji", dm["stem"])
	assert.Equal(t, "earth", dm["element"])
}

// TestCompute_Deterministic: same input, same chart.
func TestCompute_Deterministic(t *testing.T) {
	eng := chart.NewEngine(nil, fixedSource{days: 21}, nil)

	a, err := eng.Compute(referenceInput)
	require.NoError(t, err)
	b, err := eng.Compute(referenceInput)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Unrestricted concurrent invocation over the shared engine.
	done := make(chan *chart.Chart, 8)
	for i := 0; i < 8; i++ {
		go func() {
			c, err := eng.Compute(referenceInput)
			if err != nil {
				done <- nil
				return
			}
			done <- c
		}()
	}
	deadline := time.After(5 * time.Second)
	for i := 0; i < 8; i++ {
		select {
		case c := <-done:
			require.NotNil(t, c)
			assert.Equal(t, a.Pillars, c.Pillars)
		case <-deadline:
			t.Fatal("concurrent computation timed out")
		}
	}
}
