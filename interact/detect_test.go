package interact_test

import (
	"testing"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/interact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entry builds a labeled Entry from a branch name.
func entry(t *testing.T, name, label string) interact.Entry {
	t.Helper()
	b, err := cycle.Default().BranchByName(name)
	require.NoError(t, err)
	return interact.Entry{Branch: b, Label: label}
}

// TestDetect_SixCombination verifies the Zi–Chou pair yields exactly
// one combination record with result element Earth and nothing else.
func TestDetect_SixCombination(t *testing.T) {
	records, err := interact.Detect([]interact.Entry{
		entry(t, "Zi", "year"),
		entry(t, "Chou", "month"),
	}, nil)
	require.NoError(t, err)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, interact.TypeCombination, rec.Type)
	assert.Equal(t, cycle.Earth, rec.ResultElement)
	assert.Equal(t, []string{"year:Zi(Rat)", "month:Chou(Ox)"}, rec.Branches)
	assert.NotEmpty(t, rec.Note)
}

// TestDetect_NoDeduplicationAcrossPositions: a branch index recurring
// at two labeled positions matches the combination once per pair.
func TestDetect_NoDeduplicationAcrossPositions(t *testing.T) {
	records, err := interact.Detect([]interact.Entry{
		entry(t, "Zi", "year"),
		entry(t, "Chou", "month"),
		entry(t, "Zi", "annual"),
	}, nil)
	require.NoError(t, err)

	var combos int
	for _, rec := range records {
		if rec.Type == interact.TypeCombination {
			combos++
		}
	}
	assert.Equal(t, 2, combos, "year–month and month–annual must both report")
}

// TestDetect_ClashHarmDestruction pins one pair from each descriptive
// table.
func TestDetect_ClashHarmDestruction(t *testing.T) {
	cases := []struct {
		a, b string
		kind string
	}{
		{"Zi", "Wu", interact.TypeClash},
		{"Mao", "Chen", interact.TypeHarm},
		{"Chou", "Chen", interact.TypeDestruction},
	}
	for _, tc := range cases {
		records, err := interact.Detect([]interact.Entry{
			entry(t, tc.a, "day"),
			entry(t, tc.b, "hour"),
		}, nil)
		require.NoError(t, err)

		found := false
		for _, rec := range records {
			if rec.Type == tc.kind {
				found = true
				assert.Empty(t, rec.ResultElement, "%s carries no result element", tc.kind)
			}
		}
		assert.True(t, found, "%s–%s must flag %s", tc.a, tc.b, tc.kind)
	}
}

// TestDetect_ThreeHarmonyPartialToComplete walks the Yin–Wu–Xu fire
// frame from partial (missing Xu) to complete.
func TestDetect_ThreeHarmonyPartialToComplete(t *testing.T) {
	partial, err := interact.Detect([]interact.Entry{
		entry(t, "Yin", "year"),
		entry(t, "Wu", "month"),
	}, nil)
	require.NoError(t, err)

	require.Len(t, partial, 1)
	rec := partial[0]
	assert.Equal(t, interact.TypeHarmonyPartial, rec.Type)
	assert.Equal(t, cycle.Fire, rec.ResultElement)
	assert.Equal(t, "Xu(Dog)", rec.Missing)

	complete, err := interact.Detect([]interact.Entry{
		entry(t, "Yin", "year"),
		entry(t, "Wu", "month"),
		entry(t, "Xu", "day"),
	}, nil)
	require.NoError(t, err)

	var kinds []string
	for _, r := range complete {
		kinds = append(kinds, r.Type)
	}
	assert.Contains(t, kinds, interact.TypeHarmonyComplete)
	assert.NotContains(t, kinds, interact.TypeHarmonyPartial,
		"a complete frame must not also report as partial")

	for _, r := range complete {
		if r.Type == interact.TypeHarmonyComplete {
			assert.Equal(t, cycle.Fire, r.ResultElement)
			assert.Len(t, r.Branches, 3)
			assert.Empty(t, r.Missing)
		}
	}
}

// TestDetect_SelfPunishment requires a literal repeat of one of the
// four self-punishing indices.
func TestDetect_SelfPunishment(t *testing.T) {
	records, err := interact.Detect([]interact.Entry{
		entry(t, "Chen", "year"),
		entry(t, "Chen", "day"),
	}, nil)
	require.NoError(t, err)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, interact.TypeSelfPunishment, rec.Type)
	assert.Equal(t, []string{"year:Chen(Dragon)", "day:Chen(Dragon)"}, rec.Branches)

	// A single occurrence must not fire.
	none, err := interact.Detect([]interact.Entry{
		entry(t, "Chen", "year"),
		entry(t, "Zi", "day"),
	}, nil)
	require.NoError(t, err)
	for _, r := range none {
		assert.NotEqual(t, interact.TypeSelfPunishment, r.Type)
	}
}

// TestDetect_PunishmentGroups covers partial and full named groups,
// alongside the overlapping records the same branches produce.
func TestDetect_PunishmentGroups(t *testing.T) {
	// Yin–Si: partial ungrateful punishment, plus the Yin–Si harm.
	partial, err := interact.Detect([]interact.Entry{
		entry(t, "Yin", "year"),
		entry(t, "Si", "hour"),
	}, nil)
	require.NoError(t, err)

	var sawHarm bool
	var punish *interact.Record
	for i, r := range partial {
		switch r.Type {
		case interact.TypeHarm:
			sawHarm = true
		case "Punishment (ungrateful) (刑)":
			punish = &partial[i]
		}
	}
	assert.True(t, sawHarm)
	require.NotNil(t, punish)
	require.NotNil(t, punish.Complete)
	assert.False(t, *punish.Complete)

	// Yin–Si–Shen: full group; the pair scan also reports the Yin–Shen
	// clash and the Si–Shen combination + destruction. The detector
	// leaves the contradiction to the consumer.
	full, err := interact.Detect([]interact.Entry{
		entry(t, "Yin", "year"),
		entry(t, "Si", "month"),
		entry(t, "Shen", "day"),
	}, nil)
	require.NoError(t, err)

	var kinds []string
	punish = nil
	for i, r := range full {
		kinds = append(kinds, r.Type)
		if r.Type == "Punishment (ungrateful) (刑)" {
			punish = &full[i]
		}
	}
	assert.Contains(t, kinds, interact.TypeClash)
	assert.Contains(t, kinds, interact.TypeCombination)
	assert.Contains(t, kinds, interact.TypeDestruction)
	require.NotNil(t, punish)
	require.NotNil(t, punish.Complete)
	assert.True(t, *punish.Complete)
	assert.Len(t, punish.Branches, 3)
}

// TestDetect_CombinationOverride exercises the overridable Wu–Wei
// result element.
func TestDetect_CombinationOverride(t *testing.T) {
	tables, err := interact.DefaultTables().WithCombinationResult(7, 6, cycle.Earth)
	require.NoError(t, err)

	records, err := interact.Detect([]interact.Entry{
		entry(t, "Wu", "month"),
		entry(t, "Wei", "day"),
	}, tables)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, interact.TypeCombination, records[0].Type)
	assert.Equal(t, cycle.Earth, records[0].ResultElement)

	// Defaults stay untouched: Wu–Wei is Fire out of the box.
	fresh, err := interact.Detect([]interact.Entry{
		entry(t, "Wu", "month"),
		entry(t, "Wei", "day"),
	}, nil)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, cycle.Fire, fresh[0].ResultElement)

	_, err = interact.DefaultTables().WithCombinationResult(0, 2, cycle.Wood)
	assert.ErrorIs(t, err, interact.ErrUnknownPair)
}

// TestDetect_BadEntryAndDefaultLabels covers input validation and the
// fallback labels.
func TestDetect_BadEntryAndDefaultLabels(t *testing.T) {
	_, err := interact.Detect([]interact.Entry{{}}, nil)
	assert.ErrorIs(t, err, interact.ErrBadEntry)

	zi, err := cycle.Default().BranchByName("Zi")
	require.NoError(t, err)
	chou, err := cycle.Default().BranchByName("Chou")
	require.NoError(t, err)

	records, err := interact.Detect([]interact.Entry{
		{Branch: zi}, {Branch: chou},
	}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"branch_0:Zi(Rat)", "branch_1:Chou(Ox)"}, records[0].Branches)
}
