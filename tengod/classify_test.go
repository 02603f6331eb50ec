package tengod_test

import (
	"testing"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/pillar"
	"github.com/lunarium-dev/ganzhi/tengod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassify_AllPairs verifies every ordered element pair resolves,
// and that swapping the arguments yields the inverse relation.
func TestClassify_AllPairs(t *testing.T) {
	inverse := map[tengod.Relation]tengod.Relation{
		tengod.Same:              tengod.Same,
		tengod.ProducesReference: tengod.ReferenceProduces,
		tengod.ReferenceProduces: tengod.ProducesReference,
		tengod.ReferenceControls: tengod.ControlsReference,
		tengod.ControlsReference: tengod.ReferenceControls,
	}

	for _, a := range cycle.Elements {
		for _, b := range cycle.Elements {
			ab, err := tengod.Classify(a, b)
			require.NoError(t, err, "%s vs %s", a, b)
			ba, err := tengod.Classify(b, a)
			require.NoError(t, err, "%s vs %s", b, a)
			assert.Equal(t, inverse[ab], ba, "%s/%s must be inverse relations", a, b)
		}
	}
}

// TestClassify_KnownRelations pins a sample from each cycle direction.
func TestClassify_KnownRelations(t *testing.T) {
	cases := []struct {
		ref, other cycle.Element
		want       tengod.Relation
	}{
		{cycle.Wood, cycle.Wood, tengod.Same},
		{cycle.Fire, cycle.Wood, tengod.ProducesReference}, // wood produces fire
		{cycle.Wood, cycle.Fire, tengod.ReferenceProduces},
		{cycle.Wood, cycle.Earth, tengod.ReferenceControls}, // wood controls earth
		{cycle.Earth, cycle.Wood, tengod.ControlsReference},
		{cycle.Water, cycle.Fire, tengod.ReferenceControls},
		{cycle.Metal, cycle.Fire, tengod.ControlsReference},
	}
	for _, tc := range cases {
		got, err := tengod.Classify(tc.ref, tc.other)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "ref=%s other=%s", tc.ref, tc.other)
	}
}

// TestTenGod_SelfAndTitles checks the Self special case and the
// polarity split on each relation.
func TestTenGod_SelfAndTitles(t *testing.T) {
	reg := cycle.Default()
	stem := func(name string) cycle.Stem {
		s, err := reg.StemByName(name)
		require.NoError(t, err)
		return s
	}

	// tenGod(x, x) == Self for every stem.
	for _, s := range reg.Stems() {
		g, err := tengod.TenGod(s, s)
		require.NoError(t, err)
		assert.Equal(t, tengod.Self, g, "stem %s", s.Name)
	}

	jia := stem("Jia") // yang wood
	cases := []struct {
		other string
		want  tengod.God
	}{
		{"Yi", tengod.RobWealth},         // same element, diff polarity
		{"Bing", tengod.EatingGod},       // wood produces fire, same polarity
		{"Ding", tengod.HurtingOfficer},  // wood produces fire, diff polarity
		{"Wu", tengod.IndirectWealth},    // wood controls earth, same polarity
		{"Ji", tengod.DirectWealth},      // wood controls earth, diff polarity
		{"Geng", tengod.SevenKillings},   // metal controls wood, same polarity
		{"Xin", tengod.DirectOfficer},    // metal controls wood, diff polarity
		{"Ren", tengod.IndirectResource}, // water produces wood, same polarity
		{"Gui", tengod.DirectResource},   // water produces wood, diff polarity
	}
	for _, tc := range cases {
		g, err := tengod.TenGod(jia, stem(tc.other))
		require.NoError(t, err)
		assert.Equal(t, tc.want, g, "Jia vs %s", tc.other)
	}
}

// TestMapTenGods covers visible + hidden classification with preserved
// hidden-stem order.
func TestMapTenGods(t *testing.T) {
	d := pillar.NewDeriver(nil)
	reg := cycle.Default()

	// Day Master Ji (yin earth), pillar Yin (Tiger): hidden Jia, Bing, Wu.
	ji, err := reg.StemByName("Ji")
	require.NoError(t, err)

	mp, err := d.Month(0, 2) // Bing Yin
	require.NoError(t, err)

	rows, err := tengod.MapTenGods(ji, []pillar.Pillar{mp})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, pillar.PositionMonth, row.Position)
	assert.Equal(t, "Bing", row.Stem)
	assert.Equal(t, tengod.DirectResource, row.TenGod) // fire produces earth, diff polarity
	assert.Equal(t, "Yin", row.Branch)
	assert.Equal(t, "Tiger", row.BranchAnimal)

	require.Len(t, row.HiddenGods, 3)
	assert.Equal(t, "Jia", row.HiddenGods[0].Stem)
	assert.Equal(t, tengod.DirectOfficer, row.HiddenGods[0].TenGod) // yang wood controls yin earth
	assert.Equal(t, "Bing", row.HiddenGods[1].Stem)
	assert.Equal(t, tengod.DirectResource, row.HiddenGods[1].TenGod)
	assert.Equal(t, "Wu", row.HiddenGods[2].Stem)
	assert.Equal(t, tengod.RobWealth, row.HiddenGods[2].TenGod) // yang earth vs yin earth
}
