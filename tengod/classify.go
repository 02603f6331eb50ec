package tengod

import (
	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/pillar"
)

// production is the generating 5-cycle: each element feeds the next.
var production = map[cycle.Element]cycle.Element{
	cycle.Wood:  cycle.Fire,
	cycle.Fire:  cycle.Earth,
	cycle.Earth: cycle.Metal,
	cycle.Metal: cycle.Water,
	cycle.Water: cycle.Wood,
}

// control is the overcoming 5-cycle: each element checks another.
var control = map[cycle.Element]cycle.Element{
	cycle.Wood:  cycle.Earth,
	cycle.Earth: cycle.Water,
	cycle.Water: cycle.Fire,
	cycle.Fire:  cycle.Metal,
	cycle.Metal: cycle.Wood,
}

// gods selects a title from relation × polarity match.
var gods = map[Relation]map[bool]God{
	Same:              {true: Companion, false: RobWealth},
	ProducesReference: {true: IndirectResource, false: DirectResource},
	ReferenceProduces: {true: EatingGod, false: HurtingOfficer},
	ReferenceControls: {true: IndirectWealth, false: DirectWealth},
	ControlsReference: {true: SevenKillings, false: DirectOfficer},
}

// Classify returns the relation of other to the reference element:
// equality first, then one step along each cycle in both directions.
//
// Errors: ErrUndefinedRelation (unreachable for valid elements).
func Classify(reference, other cycle.Element) (Relation, error) {
	switch {
	case reference == other:
		return Same, nil
	case production[other] == reference:
		return ProducesReference, nil
	case production[reference] == other:
		return ReferenceProduces, nil
	case control[reference] == other:
		return ReferenceControls, nil
	case control[other] == reference:
		return ControlsReference, nil
	}
	return "", ErrUndefinedRelation
}

// TenGod returns the title of candidate relative to the reference stem.
// An identical stem (same cyclic index) is the special Self title.
//
// Errors: ErrUndefinedRelation (unreachable for catalog stems).
func TenGod(reference, candidate cycle.Stem) (God, error) {
	if reference.Index == candidate.Index {
		return Self, nil
	}
	rel, err := Classify(reference.Element, candidate.Element)
	if err != nil {
		return "", err
	}
	return gods[rel][reference.Polarity == candidate.Polarity], nil
}

// MapTenGods classifies every pillar's visible stem plus every hidden
// stem in its branch against the Day Master, returning one record per
// pillar in input order.
func MapTenGods(dayMaster cycle.Stem, pillars []pillar.Pillar) ([]PillarGods, error) {
	out := make([]PillarGods, 0, len(pillars))
	for _, p := range pillars {
		visible, err := TenGod(dayMaster, p.Stem)
		if err != nil {
			return nil, err
		}

		hidden := make([]HiddenGod, 0, len(p.Branch.Hidden))
		for _, h := range p.Branch.Hidden {
			g, err := TenGod(dayMaster, h)
			if err != nil {
				return nil, err
			}
			hidden = append(hidden, HiddenGod{
				Stem:     h.Name,
				Element:  h.Element,
				Polarity: h.Polarity,
				TenGod:   g,
			})
		}

		out = append(out, PillarGods{
			Position:     p.Position,
			Stem:         p.Stem.Name,
			TenGod:       visible,
			Branch:       p.Branch.Name,
			BranchAnimal: p.Branch.Animal,
			HiddenGods:   hidden,
		})
	}
	return out, nil
}
