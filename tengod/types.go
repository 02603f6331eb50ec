package tengod

import (
	"errors"

	"github.com/lunarium-dev/ganzhi/cycle"
	"github.com/lunarium-dev/ganzhi/pillar"
)

// ErrUndefinedRelation indicates the classifier found no relation
// between two elements. With five elements and two consistent 5-cycles
// this is unreachable; seeing it means the cycle tables were corrupted.
var ErrUndefinedRelation = errors.New("tengod: undefined element relation")

// Relation is the five-way elemental relation from the reference
// (Day Master) element's perspective. Wire values match the chart
// serialization contract.
type Relation string

const (
	// Same: both elements identical.
	Same Relation = "same"
	// ProducesReference: the other element produces the reference.
	ProducesReference Relation = "produces_me"
	// ReferenceProduces: the reference produces the other element.
	ReferenceProduces Relation = "i_produce"
	// ReferenceControls: the reference controls the other element.
	ReferenceControls Relation = "i_control"
	// ControlsReference: the other element controls the reference.
	ControlsReference Relation = "controls_me"
)

// God is one of the ten symbolic relation titles, plus the special
// "Self" for the Day Master's own stem.
type God string

const (
	Self             God = "Self (Day Master)"
	Companion        God = "Companion (比肩 Bi Jian)"
	RobWealth        God = "Rob Wealth (劫财 Jie Cai)"
	IndirectResource God = "Indirect Resource (偏印 Pian Yin)"
	DirectResource   God = "Direct Resource (正印 Zheng Yin)"
	EatingGod        God = "Eating God (食神 Shi Shen)"
	HurtingOfficer   God = "Hurting Officer (伤官 Shang Guan)"
	IndirectWealth   God = "Indirect Wealth (偏财 Pian Cai)"
	DirectWealth     God = "Direct Wealth (正财 Zheng Cai)"
	SevenKillings    God = "7 Killings (七杀 Qi Sha)"
	DirectOfficer    God = "Direct Officer (正官 Zheng Guan)"
)

// HiddenGod is the classification of one hidden stem inside a branch.
type HiddenGod struct {
	Stem     string         `json:"stem"`
	Element  cycle.Element  `json:"element"`
	Polarity cycle.Polarity `json:"polarity"`
	TenGod   God            `json:"ten_god"`
}

// PillarGods is the Ten-God record of one pillar: the visible stem's
// title plus one entry per hidden stem, main/middle/residual order
// preserved.
type PillarGods struct {
	Position     pillar.Position `json:"position"`
	Stem         string          `json:"stem"`
	TenGod       God             `json:"ten_god"`
	Branch       string          `json:"branch"`
	BranchAnimal string          `json:"branch_animal"`
	HiddenGods   []HiddenGod     `json:"hidden_stem_gods"`
}
