package cycle

import "errors"

// StemCount and BranchCount are the fixed lengths of the two cycles.
const (
	StemCount   = 10
	BranchCount = 12
)

var (
	// ErrUnknownStem indicates a stem lookup with a name or index
	// outside the 10-entry catalog.
	ErrUnknownStem = errors.New("cycle: unknown heavenly stem")

	// ErrUnknownBranch indicates a branch lookup with a name, animal or
	// index outside the 12-entry catalog.
	ErrUnknownBranch = errors.New("cycle: unknown earthly branch")
)

// Element is one of the five phases (Wu Xing).
type Element string

const (
	Wood  Element = "wood"
	Fire  Element = "fire"
	Earth Element = "earth"
	Metal Element = "metal"
	Water Element = "water"
)

// Elements lists the five phases in production-cycle order.
// Useful for deterministic iteration over distribution maps.
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

// Polarity is the yin/yang quality of a stem or branch.
type Polarity string

const (
	Yang Polarity = "yang"
	Yin  Polarity = "yin"
)

// Stem is one of the 10 Heavenly Stems. Immutable.
type Stem struct {
	// Chinese is the hanzi glyph, e.g. "甲".
	Chinese string `json:"chinese"`
	// Name is the pinyin name, e.g. "Jia". Unique within the catalog.
	Name string `json:"name"`
	// Element is the stem's phase.
	Element Element `json:"element"`
	// Polarity alternates yang/yin along the cycle.
	Polarity Polarity `json:"polarity"`
	// Index is the cyclic index, 0–9.
	Index int `json:"index"`
}

// String renders the stem as "Jia (yang wood)".
func (s Stem) String() string {
	return s.Name + " (" + string(s.Polarity) + " " + string(s.Element) + ")"
}

// Branch is one of the 12 Earthly Branches. Immutable.
type Branch struct {
	// Chinese is the hanzi glyph, e.g. "子".
	Chinese string `json:"chinese"`
	// Name is the pinyin name, e.g. "Zi". Unique within the catalog.
	Name string `json:"name"`
	// Animal is the zodiac label, e.g. "Rat". Unique within the catalog.
	Animal string `json:"animal"`
	// Element is the branch's primary (seasonal) phase.
	Element Element `json:"element"`
	// Polarity alternates yang/yin along the cycle.
	Polarity Polarity `json:"polarity"`
	// Index is the cyclic index, 0–11.
	Index int `json:"index"`
	// Hidden lists the stems contained in the branch, main qi first,
	// then middle, then residual. Length 1–3.
	Hidden []Stem `json:"hidden_stems"`
}

// String renders the branch as "Zi (Rat)".
func (b Branch) String() string {
	return b.Name + " (" + b.Animal + ")"
}
