package interact

import (
	"errors"

	"github.com/lunarium-dev/ganzhi/cycle"
)

var (
	// ErrBadEntry indicates an input entry whose branch does not come
	// from the catalog (index out of range or empty name).
	ErrBadEntry = errors.New("interact: entry branch outside catalog")

	// ErrUnknownPair indicates a combination override for a pair that
	// is not one of the six fixed combinations.
	ErrUnknownPair = errors.New("interact: pair is not a six-combination")
)

// Entry is one labeled branch in the detector input: a natal position
// ("year", "month", "day", "hour") or an external extension such as
// "annual" or a luck-pillar tag.
type Entry struct {
	Branch cycle.Branch `json:"branch"`
	Label  string       `json:"label"`
}

// Record types. Punishment group records carry a per-group tag built by
// punishmentType; everything else uses a fixed constant.
const (
	TypeCombination     = "Six Combination (六合)"
	TypeClash           = "Six Clash (六冲)"
	TypeHarm            = "Six Harm (六害)"
	TypeDestruction     = "Destruction (相破)"
	TypeHarmonyComplete = "Three Harmony (三合) - COMPLETE"
	TypeHarmonyPartial  = "Three Harmony (三合) - PARTIAL"
	TypeSelfPunishment  = "Self-Punishment (自刑)"
)

// punishmentType tags a named punishment group record, e.g.
// "Punishment (ungrateful) (刑)".
func punishmentType(group string) string {
	return "Punishment (" + group + ") (刑)"
}

// Record is one detected interaction. Fields beyond Type, Branches and
// Note apply only to some record types and serialize only when set.
// Overlapping records are all reported; conflict resolution is left to
// the consumer.
type Record struct {
	// Type is the interaction tag, e.g. TypeClash.
	Type string `json:"type"`
	// Branches lists every participant as "label:Name(Animal)".
	Branches []string `json:"branches"`
	// ResultElement is set for combinations and harmony frames.
	ResultElement cycle.Element `json:"result_element,omitempty"`
	// Missing names the absent branch of a partial harmony frame,
	// as "Name(Animal)".
	Missing string `json:"missing,omitempty"`
	// Complete is set on named punishment groups: true when every
	// group member is present.
	Complete *bool `json:"complete,omitempty"`
	// Note is the fixed rationale string of the matched rule.
	Note string `json:"note"`
}
