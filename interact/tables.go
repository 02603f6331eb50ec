package interact

import "github.com/lunarium-dev/ganzhi/cycle"

// Rule tables, keyed by sorted index tuples. Indices follow the branch
// catalog: Zi=0, Chou=1, Yin=2, Mao=3, Chen=4, Si=5, Wu=6, Wei=7,
// Shen=8, You=9, Xu=10, Hai=11.

// Pair is an unordered branch-index pair in ascending order.
type Pair [2]int

// Triple is a three-harmony index set in ascending order.
type Triple [3]int

// PunishGroup is one named punishment group.
type PunishGroup struct {
	Name    string
	Members []int
}

// Tables bundles every rule table consulted by Detect. Obtain a private
// copy via DefaultTables and adjust it (WithCombinationResult) before
// passing it in; a nil *Tables selects the defaults.
type Tables struct {
	// Combinations maps the six combination pairs to their result
	// element. The Wu–Wei pair defaults to Fire; some traditions use
	// Earth, which is why this is data rather than fact.
	Combinations map[Pair]cycle.Element

	// Clashes, Harms and Destructions are descriptive pair rules with
	// no result element.
	Clashes      []Pair
	Harms        []Pair
	Destructions []Pair

	// Harmony maps the four three-harmony frames to their element.
	Harmony map[Triple]cycle.Element

	// Punishments are the three named groups; SelfPunishing lists the
	// four indices that punish themselves when literally repeated.
	Punishments   []PunishGroup
	SelfPunishing []int
}

// DefaultTables returns a fresh copy of the canonical rule set; the
// caller owns it and may override entries without affecting others.
func DefaultTables() *Tables {
	return &Tables{
		Combinations: map[Pair]cycle.Element{
			{0, 1}:  cycle.Earth, // Zi–Chou
			{2, 11}: cycle.Wood,  // Yin–Hai
			{3, 10}: cycle.Fire,  // Mao–Xu
			{4, 9}:  cycle.Metal, // Chen–You
			{5, 8}:  cycle.Water, // Si–Shen
			{6, 7}:  cycle.Fire,  // Wu–Wei (Earth in some traditions)
		},
		Clashes: []Pair{
			{0, 6},  // Zi–Wu
			{1, 7},  // Chou–Wei
			{2, 8},  // Yin–Shen
			{3, 9},  // Mao–You
			{4, 10}, // Chen–Xu
			{5, 11}, // Si–Hai
		},
		Harms: []Pair{
			{0, 7},  // Zi–Wei
			{1, 6},  // Chou–Wu
			{2, 5},  // Yin–Si
			{3, 4},  // Mao–Chen
			{8, 11}, // Shen–Hai
			{9, 10}, // You–Xu
		},
		Destructions: []Pair{
			{0, 9},  // Zi–You
			{1, 4},  // Chou–Chen
			{2, 11}, // Yin–Hai
			{3, 6},  // Mao–Wu
			{5, 8},  // Si–Shen
			{7, 10}, // Wei–Xu
		},
		Harmony: map[Triple]cycle.Element{
			{2, 6, 10}: cycle.Fire,  // Yin–Wu–Xu
			{0, 4, 8}:  cycle.Water, // Shen–Zi–Chen
			{1, 5, 9}:  cycle.Metal, // Si–You–Chou
			{3, 7, 11}: cycle.Wood,  // Hai–Mao–Wei
		},
		Punishments: []PunishGroup{
			{Name: "ungrateful", Members: []int{2, 5, 8}},   // Yin–Si–Shen
			{Name: "uncivilized", Members: []int{1, 10, 7}}, // Chou–Xu–Wei
			{Name: "rude", Members: []int{0, 3}},            // Zi–Mao
		},
		SelfPunishing: []int{4, 6, 9, 11}, // Chen, Wu, You, Hai
	}
}

// WithCombinationResult overrides the result element of one of the six
// combination pairs (order of a and b irrelevant) and returns the same
// Tables for chaining.
//
// Errors: ErrUnknownPair when (a,b) is not a combination pair.
func (t *Tables) WithCombinationResult(a, b int, el cycle.Element) (*Tables, error) {
	p := sortedPair(a, b)
	if _, ok := t.Combinations[p]; !ok {
		return t, ErrUnknownPair
	}
	t.Combinations[p] = el
	return t, nil
}

// sortedPair normalizes an unordered index pair.
func sortedPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}
