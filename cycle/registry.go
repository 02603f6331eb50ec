package cycle

// The catalogs below are the authoritative enumeration of both cycles.
// Hidden-stem composition follows the orthodox main/middle/residual
// ordering; branches Zi, Mao and You contain a single pure qi.

var stems = [StemCount]Stem{
	{Chinese: "甲", Name: "Jia", Element: Wood, Polarity: Yang, Index: 0},
	{Chinese: "乙", Name: "Yi", Element: Wood, Polarity: Yin, Index: 1},
	{Chinese: "丙", Name: "Bing", Element: Fire, Polarity: Yang, Index: 2},
	{Chinese: "丁", Name: "Ding", Element: Fire, Polarity: Yin, Index: 3},
	{Chinese: "戊", Name: "Wu", Element: Earth, Polarity: Yang, Index: 4},
	{Chinese: "己", Name: "Ji", Element: Earth, Polarity: Yin, Index: 5},
	{Chinese: "庚", Name: "Geng", Element: Metal, Polarity: Yang, Index: 6},
	{Chinese: "辛", Name: "Xin", Element: Metal, Polarity: Yin, Index: 7},
	{Chinese: "壬", Name: "Ren", Element: Water, Polarity: Yang, Index: 8},
	{Chinese: "癸", Name: "Gui", Element: Water, Polarity: Yin, Index: 9},
}

// branchSpec is the declarative form of a branch entry; hidden stems are
// referenced by pinyin name and resolved once at registry build time.
type branchSpec struct {
	chinese string
	name    string
	animal  string
	element Element
	pol     Polarity
	hidden  []string
}

var branchSpecs = [BranchCount]branchSpec{
	{"子", "Zi", "Rat", Water, Yang, []string{"Gui"}},
	{"丑", "Chou", "Ox", Earth, Yin, []string{"Ji", "Gui", "Xin"}},
	{"寅", "Yin", "Tiger", Wood, Yang, []string{"Jia", "Bing", "Wu"}},
	{"卯", "Mao", "Rabbit", Wood, Yin, []string{"Yi"}},
	{"辰", "Chen", "Dragon", Earth, Yang, []string{"Wu", "Yi", "Gui"}},
	{"巳", "Si", "Snake", Fire, Yin, []string{"Bing", "Wu", "Geng"}},
	{"午", "Wu", "Horse", Fire, Yang, []string{"Ding", "Ji"}},
	{"未", "Wei", "Goat", Earth, Yin, []string{"Ji", "Ding", "Yi"}},
	{"申", "Shen", "Monkey", Metal, Yang, []string{"Geng", "Ren", "Wu"}},
	{"酉", "You", "Rooster", Metal, Yin, []string{"Xin"}},
	{"戌", "Xu", "Dog", Earth, Yang, []string{"Wu", "Xin", "Ding"}},
	{"亥", "Hai", "Pig", Water, Yin, []string{"Ren", "Jia"}},
}

// Registry provides read-only lookup into the stem and branch catalogs.
// Construct once via Default (or NewRegistry for an isolated copy) and
// share freely; all methods are safe for concurrent use.
type Registry struct {
	stems    [StemCount]Stem
	branches [BranchCount]Branch

	stemByName     map[string]Stem
	branchByName   map[string]Branch
	branchByAnimal map[string]Branch
}

// defaultRegistry is the process-wide shared instance; the catalogs are
// immutable so a single copy serves every caller.
var defaultRegistry = NewRegistry()

// Default returns the shared Registry.
func Default() *Registry { return defaultRegistry }

// NewRegistry builds a Registry from the static catalogs.
func NewRegistry() *Registry {
	r := &Registry{
		stems:          stems,
		stemByName:     make(map[string]Stem, StemCount),
		branchByName:   make(map[string]Branch, BranchCount),
		branchByAnimal: make(map[string]Branch, BranchCount),
	}
	for _, s := range r.stems {
		r.stemByName[s.Name] = s
	}
	for i, spec := range branchSpecs {
		b := Branch{
			Chinese:  spec.chinese,
			Name:     spec.name,
			Animal:   spec.animal,
			Element:  spec.element,
			Polarity: spec.pol,
			Index:    i,
			Hidden:   make([]Stem, 0, len(spec.hidden)),
		}
		for _, name := range spec.hidden {
			b.Hidden = append(b.Hidden, r.stemByName[name])
		}
		r.branches[i] = b
		r.branchByName[b.Name] = b
		r.branchByAnimal[b.Animal] = b
	}
	return r
}

// StemByName returns the stem with the given pinyin name.
func (r *Registry) StemByName(name string) (Stem, error) {
	s, ok := r.stemByName[name]
	if !ok {
		return Stem{}, ErrUnknownStem
	}
	return s, nil
}

// StemByIndex returns the stem at cyclic index i (0–9).
func (r *Registry) StemByIndex(i int) (Stem, error) {
	if i < 0 || i >= StemCount {
		return Stem{}, ErrUnknownStem
	}
	return r.stems[i], nil
}

// BranchByName returns the branch with the given pinyin name.
func (r *Registry) BranchByName(name string) (Branch, error) {
	b, ok := r.branchByName[name]
	if !ok {
		return Branch{}, ErrUnknownBranch
	}
	return b, nil
}

// BranchByAnimal returns the branch with the given zodiac animal label.
func (r *Registry) BranchByAnimal(animal string) (Branch, error) {
	b, ok := r.branchByAnimal[animal]
	if !ok {
		return Branch{}, ErrUnknownBranch
	}
	return b, nil
}

// BranchByIndex returns the branch at cyclic index i (0–11).
func (r *Registry) BranchByIndex(i int) (Branch, error) {
	if i < 0 || i >= BranchCount {
		return Branch{}, ErrUnknownBranch
	}
	return r.branches[i], nil
}

// Stems returns the full stem catalog in cyclic order.
func (r *Registry) Stems() []Stem {
	out := make([]Stem, StemCount)
	copy(out, r.stems[:])
	return out
}

// Branches returns the full branch catalog in cyclic order.
func (r *Registry) Branches() []Branch {
	out := make([]Branch, BranchCount)
	copy(out, r.branches[:])
	return out
}
