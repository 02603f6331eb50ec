package interact

import (
	"sort"
	"strconv"

	"github.com/lunarium-dev/ganzhi/cycle"
)

// Fixed rationale strings; kept as data next to the tables they explain.
const (
	noteClash       = "Direct opposition. Disruption, conflict, forced movement."
	noteHarm        = "Hidden damage, betrayal, subtle undermining."
	noteDestruction = "Breaking apart, dissolution of existing structure."
	noteSelfPunish  = "Self-inflicted pressure, internal conflict."
)

// pairRule is one descriptive pair table plus its record tag and note,
// letting a single matcher serve clashes, harms and destructions.
type pairRule struct {
	kind  string
	pairs []Pair
	note  string
}

// Detect scans the labeled branch set and returns every active
// interaction, in deterministic order: pair rules over unordered entry
// pairs (i<j), then harmony frames, then punishments. Entries with an
// empty label get "branch_<i>".
//
// No deduplication is performed: a branch index recurring at several
// labeled positions matches pair rules once per position pair, and the
// same branch may appear in contradictory records.
//
// tables may be nil for the canonical rule set.
// Errors: ErrBadEntry.
func Detect(entries []Entry, tables *Tables) ([]Record, error) {
	if tables == nil {
		tables = DefaultTables()
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		if e.Branch.Index < 0 || e.Branch.Index >= cycle.BranchCount || e.Branch.Name == "" {
			return nil, ErrBadEntry
		}
		labels[i] = e.Label
		if labels[i] == "" {
			labels[i] = "branch_" + strconv.Itoa(i)
		}
	}

	var records []Record

	// Pair rules: unordered scan, every table per pair.
	pairRules := []pairRule{
		{TypeClash, tables.Clashes, noteClash},
		{TypeHarm, tables.Harms, noteHarm},
		{TypeDestruction, tables.Destructions, noteDestruction},
	}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			p := sortedPair(entries[i].Branch.Index, entries[j].Branch.Index)
			participants := []string{
				participant(labels[i], entries[i].Branch),
				participant(labels[j], entries[j].Branch),
			}

			if el, ok := tables.Combinations[p]; ok {
				records = append(records, Record{
					Type:          TypeCombination,
					Branches:      participants,
					ResultElement: el,
					Note:          "Can transform into " + string(el) + " if supported by stems/season",
				})
			}
			for _, rule := range pairRules {
				if containsPair(rule.pairs, p) {
					records = append(records, Record{
						Type:     rule.kind,
						Branches: participants,
						Note:     rule.note,
					})
				}
			}
		}
	}

	records = append(records, harmonyRecords(entries, labels, tables)...)
	records = append(records, punishmentRecords(entries, labels, tables)...)

	return records, nil
}

// participant formats one "label:Name(Animal)" participant string.
func participant(label string, b cycle.Branch) string {
	return label + ":" + b.Name + "(" + b.Animal + ")"
}

// containsPair reports whether the sorted pair p is in the table.
func containsPair(pairs []Pair, p Pair) bool {
	for _, q := range pairs {
		if q == p {
			return true
		}
	}
	return false
}

// harmonyRecords checks the four three-harmony frames by index
// presence, independent of label. All three present yields one COMPLETE
// record; exactly two yields one PARTIAL record naming the missing
// branch. The recorded position per index is the last entry holding it.
func harmonyRecords(entries []Entry, labels []string, tables *Tables) []Record {
	position := make(map[int]int, len(entries)) // branch index -> entry index
	for i, e := range entries {
		position[e.Branch.Index] = i
	}

	triples := sortedTriples(tables.Harmony)

	var records []Record
	for _, tr := range triples {
		el := tables.Harmony[tr]
		var present, missing []int
		for _, idx := range tr[:] {
			if _, ok := position[idx]; ok {
				present = append(present, idx)
			} else {
				missing = append(missing, idx)
			}
		}

		switch len(present) {
		case 3:
			records = append(records, Record{
				Type:          TypeHarmonyComplete,
				Branches:      harmonyParticipants(present, position, entries, labels),
				ResultElement: el,
				Note:          "Full " + string(el) + " frame. Strong transformation.",
			})
		case 2:
			mb, _ := cycle.Default().BranchByIndex(missing[0])
			records = append(records, Record{
				Type:          TypeHarmonyPartial,
				Branches:      harmonyParticipants(present, position, entries, labels),
				ResultElement: el,
				Missing:       mb.Name + "(" + mb.Animal + ")",
				Note:          "Partial " + string(el) + " frame. Tendency without full lock-in.",
			})
		}
	}
	return records
}

// harmonyParticipants renders one participant per present index.
func harmonyParticipants(present []int, position map[int]int, entries []Entry, labels []string) []string {
	out := make([]string, 0, len(present))
	for _, idx := range present {
		i := position[idx]
		out = append(out, participant(labels[i], entries[i].Branch))
	}
	return out
}

// punishmentRecords checks the named punishment groups (≥2 members
// present, complete only when all are) and self-punishment, which fires
// per index only on a literal repeat (≥2 occurrences of that index).
func punishmentRecords(entries []Entry, labels []string, tables *Tables) []Record {
	position := make(map[int]int, len(entries))
	for i, e := range entries {
		position[e.Branch.Index] = i
	}

	var records []Record
	for _, group := range tables.Punishments {
		var present []int
		for _, idx := range group.Members {
			if _, ok := position[idx]; ok {
				present = append(present, idx)
			}
		}
		if len(present) < 2 {
			continue
		}
		complete := len(present) == len(group.Members)
		degree := "Partial"
		if complete {
			degree = "Full"
		}
		records = append(records, Record{
			Type:     punishmentType(group.Name),
			Branches: harmonyParticipants(present, position, entries, labels),
			Complete: &complete,
			Note:     degree + " " + group.Name + " punishment.",
		})
	}

	for _, idx := range tables.SelfPunishing {
		var participants []string
		for i, e := range entries {
			if e.Branch.Index == idx {
				participants = append(participants, participant(labels[i], e.Branch))
			}
		}
		if len(participants) >= 2 {
			records = append(records, Record{
				Type:     TypeSelfPunishment,
				Branches: participants,
				Note:     noteSelfPunish,
			})
		}
	}
	return records
}

// sortedTriples returns the harmony keys in lexicographic order for
// reproducible record ordering (map iteration is randomized).
func sortedTriples(m map[Triple]cycle.Element) []Triple {
	out := make([]Triple, 0, len(m))
	for tr := range m {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}
