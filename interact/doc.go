// Package interact detects every structural interaction inside a set of
// labeled earthly branches: combinations, clashes, harms, destructions,
// three-harmony frames and punishments.
//
// 🚀 What is branch interaction detection?
//
//	Given the four natal branches — optionally extended with transit
//	branches such as the annual one — fixed rule tables define which
//	index pairs, triples and repeats are significant. The detector is a
//	pure pattern matcher: it reports an exhaustive flag list and never
//	adjudicates between overlapping or contradictory records; that is a
//	downstream consumer's job.
//
// ✨ Key features:
//   - Six Combinations (pair → result element), Six Clashes, Six Harms,
//     Destructions: O(n²) unordered pair scan against 6-entry tables
//   - Three Harmony: 4 fixed triples; 3 present ⇒ COMPLETE, exactly 2 ⇒
//     PARTIAL with the missing branch named
//   - Punishments: three named groups (ungrateful, uncivilized, rude)
//     plus self-punishment, which fires only on a literally repeated
//     branch index
//   - all tables are data; the debated Wu–Wei combination result
//     (Fire by default, Earth in some traditions) is overridable
//
// ⚙️ Usage:
//
//	entries := []interact.Entry{
//	  {Branch: zi, Label: "year"},
//	  {Branch: chou, Label: "month"},
//	}
//	records, err := interact.Detect(entries, nil) // nil ⇒ default tables
//
// Cost: O(n²) pairs + O(1) fixed-table checks, n typically 4–5.
// Pure and safe for concurrent use; a Tables value must not be mutated
// while a Detect call is using it.
package interact
