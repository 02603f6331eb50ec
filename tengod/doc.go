// Package tengod classifies the elemental relationship between any stem
// and a reference Day Master, producing one of the ten symbolic titles
// ("Ten Gods") that downstream interpretation layers consume.
//
// 🚀 What are the Ten Gods?
//
//	Two fixed directed 5-cycles order the five elements: the Production
//	cycle (wood→fire→earth→metal→water→wood) and the Control cycle
//	(wood→earth→water→fire→metal→wood). Any pair of elements stands in
//	exactly one of five relations: same, produces-reference,
//	reference-produces, reference-controls, controls-reference.
//	Crossing the relation with a same/different-polarity flag selects
//	one of ten titles; an identical stem is the special "Self".
//
// ✨ Key features:
//   - Classify: the five-way relation between two elements
//   - TenGod: relation × polarity → one of the ten fixed titles
//   - MapTenGods: classify every visible stem and every hidden stem of
//     a pillar set against the Day Master, order preserved
//
// ⚙️ Usage:
//
//	rel, err := tengod.Classify(cycle.Fire, cycle.Wood)  // ProducesReference
//	god, err := tengod.TenGod(dayMaster, other)
//	rows, err := tengod.MapTenGods(dayMaster, pillars)
//
// Classify failing for two valid elements would mean the cycle tables
// are inconsistent; that path returns ErrUndefinedRelation and is
// unreachable by construction.
//
// All functions are pure and safe for concurrent use.
package tengod
