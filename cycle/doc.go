// Package cycle defines the two interlocking calendrical cycles of the
// sexagenary system: the 10 Heavenly Stems and the 12 Earthly Branches.
//
// 🚀 What is cycle?
//
//	The stem and branch catalogs are the foundation every other package
//	builds on. Each stem carries an element, a polarity and a cyclic
//	index 0–9; each branch carries an animal, a primary element, a
//	polarity, a cyclic index 0–11 and an ordered list of 1–3 hidden
//	stems (main qi first, then middle, then residual).
//
// ✨ Key features:
//   - statically enumerated, immutable catalogs (10 stems, 12 branches)
//   - lookup by pinyin name, by animal, or by cyclic index
//   - hidden stems pre-resolved to full Stem values, order preserved
//   - a single shared Registry built once at process start
//
// ⚙️ Usage:
//
//	reg := cycle.Default()
//	jia, err := reg.StemByName("Jia")
//	zi, err := reg.BranchByIndex(0)
//
// Invariant: for any valid sexagenary pairing, stem.Index%2 == branch.Index%2 —
// both cycles alternate polarity in lockstep.
//
// All lookups are read-only and safe for unrestricted concurrent use.
package cycle
