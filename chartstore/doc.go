// Package chartstore persists computed natal charts in a local SQLite
// database.
//
// 🚀 What is chartstore?
//
// A thin archive layer over modernc.org/sqlite. Each saved chart keeps
// the original computation input and the full serialized result, plus
// denormalized summary columns (day master, pillar line) so listings
// never deserialize the JSON payload.
//
// ✨ Key features
//
//   - Open(path) configures WAL journaling and a busy timeout, then
//     creates the schema on first use.
//   - Save / Load round-trip chart.Input and chart.Chart as JSON.
//   - List returns lightweight summaries in insertion order.
//   - Named sentinel errors (ErrNotFound, ErrDuplicateName) for
//     precise errors.Is handling.
//
// ⚙️ Usage
//
//	store, err := chartstore.Open("charts.db")
//	if err != nil { ... }
//	defer store.Close()
//
//	id, err := store.Save(ctx, "client-a", input, natal)
//	rec, err := store.Load(ctx, "client-a")
//
// The store is safe for concurrent use; database/sql serializes access
// to the single SQLite handle.
package chartstore
