// Package state provides thread-safe collection state for the bookdesk
// application.
//
// # Overview
//
// This package implements the store that holds the last-fetched book and
// rental lists plus per-collection loading flags and the current error
// banner message. It is the coordination point where refreshes triggered by
// mutations meet UI rendering.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest collections
//   - Uses sync.RWMutex for concurrent access
//   - Writers are the refresh commands; readers are UI renders
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains books, rentals, loading flags, error message, timestamps
//   - Returned by value with defensive copies
//
// # Update Semantics
//
// Each collection refresh runs through a Begin/Finish pair:
//
//	store.BeginBooks()                  → LoadingBooks=true, LastError=""
//	store.FinishBooks(books, "")        → Books replaced wholesale
//	store.FinishBooks(nil, "Failed...") → Books unchanged, error recorded
//
// The store never merges or patches individual records. A refresh either
// replaces the whole list or leaves it exactly as the last successful fetch
// left it, so readers never observe a partially updated collection.
//
// # Error Banner Semantics
//
// LastError holds at most one message. A newly recorded error replaces the
// previous one; a successful action does not clear a lingering message —
// only an explicit ClearError (user dismissal) or a newer error does.
//
// # Derived Views
//
// views.go holds pure functions over snapshot data:
//
//   - AvailableBooks: books with status AVAILABLE, source order preserved
//   - PartitionRentals: active (no return date) vs returned
//
// Derived views hold no state and are recomputed on every read. Memoization
// would be an optimization, not a correctness requirement, and is not done.
//
// # Defensive Copying
//
// Snapshot clones both slices so the UI can never mutate stored data and a
// concurrent refresh can never mutate data the UI is rendering.
//
// # Design Rationale
//
// This package intentionally avoids:
//   - Channels (mutex is simpler for this access pattern)
//   - Incremental updates (full replacement is easier and always consistent)
//   - Versioning/history (only the latest state matters)
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
package state
