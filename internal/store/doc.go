// Package store provides the SQLite-backed grocery list.
//
// The store is the device-local persisted collection behind the
// reconciliation engine and the user-facing service. SQLite runs in WAL
// mode with a single writer connection; every mutation broadcasts the
// full ordered list to watchers so the presentation layer always renders
// the latest state.
//
// Ordering: entries carry an AUTOINCREMENT seq assigned at insert. All
// reads order by seq. The added_at wall timestamp is stored for display
// only and never used for ordering.
package store
