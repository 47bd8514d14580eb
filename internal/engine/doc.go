// Package engine keeps the grocery list consistent with the cabinet
// inventory.
//
// ARCHITECTURE:
//
// Single-Consumer Event Loop:
// Run() consumes the inventory feed's change channel in one goroutine.
// Every store mutation the engine performs originates from that loop (or
// from the one-time initialization that precedes it), which keeps the
// reasoning simple without a lock hierarchy.
//
// Lifecycle:
//  1. Initializing: sweep duplicates, reconcile the full inventory
//     snapshot, sweep again.
//  2. Listening: subscribe to live changes; added/modified events pass
//     the debounce gate and are reconciled, removed events are ignored.
//
// Correctness model:
// The engine does not serialize work per identity key. Reconcile is
// idempotent and the sweeper collapses any duplicates that slip through
// overlapping events, so eventual consistency is achieved without
// coordination. Store failures are logged and abandoned; the next event
// or sweep restores the invariants. Retrying in place would only race the
// feed.
//
// Invariants (holding whenever the engine is not mid-reconciliation):
//   - at most one auto entry per identity key
//   - manual entries are never deleted by reconciliation
//   - an auto entry for key K implies the last observed quantity for K
//     was at or below the low-stock threshold
package engine
