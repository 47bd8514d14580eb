// Package inventory defines the read-side contract the smart cabinet
// presents to the reconciliation engine: a one-shot snapshot of current
// stock plus a long-lived stream of change events.
//
// The detection pipeline that produces these events (cameras, boundary
// calibration, barcode scanning) lives outside this repository. Two feed
// implementations are provided: SimFeed for tests and scripted scenarios,
// and JSONFeed for the newline-delimited JSON protocol the cabinet
// firmware emits.
package inventory

import "context"

// Item is a single product observed in the cabinet.
// Quantity is a non-negative unit count; fractional stock is not modeled.
type Item struct {
	Brand    string `json:"brand"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ChangeKind distinguishes inventory change events.
type ChangeKind int

const (
	// ChangeAdded indicates an item newly observed in the cabinet.
	ChangeAdded ChangeKind = iota + 1
	// ChangeModified indicates an explicit quantity change.
	ChangeModified
	// ChangeRemoved indicates an item no longer observed. The engine
	// ignores these; removal alone does not touch the grocery list.
	ChangeRemoved
)

// String returns the wire name of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change pairs a change kind with the item it concerns.
type Change struct {
	Kind ChangeKind
	Item Item
}

// Feed is the inventory source the engine consumes.
//
// Snapshot is read once during initialization. Changes returns a
// long-lived channel of live events; implementations must close the
// channel when the context is cancelled or the source is exhausted.
type Feed interface {
	Snapshot(ctx context.Context) ([]Item, error)
	Changes(ctx context.Context) (<-chan Change, error)
}
