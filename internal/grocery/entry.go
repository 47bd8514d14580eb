// Package grocery holds the grocery-list domain model: entries, the store
// contract, error kinds, and the user-facing Service.
//
// The package is the domain boundary and carries no infrastructure
// dependencies; the SQLite store and the reconciliation engine depend on
// it, never the other way around.
package grocery

import "time"

// Ownership records who manages an entry's lifecycle.
type Ownership int

const (
	// OwnershipAuto marks an entry created and deleted by the
	// reconciliation engine.
	OwnershipAuto Ownership = iota + 1
	// OwnershipManual marks an entry created by explicit user action.
	// The engine never deletes manual entries.
	OwnershipManual
)

// String returns the stored name of the ownership kind.
func (o Ownership) String() string {
	switch o {
	case OwnershipAuto:
		return "auto"
	case OwnershipManual:
		return "manual"
	default:
		return "unknown"
	}
}

// ParseOwnership converts a stored ownership name back to its enum value.
func ParseOwnership(s string) (Ownership, bool) {
	switch s {
	case "auto":
		return OwnershipAuto, true
	case "manual":
		return OwnershipManual, true
	default:
		return 0, false
	}
}

// Entry is a single grocery-list line.
//
// Seq is the store's monotonic creation counter; list ordering always uses
// Seq, never the AddedAt wall timestamp.
type Entry struct {
	ID        string
	Brand     string
	Name      string
	Checked   bool
	AddedAt   time.Time
	Seq       int64
	Ownership Ownership
}
