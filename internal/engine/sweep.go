package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oskarw/pantrylist/internal/grocery"
	"github.com/oskarw/pantrylist/internal/identity"
)

// Sweep collapses duplicate entries sharing an identity key down to one
// survivor and returns the number of entries deleted. The count is for
// diagnostics, not control flow.
//
// Per group the survivor is the first auto member in creation order, or
// the first member outright when no auto member exists. Everything else
// in the group is deleted, including manual entries that collided on the
// key.
//
// Safe to invoke repeatedly and concurrently with Reconcile: a sweep
// racing a create may miss the new entry in its snapshot, and the next
// sweep or reconcile restores the uniqueness invariant.
func (e *Engine) Sweep(ctx context.Context) (int, error) {
	entries, err := e.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list entries: %w", err)
	}

	groups := make(map[string][]grocery.Entry)
	for _, en := range entries {
		k := groupKey(en)
		groups[k] = append(groups[k], en)
	}

	deleted := 0
	for key, group := range groups {
		if len(group) < 2 {
			continue
		}

		survivor := group[0]
		for _, en := range group {
			if en.Ownership == grocery.OwnershipAuto {
				survivor = en
				break
			}
		}

		for _, en := range group {
			if en.ID == survivor.ID {
				continue
			}
			if err := e.store.Delete(ctx, en.ID); err != nil {
				// Abandon this delete; the entry stays until the
				// next sweep.
				slog.Error("sweep delete failed", "id", en.ID, "key", key, "error", err)
				continue
			}
			deleted++
		}
	}

	if deleted > 0 {
		slog.Debug("sweep complete", "deleted", deleted)
	}
	return deleted, nil
}

// groupKey buckets entries for de-duplication: the identity key when one
// is derivable, otherwise the exact lower-cased name.
func groupKey(en grocery.Entry) string {
	if k, ok := identity.Key(en.Brand, en.Name); ok {
		return k
	}
	return identity.NameKey(en.Name)
}
