package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oskarw/pantrylist/internal/grocery"
	"github.com/oskarw/pantrylist/internal/identity"
	"github.com/oskarw/pantrylist/internal/inventory"
)

// Reconcile brings the grocery list in line with one inventory item.
// Failures are logged, never propagated: the event loop must keep
// processing subsequent events.
func (e *Engine) Reconcile(ctx context.Context, item inventory.Item) {
	if err := e.reconcile(ctx, item); err != nil {
		slog.Error("reconcile failed",
			"brand", item.Brand,
			"name", item.Name,
			"quantity", item.Quantity,
			"error", err,
		)
	}
}

// reconcile is the core decision function.
//
// Items without both brand and name are outside the engine's management
// and skipped entirely. At or below the threshold, an auto entry is
// created unless any entry (auto or manual) already covers the key.
// Above the threshold, every auto entry at the key is deleted; manual
// entries are never touched.
//
// Idempotent: repeating the call with an unchanged quantity converges
// after the first call.
func (e *Engine) reconcile(ctx context.Context, item inventory.Item) error {
	brand := strings.TrimSpace(item.Brand)
	name := strings.TrimSpace(item.Name)
	if brand == "" || name == "" {
		return nil
	}

	key, ok := identity.Key(brand, name)
	if !ok {
		return nil
	}

	// Matching is by stored brand/name fields run through the same
	// normalizer, so brand-less manual entries naming the full product
	// still count as covering the key.
	entries, err := e.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	var matches []grocery.Entry
	for _, en := range entries {
		if k, ok := identity.Key(en.Brand, en.Name); ok && k == key {
			matches = append(matches, en)
		}
	}

	if item.Quantity <= e.cfg.LowStockThreshold {
		if len(matches) > 0 {
			// Existence is sufficient; never create a second entry.
			return nil
		}
		created, err := e.store.Create(ctx, grocery.Entry{
			Brand:     brand,
			Name:      name,
			Ownership: grocery.OwnershipAuto,
		})
		if err != nil {
			return fmt.Errorf("create auto entry: %w", err)
		}
		slog.Info("auto entry created",
			"id", created.ID,
			"key", key,
			"quantity", item.Quantity,
		)
		return nil
	}

	for _, en := range matches {
		if en.Ownership != grocery.OwnershipAuto {
			continue
		}
		if err := e.store.Delete(ctx, en.ID); err != nil {
			return fmt.Errorf("delete auto entry %s: %w", en.ID, err)
		}
		slog.Info("auto entry removed",
			"id", en.ID,
			"key", key,
			"quantity", item.Quantity,
		)
	}

	return nil
}
