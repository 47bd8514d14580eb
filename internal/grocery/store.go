package grocery

import "context"

// Store is the persisted grocery-list collection.
//
// Implementations must assign ID, Seq, and AddedAt on Create, keep List
// ordered by creation (Seq ascending), and report transient I/O failures
// as *StoreError so callers can distinguish them from domain errors.
type Store interface {
	// List returns all entries in creation order.
	List(ctx context.Context) ([]Entry, error)

	// Create persists a new entry and returns it with store-assigned
	// ID, Seq, and AddedAt populated.
	Create(ctx context.Context, e Entry) (Entry, error)

	// Delete removes an entry by ID. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// UpdateName renames an entry by ID. Returns ErrNotFound if absent.
	UpdateName(ctx context.Context, id, name string) error

	// SetChecked sets an entry's checked flag. Returns ErrNotFound if absent.
	SetChecked(ctx context.Context, id string, checked bool) error

	// Watch returns a channel receiving the full ordered list after every
	// mutation. Slow consumers observe the latest list, not every
	// intermediate one. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan []Entry, error)
}
