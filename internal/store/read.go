package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// List returns all entries in creation order (seq ascending).
// Returns an empty slice (not nil) when the list is empty.
func (s *Store) List(ctx context.Context) ([]grocery.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, brand, name, checked, ownership, added_at
		FROM entries
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, grocery.NewStoreError("list", err)
	}
	defer rows.Close()

	entries := []grocery.Entry{}
	for rows.Next() {
		var (
			e         grocery.Entry
			checked   int
			ownership string
			addedAt   string
		)
		if err := rows.Scan(&e.Seq, &e.ID, &e.Brand, &e.Name, &checked, &ownership, &addedAt); err != nil {
			return nil, grocery.NewStoreError("list", err)
		}

		e.Checked = checked != 0

		own, ok := grocery.ParseOwnership(ownership)
		if !ok {
			return nil, grocery.NewStoreError("list", fmt.Errorf("entry %s: unknown ownership %q", e.ID, ownership))
		}
		e.Ownership = own

		ts, err := time.Parse(time.RFC3339Nano, addedAt)
		if err != nil {
			return nil, grocery.NewStoreError("list", fmt.Errorf("entry %s: bad added_at: %w", e.ID, err))
		}
		e.AddedAt = ts

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, grocery.NewStoreError("list", err)
	}

	return entries, nil
}
