package store

import (
	"context"
	"time"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// Create inserts a new entry, assigning ID, Seq, and AddedAt.
func (s *Store) Create(ctx context.Context, e grocery.Entry) (grocery.Entry, error) {
	e.ID = s.ids.NewID()
	e.AddedAt = s.now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, brand, name, checked, ownership, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		e.ID,
		e.Brand,
		e.Name,
		boolInt(e.Checked),
		e.Ownership.String(),
		e.AddedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return grocery.Entry{}, grocery.NewStoreError("create", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return grocery.Entry{}, grocery.NewStoreError("create", err)
	}
	e.Seq = seq

	s.notify(ctx)
	return e, nil
}

// Delete removes an entry by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return grocery.NewStoreError("delete", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return grocery.NewStoreError("delete", err)
	} else if n == 0 {
		return grocery.ErrNotFound
	}

	s.notify(ctx)
	return nil
}

// UpdateName renames an entry by ID.
func (s *Store) UpdateName(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE entries SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return grocery.NewStoreError("update name", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return grocery.NewStoreError("update name", err)
	} else if n == 0 {
		return grocery.ErrNotFound
	}

	s.notify(ctx)
	return nil
}

// SetChecked sets an entry's checked flag.
func (s *Store) SetChecked(ctx context.Context, id string, checked bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE entries SET checked = ? WHERE id = ?`, boolInt(checked), id)
	if err != nil {
		return grocery.NewStoreError("set checked", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return grocery.NewStoreError("set checked", err)
	} else if n == 0 {
		return grocery.ErrNotFound
	}

	s.notify(ctx)
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
