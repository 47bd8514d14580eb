package grocery

import (
	"context"
	"strings"
)

// Session reports whether an authenticated user context is active.
//
// Authentication itself is an external collaborator; the Service only
// needs the yes/no answer. Without a session every entry point is a no-op
// with no error, matching the product's "signed-out device does nothing"
// behavior.
type Session interface {
	Authenticated(ctx context.Context) bool
}

// StaticSession is a Session with a fixed answer. The CLI runs as the
// device owner (true); tests use false to exercise the no-op path.
type StaticSession bool

// Authenticated implements Session.
func (s StaticSession) Authenticated(ctx context.Context) bool {
	return bool(s)
}

// Service is the user-facing surface of the grocery list: manual adds,
// renames, removals, check toggles, and the live list feed. Direct keyed
// mutations have no reconciliation side effects.
type Service struct {
	store   Store
	session Session
}

// NewService creates a Service over the given store and session.
func NewService(store Store, session Session) *Service {
	return &Service{store: store, session: session}
}

// AddManual creates a manual entry with the given name.
//
// Fails with ErrConflict if an entry with the exact same trimmed name
// already exists; the conflict is surfaced, never silently resolved.
func (s *Service) AddManual(ctx context.Context, name string) error {
	if !s.session.Authenticated(ctx) {
		return nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	entries, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == name {
			return ErrConflict
		}
	}

	_, err = s.store.Create(ctx, Entry{
		Name:      name,
		Ownership: OwnershipManual,
	})
	return err
}

// UpdateName renames an entry by ID.
func (s *Service) UpdateName(ctx context.Context, id, name string) error {
	if !s.session.Authenticated(ctx) {
		return nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	return s.store.UpdateName(ctx, id, name)
}

// Remove deletes an entry by ID. Explicit user removal applies to manual
// and auto entries alike.
func (s *Service) Remove(ctx context.Context, id string) error {
	if !s.session.Authenticated(ctx) {
		return nil
	}
	return s.store.Delete(ctx, id)
}

// ToggleChecked flips an entry's checked flag.
func (s *Service) ToggleChecked(ctx context.Context, id string) error {
	if !s.session.Authenticated(ctx) {
		return nil
	}

	entries, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == id {
			return s.store.SetChecked(ctx, id, !e.Checked)
		}
	}
	return ErrNotFound
}

// Changes returns the live list feed, ordered by creation. Without a
// session the channel is already closed.
func (s *Service) Changes(ctx context.Context) (<-chan []Entry, error) {
	if !s.session.Authenticated(ctx) {
		ch := make(chan []Entry)
		close(ch)
		return ch, nil
	}
	return s.store.Watch(ctx)
}

// List returns the current entries in creation order.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	if !s.session.Authenticated(ctx) {
		return nil, nil
	}
	return s.store.List(ctx)
}
