package store

import (
	"context"
	"log/slog"

	"github.com/oskarw/pantrylist/internal/grocery"
)

// Watch returns a channel receiving the full ordered list after every
// mutation. Each watcher channel is buffered with one slot and sends
// coalesce: a slow consumer observes the latest list, not every
// intermediate one. The channel closes when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan []grocery.Entry, error) {
	ch := make(chan []grocery.Entry, 1)

	s.mu.Lock()
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	// Seed with the current list so a new watcher renders immediately.
	// Non-blocking: a concurrent mutation may already have filled the slot
	// with a fresher snapshot.
	if entries, err := s.List(ctx); err == nil {
		select {
		case ch <- entries:
		default:
		}
	}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, ch)
		s.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// notify broadcasts the current list to all watchers after a mutation.
// Read failures here only degrade the live feed and are logged, not
// propagated; the mutation itself already succeeded.
func (s *Store) notify(ctx context.Context) {
	s.mu.Lock()
	n := len(s.watchers)
	s.mu.Unlock()
	if n == 0 {
		return
	}

	entries, err := s.List(ctx)
	if err != nil {
		slog.Error("list read for watch broadcast failed", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.watchers {
		// Coalesce: drop the stale snapshot if the watcher hasn't
		// consumed it yet, then deliver the fresh one.
		select {
		case ch <- entries:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- entries:
			default:
			}
		}
	}
}
