package inventory

import (
	"context"
	"sync"
)

// SimFeed is an in-memory Feed for tests, scripted scenarios, and the
// one-shot CLI commands that need a feed but never listen to it.
//
// Thread-safety: all methods may be called from any goroutine.
type SimFeed struct {
	mu    sync.Mutex
	items []Item
	subs  map[chan Change]struct{}
}

// NewSimFeed creates a feed whose snapshot contains the given items.
func NewSimFeed(items ...Item) *SimFeed {
	return &SimFeed{
		items: items,
		subs:  make(map[chan Change]struct{}),
	}
}

// Snapshot returns a copy of the configured items.
func (f *SimFeed) Snapshot(ctx context.Context) ([]Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

// SetSnapshot replaces the items returned by Snapshot.
func (f *SimFeed) SetSnapshot(items ...Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
}

// Changes subscribes to published events. The returned channel is closed
// when ctx is cancelled.
func (f *SimFeed) Changes(ctx context.Context) (<-chan Change, error) {
	ch := make(chan Change, 64)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, ch)
		f.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// Publish delivers a change event to every subscriber. Events are dropped
// for subscribers whose buffer is full rather than blocking the producer.
func (f *SimFeed) Publish(c Change) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- c:
		default:
		}
	}
}

var _ Feed = (*SimFeed)(nil)
