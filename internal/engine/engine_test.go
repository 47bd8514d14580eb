package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskarw/pantrylist/internal/engine"
	"github.com/oskarw/pantrylist/internal/grocery"
	"github.com/oskarw/pantrylist/internal/inventory"
	"github.com/oskarw/pantrylist/internal/testutil"
)

// failingFeed errors on snapshot but still provides a live stream.
type failingFeed struct {
	live *inventory.SimFeed
}

func (f *failingFeed) Snapshot(ctx context.Context) ([]inventory.Item, error) {
	return nil, errors.New("cabinet offline")
}

func (f *failingFeed) Changes(ctx context.Context) (<-chan inventory.Change, error) {
	return f.live.Changes(ctx)
}

func TestInitializeReconcilesSnapshot(t *testing.T) {
	s := newTestStore(t)
	feed := inventory.NewSimFeed(
		inventory.Item{Brand: "Coca Cola", Name: "330ml Can", Quantity: 1},
		inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 4},
		inventory.Item{Brand: "", Name: "Unlabeled", Quantity: 0},
	)
	e := newTestEngine(t, s, feed)

	require.NoError(t, e.Initialize(context.Background()))

	entries := listEntries(t, s)
	require.Len(t, entries, 1, "only the low-stock item with full identity gets an entry")
	assert.Equal(t, "330ml Can", entries[0].Name)
	assert.Equal(t, grocery.OwnershipAuto, entries[0].Ownership)
}

func TestInitializeSweepsPreexistingDuplicates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Duplicates left over from a crash mid-reconciliation.
	for i := 0; i < 2; i++ {
		_, err := s.Create(ctx, grocery.Entry{Brand: "Arla", Name: "Milk", Ownership: grocery.OwnershipAuto})
		require.NoError(t, err)
	}

	feed := inventory.NewSimFeed(inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 0})
	e := newTestEngine(t, s, feed)
	require.NoError(t, e.Initialize(ctx))

	assert.Len(t, listEntries(t, s), 1)
}

func TestInitializeDebouncesRepeatedSnapshotKeys(t *testing.T) {
	s := newTestStore(t)
	clock := testutil.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	// The bulk read can surface the same key through overlapping signals.
	feed := inventory.NewSimFeed(
		inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 1},
		inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 1},
		inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 1},
	)
	e := newTestEngine(t, s, feed, engine.WithClock(clock.Now))

	require.NoError(t, e.Initialize(context.Background()))

	assert.Len(t, listEntries(t, s), 1)
}

func TestRunTransitionsAndHandlesLiveEvents(t *testing.T) {
	s := newTestStore(t)
	feed := inventory.NewSimFeed()
	e := newTestEngine(t, s, feed)

	assert.Equal(t, engine.StateIdle, e.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		return e.State() == engine.StateListening
	}, 2*time.Second, 10*time.Millisecond)

	feed.Publish(inventory.Change{
		Kind: inventory.ChangeAdded,
		Item: inventory.Item{Brand: "Barilla", Name: "Penne", Quantity: 0},
	})

	require.Eventually(t, func() bool {
		return len(listEntries(t, s)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Restock through a modified event removes the auto entry.
	feed.Publish(inventory.Change{
		Kind: inventory.ChangeModified,
		Item: inventory.Item{Brand: "Barilla", Name: "Penne", Quantity: 6},
	})

	require.Eventually(t, func() bool {
		return len(listEntries(t, s)) == 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunIgnoresRemovedEvents(t *testing.T) {
	s := newTestStore(t)
	feed := inventory.NewSimFeed()
	e := newTestEngine(t, s, feed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	require.Eventually(t, func() bool {
		return e.State() == engine.StateListening
	}, 2*time.Second, 10*time.Millisecond)

	feed.Publish(inventory.Change{
		Kind: inventory.ChangeRemoved,
		Item: inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 0},
	})

	// Removal of an inventory item does not, by itself, mutate the list.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, listEntries(t, s))
}

func TestRunSurvivesInitializationFailure(t *testing.T) {
	s := newTestStore(t)
	live := inventory.NewSimFeed()
	e := newTestEngine(t, s, &failingFeed{live: live})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.Run(ctx)

	// A one-time snapshot failure must not keep the engine from the
	// live phase.
	require.Eventually(t, func() bool {
		return e.State() == engine.StateListening
	}, 2*time.Second, 10*time.Millisecond)

	live.Publish(inventory.Change{
		Kind: inventory.ChangeAdded,
		Item: inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 1},
	})

	require.Eventually(t, func() bool {
		return len(listEntries(t, s)) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRunStopsWhenFeedCloses(t *testing.T) {
	s := newTestStore(t)
	feed := inventory.NewSimFeed()
	e := newTestEngine(t, s, feed)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		return e.State() == engine.StateListening
	}, 2*time.Second, 10*time.Millisecond)

	cancel() // closes the SimFeed subscription channel

	select {
	case err := <-done:
		// Either path is a clean stop: cancelled context or closed feed.
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestHandleDebouncesBurstOfAddedEvents(t *testing.T) {
	s := newTestStore(t)
	clock := testutil.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	e := newTestEngine(t, s, nil, engine.WithClock(clock.Now))
	ctx := context.Background()

	item := inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 1}
	e.Handle(ctx, inventory.Change{Kind: inventory.ChangeAdded, Item: item})
	e.Handle(ctx, inventory.Change{Kind: inventory.ChangeAdded, Item: item})
	require.Len(t, listEntries(t, s), 1)

	// A modified event right after is still processed: restock clears.
	restocked := inventory.Item{Brand: "Arla", Name: "Milk", Quantity: 5}
	e.Handle(ctx, inventory.Change{Kind: inventory.ChangeModified, Item: restocked})
	assert.Empty(t, listEntries(t, s))
}
