package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskarw/pantrylist/internal/grocery"
)

func TestSweepCollapsesAutoDuplicates(t *testing.T) {
	s := newTestStore(t)
	e := newTestEngine(t, s, nil)
	ctx := context.Background()

	var first grocery.Entry
	for i := 0; i < 3; i++ {
		en, err := s.Create(ctx, grocery.Entry{Brand: "Arla", Name: "Milk", Ownership: grocery.OwnershipAuto})
		require.NoError(t, err)
		if i == 0 {
			first = en
		}
	}

	deleted, err := e.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	entries := listEntries(t, s)
	require.Len(t, entries, 1)
	assert.Equal(t, first.ID, entries[0].ID, "first auto member in creation order survives")
}

func TestSweepPrefersAutoSurvivor(t *testing.T) {
	s := newTestStore(t)
	e := newTestEngine(t, s, nil)
	ctx := context.Background()

	// Manual created first, auto second, both on the same key.
	_, err := s.Create(ctx, grocery.Entry{Name: "Arla Milk", Ownership: grocery.OwnershipManual})
	require.NoError(t, err)
	auto, err := s.Create(ctx, grocery.Entry{Brand: "Arla", Name: "Milk", Ownership: grocery.OwnershipAuto})
	require.NoError(t, err)

	deleted, err := e.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	entries := listEntries(t, s)
	require.Len(t, entries, 1)
	assert.Equal(t, auto.ID, entries[0].ID, "auto member wins even when created later")
}

func TestSweepManualOnlyGroupKeepsFirst(t *testing.T) {
	s := newTestStore(t)
	e := newTestEngine(t, s, nil)
	ctx := context.Background()

	first, err := s.Create(ctx, grocery.Entry{Name: "Dish Soap", Ownership: grocery.OwnershipManual})
	require.NoError(t, err)
	_, err = s.Create(ctx, grocery.Entry{Name: "dish soap", Ownership: grocery.OwnershipManual})
	require.NoError(t, err)

	deleted, err := e.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	entries := listEntries(t, s)
	require.Len(t, entries, 1)
	assert.Equal(t, first.ID, entries[0].ID, "oldest manual duplicate survives")
}

func TestSweepLeavesDistinctKeysAlone(t *testing.T) {
	s := newTestStore(t)
	e := newTestEngine(t, s, nil)
	ctx := context.Background()

	_, err := s.Create(ctx, grocery.Entry{Brand: "Arla", Name: "Milk", Ownership: grocery.OwnershipAuto})
	require.NoError(t, err)
	_, err = s.Create(ctx, grocery.Entry{Brand: "Barilla", Name: "Penne", Ownership: grocery.OwnershipAuto})
	require.NoError(t, err)
	_, err = s.Create(ctx, grocery.Entry{Name: "Batteries", Ownership: grocery.OwnershipManual})
	require.NoError(t, err)

	deleted, err := e.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Len(t, listEntries(t, s), 3)
}

func TestSweepRepeatable(t *testing.T) {
	s := newTestStore(t)
	e := newTestEngine(t, s, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := s.Create(ctx, grocery.Entry{Brand: "Arla", Name: "Milk", Ownership: grocery.OwnershipAuto})
		require.NoError(t, err)
	}

	deleted, err := e.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = e.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted, "second sweep finds nothing to do")
}

func TestSweepUniquenessInvariant(t *testing.T) {
	s := newTestStore(t)
	e := newTestEngine(t, s, nil)
	ctx := context.Background()

	// A messy list: duplicates across ownerships and keys.
	seed := []grocery.Entry{
		{Brand: "Arla", Name: "Milk", Ownership: grocery.OwnershipAuto},
		{Name: "Arla Milk", Ownership: grocery.OwnershipManual},
		{Brand: "Arla", Name: "Milk", Ownership: grocery.OwnershipAuto},
		{Brand: "Barilla", Name: "Penne", Ownership: grocery.OwnershipAuto},
		{Name: "Dish Soap", Ownership: grocery.OwnershipManual},
		{Name: "dish soap", Ownership: grocery.OwnershipManual},
	}
	for _, en := range seed {
		_, err := s.Create(ctx, en)
		require.NoError(t, err)
	}

	_, err := e.Sweep(ctx)
	require.NoError(t, err)

	entries := listEntries(t, s)
	assert.Len(t, entries, 3, "one survivor per group")

	seen := make(map[string]int)
	for _, en := range entries {
		seen[en.Brand+"|"+en.Name]++
	}
	for key, n := range seen {
		assert.Equal(t, 1, n, "duplicate survived for %s", key)
	}
}
