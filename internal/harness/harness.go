package harness

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/oskarw/pantrylist/internal/cli"
	"github.com/oskarw/pantrylist/internal/engine"
	"github.com/oskarw/pantrylist/internal/grocery"
	"github.com/oskarw/pantrylist/internal/inventory"
	"github.com/oskarw/pantrylist/internal/store"
	"github.com/oskarw/pantrylist/internal/testutil"
)

// Run replays a scenario against a fresh store at dbPath and returns the
// final grocery list in creation order.
//
// The clock is manual and starts frozen; only Advance steps move it, so
// debounce behavior is exact and repeatable.
func Run(ctx context.Context, s *Scenario, dbPath string) ([]grocery.Entry, error) {
	clock := testutil.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	st, err := store.Open(dbPath, store.WithClock(clock.Now))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	for i, seed := range s.Seed {
		own, _ := grocery.ParseOwnership(seed.Ownership)
		_, err := st.Create(ctx, grocery.Entry{
			Brand:     seed.Brand,
			Name:      seed.Name,
			Checked:   seed.Checked,
			Ownership: own,
		})
		if err != nil {
			return nil, fmt.Errorf("seed[%d]: %w", i, err)
		}
	}

	snapshot := make([]inventory.Item, len(s.Snapshot))
	for i, it := range s.Snapshot {
		snapshot[i] = inventory.Item(it)
	}
	feed := inventory.NewSimFeed(snapshot...)

	cfg := engine.DefaultConfig()
	if s.Threshold > 0 {
		cfg.LowStockThreshold = s.Threshold
	}
	eng := engine.New(st, feed, cfg, engine.WithClock(clock.Now))
	svc := grocery.NewService(st, grocery.StaticSession(true))

	if err := eng.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}

	for i, step := range s.Steps {
		switch {
		case step.Event != nil:
			eng.Handle(ctx, inventory.Change{
				Kind: eventKind(step.Event.Kind),
				Item: inventory.Item{
					Brand:    step.Event.Brand,
					Name:     step.Event.Name,
					Quantity: step.Event.Quantity,
				},
			})
		case step.AddManual != "":
			if err := svc.AddManual(ctx, step.AddManual); err != nil {
				return nil, fmt.Errorf("steps[%d] add_manual: %w", i, err)
			}
		case step.Advance != 0:
			clock.Advance(time.Duration(step.Advance))
		case step.Sweep:
			if _, err := eng.Sweep(ctx); err != nil {
				return nil, fmt.Errorf("steps[%d] sweep: %w", i, err)
			}
		}
	}

	return st.List(ctx)
}

// RunGolden loads testdata/scenarios/<name>.yaml, runs it, and compares
// the rendered final list against testdata/golden/<name>.golden.
func RunGolden(t *testing.T, name string) {
	t.Helper()

	s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}

	entries, err := Run(context.Background(), s, filepath.Join(t.TempDir(), "scenario.db"))
	if err != nil {
		t.Fatalf("run scenario: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, []byte(cli.FormatEntries(entries)))
}

func eventKind(kind string) inventory.ChangeKind {
	switch kind {
	case "added":
		return inventory.ChangeAdded
	case "modified":
		return inventory.ChangeModified
	case "removed":
		return inventory.ChangeRemoved
	default:
		// Validate rejects anything else before a run.
		return 0
	}
}
