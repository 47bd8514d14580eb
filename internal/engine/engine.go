package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oskarw/pantrylist/internal/grocery"
	"github.com/oskarw/pantrylist/internal/identity"
	"github.com/oskarw/pantrylist/internal/inventory"
)

// DefaultLowStockThreshold is the quantity at or below which an item
// counts as low or absent. Named rather than inlined: the product's UI
// documents its own alert thresholds and they are not required to match
// this one.
const DefaultLowStockThreshold = 1

// Default debounce windows. Initialization uses a larger window because
// the bulk read can surface the same key through multiple overlapping
// signals.
const (
	DefaultLiveWindow = 3 * time.Second
	DefaultInitWindow = 5 * time.Second
)

// Config holds the engine's tuning knobs.
type Config struct {
	LowStockThreshold int
	LiveWindow        time.Duration
	InitWindow        time.Duration
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		LowStockThreshold: DefaultLowStockThreshold,
		LiveWindow:        DefaultLiveWindow,
		InitWindow:        DefaultInitWindow,
	}
}

// Engine reconciles the grocery list against the inventory feed.
//
// Construct with New, drive with Run. Reconcile, Sweep, and Handle are
// exported for callers that embed their own loop (the scenario harness,
// the one-shot sweep command).
type Engine struct {
	store grocery.Store
	feed  inventory.Feed
	cfg   Config
	gate  *Gate

	mu    sync.Mutex
	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the debounce gate's clock. Tests use a manual
// clock to step through windows deterministically.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.gate.now = now }
}

// New creates an Engine over the given store and feed.
func New(store grocery.Store, feed inventory.Feed, cfg Config, opts ...Option) *Engine {
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = DefaultLowStockThreshold
	}
	if cfg.LiveWindow <= 0 {
		cfg.LiveWindow = DefaultLiveWindow
	}
	if cfg.InitWindow <= 0 {
		cfg.InitWindow = DefaultInitWindow
	}

	e := &Engine{
		store: store,
		feed:  feed,
		cfg:   cfg,
		gate:  NewGate(),
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current lifecycle phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
	slog.Info("engine state", "state", s.String())
}

// Run initializes the list from the inventory snapshot, then consumes
// live change events until ctx is cancelled or the feed closes.
//
// A failed initialization is logged and the engine proceeds to the live
// phase anyway; a one-time failure must not block live updates.
func (e *Engine) Run(ctx context.Context) error {
	e.setState(StateInitializing)
	if err := e.Initialize(ctx); err != nil {
		slog.Error("initialization failed, continuing to live updates", "error", err)
	}

	// Subscribe before announcing Listening so no caller can observe the
	// live state while events would still be dropped.
	ch, err := e.feed.Changes(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to inventory changes: %w", err)
	}
	e.setState(StateListening)

	for {
		select {
		case <-ctx.Done():
			slog.Info("engine stopping: context cancelled")
			return ctx.Err()
		case c, ok := <-ch:
			if !ok {
				slog.Info("engine stopping: inventory feed closed")
				return nil
			}
			e.Handle(ctx, c)
		}
	}
}

// Initialize performs the one-time bulk reconciliation: sweep, reconcile
// every keyed snapshot item admitted by the gate, sweep again.
func (e *Engine) Initialize(ctx context.Context) error {
	if n, err := e.Sweep(ctx); err != nil {
		return fmt.Errorf("pre-snapshot sweep: %w", err)
	} else if n > 0 {
		slog.Info("startup sweep removed duplicates", "deleted", n)
	}

	items, err := e.feed.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("inventory snapshot: %w", err)
	}
	slog.Info("reconciling inventory snapshot", "items", len(items))

	for _, item := range items {
		key, ok := identity.Key(item.Brand, item.Name)
		if !ok {
			continue
		}
		if !e.gate.Admit(key, inventory.ChangeAdded, e.cfg.InitWindow) {
			continue
		}
		e.Reconcile(ctx, item)
	}

	if n, err := e.Sweep(ctx); err != nil {
		return fmt.Errorf("post-snapshot sweep: %w", err)
	} else if n > 0 {
		slog.Info("post-snapshot sweep removed duplicates", "deleted", n)
	}

	return nil
}

// Handle processes one live inventory change event. Removed events are
// ignored: an item leaving the cabinet does not, by itself, change the
// grocery list.
func (e *Engine) Handle(ctx context.Context, c inventory.Change) {
	switch c.Kind {
	case inventory.ChangeAdded, inventory.ChangeModified:
	default:
		return
	}

	key, ok := identity.Key(c.Item.Brand, c.Item.Name)
	if !ok {
		return
	}
	if !e.gate.Admit(key, c.Kind, e.cfg.LiveWindow) {
		slog.Debug("event debounced", "key", key, "kind", c.Kind.String())
		return
	}

	slog.Debug("processing inventory change",
		"kind", c.Kind.String(),
		"key", key,
		"quantity", c.Item.Quantity,
	)
	e.Reconcile(ctx, c.Item)
}
