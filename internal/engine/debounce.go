package engine

import (
	"sync"
	"time"

	"github.com/oskarw/pantrylist/internal/inventory"
)

// Gate suppresses repeated "added" notifications for the same identity
// key within a time window.
//
// The cabinet's batched writes can surface several added events for one
// logical item in quick succession; without the gate, reconciliation
// would race itself and transiently create duplicate entries the sweeper
// then has to clean up.
//
// Modified events always pass: they carry explicit quantity changes and
// must be reflected immediately.
//
// Thread-safety: Admit may be called from any goroutine.
type Gate struct {
	mu   sync.Mutex
	last map[string]time.Time
	now  func() time.Time
}

// NewGate creates a gate using the wall clock.
func NewGate() *Gate {
	return &Gate{
		last: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Admit reports whether an event for the given identity key should be
// processed. Added events are admitted when the key has no recorded
// timestamp or the elapsed time exceeds window; admission records now for
// the key. All other kinds bypass the window.
func (g *Gate) Admit(key string, kind inventory.ChangeKind, window time.Duration) bool {
	if kind != inventory.ChangeAdded {
		return true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if last, ok := g.last[key]; ok && now.Sub(last) <= window {
		return false
	}
	g.last[key] = now
	return true
}
