package inventory

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
)

// JSONFeed adapts the cabinet firmware's newline-delimited JSON protocol
// to the Feed interface.
//
// Wire format, one record per line:
//
//	{"kind":"snapshot","items":[{"brand":"Coca Cola","name":"330ml Can","quantity":3}]}
//	{"kind":"added","item":{"brand":"Coca Cola","name":"330ml Can","quantity":1}}
//	{"kind":"modified","item":{"brand":"Coca Cola","name":"330ml Can","quantity":5}}
//	{"kind":"removed","item":{"brand":"Coca Cola","name":"330ml Can","quantity":0}}
//
// A snapshot record, if present, must be the first line. Malformed lines
// are logged and skipped; a broken line from the firmware must not stall
// the stream.
//
// Snapshot must be called before Changes, which mirrors how the engine's
// initialization sequence consumes a feed.
type JSONFeed struct {
	scanner *bufio.Scanner

	// pending holds the first stream record when the input starts with a
	// change instead of a snapshot, so Snapshot does not swallow it.
	pending *Change
}

type jsonRecord struct {
	Kind  string `json:"kind"`
	Item  *Item  `json:"item,omitempty"`
	Items []Item `json:"items,omitempty"`
}

// NewJSONFeed creates a feed reading line-delimited records from r.
func NewJSONFeed(r io.Reader) *JSONFeed {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &JSONFeed{scanner: sc}
}

// Snapshot consumes the leading snapshot record, if any. When the input
// opens with a change record instead, the snapshot is empty and the record
// is held back for Changes.
func (f *JSONFeed) Snapshot(ctx context.Context) ([]Item, error) {
	for f.scanner.Scan() {
		line := f.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec jsonRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			slog.Warn("skipping malformed inventory record", "error", err)
			continue
		}

		if rec.Kind == "snapshot" {
			return rec.Items, nil
		}

		if c, ok := recordChange(rec); ok {
			f.pending = &c
		} else {
			slog.Warn("skipping inventory record with unknown kind", "kind", rec.Kind)
		}
		return nil, nil
	}
	return nil, f.scanner.Err()
}

// Changes streams the remaining records. The channel closes on EOF or
// context cancellation.
func (f *JSONFeed) Changes(ctx context.Context) (<-chan Change, error) {
	ch := make(chan Change, 64)

	go func() {
		defer close(ch)

		if f.pending != nil {
			c := *f.pending
			f.pending = nil
			if !send(ctx, ch, c) {
				return
			}
		}

		for f.scanner.Scan() {
			line := f.scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var rec jsonRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				slog.Warn("skipping malformed inventory record", "error", err)
				continue
			}

			c, ok := recordChange(rec)
			if !ok {
				slog.Warn("skipping inventory record with unknown kind", "kind", rec.Kind)
				continue
			}
			if !send(ctx, ch, c) {
				return
			}
		}

		if err := f.scanner.Err(); err != nil {
			slog.Error("inventory stream read failed", "error", err)
		}
	}()

	return ch, nil
}

func recordChange(rec jsonRecord) (Change, bool) {
	var kind ChangeKind
	switch rec.Kind {
	case "added":
		kind = ChangeAdded
	case "modified":
		kind = ChangeModified
	case "removed":
		kind = ChangeRemoved
	default:
		return Change{}, false
	}

	var item Item
	if rec.Item != nil {
		item = *rec.Item
	}
	return Change{Kind: kind, Item: item}, true
}

func send(ctx context.Context, ch chan<- Change, c Change) bool {
	select {
	case ch <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

var _ Feed = (*JSONFeed)(nil)
