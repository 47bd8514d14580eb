// Package harness runs scripted reconciliation scenarios.
//
// A scenario is a YAML file describing a starting grocery list, an
// inventory snapshot, and a sequence of steps (inventory events, manual
// actions, clock advances, sweeps). The harness replays it through a real
// engine over a real SQLite store with a manual clock, then snapshots the
// final list. Golden files under testdata/golden are the source of truth
// for expected outcomes.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
package harness
