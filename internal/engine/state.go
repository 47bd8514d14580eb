package engine

// State is the engine's lifecycle phase.
//
// Transitions are one-way: Idle -> Initializing -> Listening.
// Listening is terminal; a failed initialization still advances to
// Listening so a one-time failure cannot block live updates forever.
type State int

const (
	// StateIdle is the constructed-but-not-started phase.
	StateIdle State = iota
	// StateInitializing is the one-time bulk reconciliation phase.
	StateInitializing
	// StateListening is the steady state: consuming live feed events.
	StateListening
)

// String returns the lifecycle phase name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateListening:
		return "listening"
	default:
		return "unknown"
	}
}
