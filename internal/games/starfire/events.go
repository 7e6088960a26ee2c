package starfire

// EventKind identifies what happened during a tick.
type EventKind uint8

const (
	EventPhaseChanged EventKind = iota + 1
	EventPlayerDashed
	EventPlayerDamaged
	EventObstacleDestroyed
	EventProjectileFired
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPhaseChanged:
		return "phase_changed"
	case EventPlayerDashed:
		return "player_dashed"
	case EventPlayerDamaged:
		return "player_damaged"
	case EventObstacleDestroyed:
		return "obstacle_destroyed"
	case EventProjectileFired:
		return "projectile_fired"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget signal for the render and audio layers.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	Phase      Phase      // EventPhaseChanged: the phase entered
	FromX      int        // EventPlayerDashed: x before the dash
	X, Y       int        // Dash target, damage centre, or destroyed obstacle position
	Health     int        // EventPlayerDamaged: health after the hit
	ObstacleID ObstacleID // EventObstacleDestroyed
}

// FrameEvents lists the events of one tick in the order they happened.
type FrameEvents []Event

// Has reports whether an event of the given kind occurred.
func (fe FrameEvents) Has(kind EventKind) bool {
	for _, e := range fe {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many events of the given kind occurred.
func (fe FrameEvents) Count(kind EventKind) int {
	n := 0
	for _, e := range fe {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// PhaseEntered returns the phase entered this tick, if any.
func (fe FrameEvents) PhaseEntered() (Phase, bool) {
	for _, e := range fe {
		if e.Kind == EventPhaseChanged {
			return e.Phase, true
		}
	}
	return PhaseMenu, false
}
