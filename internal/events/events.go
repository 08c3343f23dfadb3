// Package events defines the notifications published after successful
// state changes and the SQLite-backed journal that records them. Delivery
// is fire-and-forget: a journal failure never rolls back a state change.
package events

// Event types.
const (
	HuntCreated       = "hunt.created"
	HuntPhaseChanged  = "hunt.phase_changed"
	HuntCompleted     = "hunt.completed"
	TeamInitialized   = "team.initialized"
	TeamMemberAdded   = "team.member_added"
	TeamMemberRemoved = "team.member_removed"
	MetricsRecorded   = "metrics.recorded"
)

type Payload map[string]any

// Event is one notification.
type Event struct {
	Type       string
	EntityKind string
	EntityID   string
	ActorID    string
	Payload    Payload
}

// Observer consumes events published by the core. Observers must not
// assume delivery ordering across processes, only within one.
type Observer func(Event)
