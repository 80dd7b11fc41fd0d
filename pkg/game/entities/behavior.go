package entities

import (
	"darkstation/pkg/engine/world"
)

// AIState is the behavior state of a drone
type AIState int

const (
	StatePatrol AIState = iota
	StateInvestigate
	StateChase
	StateSearch
	StateCampVent
)

// String returns the state name
func (s AIState) String() string {
	switch s {
	case StatePatrol:
		return "PATROL"
	case StateInvestigate:
		return "INVESTIGATE"
	case StateChase:
		return "CHASE"
	case StateSearch:
		return "SEARCH"
	case StateCampVent:
		return "CAMP_VENT"
	default:
		return "UNKNOWN"
	}
}

// Behavior is the per-drone state machine record
type Behavior struct {
	State       AIState
	Target      *world.Point
	SearchTurns int
	CampTurns   int

	// Path is the cached route to Target, next step first
	Path []world.Point
}

// NewBehavior returns a patrolling behavior with no target
func NewBehavior() *Behavior {
	return &Behavior{State: StatePatrol}
}

// SetTarget stores a copy of p as the target
func (b *Behavior) SetTarget(p world.Point) {
	b.Target = p.Ptr()
}

// ClearTarget removes the target
func (b *Behavior) ClearTarget() {
	b.Target = nil
}

// AtTarget returns true if pos is the current target
func (b *Behavior) AtTarget(pos world.Point) bool {
	return b.Target != nil && *b.Target == pos
}

// ClearPath empties the cached path so it is recomputed on next use
func (b *Behavior) ClearPath() {
	b.Path = b.Path[:0]
}

// HasPath returns true if a cached path remains
func (b *Behavior) HasPath() bool {
	return len(b.Path) > 0
}
