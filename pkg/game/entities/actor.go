// Package entities contains the simulated actors and pickups of the station.
package entities

import (
	"darkstation/pkg/engine/world"
)

// Kind identifies what an actor is
type Kind int

const (
	KindPlayer Kind = iota
	KindDrone       // Mobile adversary driven by the behavior pipeline
	KindTurret      // Stationary sentry
)

// String returns the display name used in combat messages
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindDrone:
		return "Drone"
	case KindTurret:
		return "Turret"
	default:
		return "Entity"
	}
}

// WeaponMode is the player's active attack mode
type WeaponMode int

const (
	WeaponDefault WeaponMode = iota // Bump attacks only
	WeaponPistol
)

// String returns the display name of the mode
func (m WeaponMode) String() string {
	if m == WeaponPistol {
		return "pistol"
	}
	return "default"
}

// Stats is a combat value. It is never mutated in place; damage and healing
// produce a new value that replaces the old one on the actor.
type Stats struct {
	HP      int
	MaxHP   int
	Attack  int
	Evasion int
}

// WithHP returns a copy of s with hp replaced
func (s Stats) WithHP(hp int) Stats {
	s.HP = hp
	return s
}

// Actor is any simulated entity: the player, a drone or a turret.
// Role-specific fields are nil or zero for other kinds.
type Actor struct {
	ID   int
	Kind Kind
	Pos  world.Point

	// Stats is nil for actors without combat stats
	Stats *Stats

	Disabled      bool
	DisabledTurns int
	Dead          bool

	Behavior  *Behavior  // Drones only
	Inventory Inventory  // Player only
	Weapon    WeaponMode // Player only
}

// NewPlayer creates the player actor with an empty inventory
func NewPlayer(id int, pos world.Point, stats Stats) *Actor {
	return &Actor{ID: id, Kind: KindPlayer, Pos: pos, Stats: &stats, Inventory: Inventory{}}
}

// NewDrone creates a patrolling drone
func NewDrone(id int, pos world.Point, stats Stats) *Actor {
	return &Actor{ID: id, Kind: KindDrone, Pos: pos, Stats: &stats, Behavior: NewBehavior()}
}

// NewTurret creates a stationary turret
func NewTurret(id int, pos world.Point, stats Stats) *Actor {
	return &Actor{ID: id, Kind: KindTurret, Pos: pos, Stats: &stats}
}

// Name returns the display name of the actor
func (a *Actor) Name() string {
	return a.Kind.String()
}

// IsPlayer returns true for the player actor
func (a *Actor) IsPlayer() bool {
	return a.Kind == KindPlayer
}

// IsTurret returns true for stationary turrets
func (a *Actor) IsTurret() bool {
	return a.Kind == KindTurret
}

// IsDrone returns true for mobile adversaries
func (a *Actor) IsDrone() bool {
	return a.Kind == KindDrone && a.Behavior != nil
}

// HasStats returns true if the actor can take part in combat
func (a *Actor) HasStats() bool {
	return a.Stats != nil
}

// ReplaceStats swaps in a new stats value
func (a *Actor) ReplaceStats(s Stats) {
	a.Stats = &s
}

// HP returns current hit points, or 0 without stats
func (a *Actor) HP() int {
	if a.Stats == nil {
		return 0
	}
	return a.Stats.HP
}

// Disable switches the actor off for the given number of turns
func (a *Actor) Disable(turns int) {
	a.Disabled = true
	a.DisabledTurns = turns
}

// Armed returns true if the pistol is equipped and carried
func (a *Actor) Armed() bool {
	return a.Weapon == WeaponPistol && a.Inventory.Count(ItemPistol) > 0
}

// TickDisabled counts down a disabled actor. It returns true on the turn the
// actor comes back online.
func (a *Actor) TickDisabled() bool {
	if !a.Disabled {
		return false
	}
	a.DisabledTurns--
	if a.DisabledTurns <= 0 {
		a.Disabled = false
		a.DisabledTurns = 0
		return true
	}
	return false
}
