package ai

import (
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/combat"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// Move advances each perceived drone by at most one cell according to its state
func Move(g *state.Game, percepts []Perception) {
	for _, p := range percepts {
		drone := p.Drone
		if drone.Dead || drone.Disabled {
			continue
		}
		switch drone.Behavior.State {
		case entities.StatePatrol:
			patrol(g, drone)
		case entities.StateCampVent:
			// Camping drones hold position
		default:
			pursue(g, drone)
		}
	}
}

// patrol steps to a random free neighbour, or stays put if boxed in
func patrol(g *state.Game, drone *entities.Actor) {
	occupied := g.Occupied()
	var open []world.Point
	for _, n := range world.Neighbors(g.Grid, drone.Pos, world.Adversary) {
		if !occupied.Has(n) {
			open = append(open, n)
		}
	}
	if len(open) == 0 {
		return
	}
	drone.Pos = open[g.Rng.Intn(len(open))]
}

// pursue follows the cached path toward the target, attacking the player if
// they block the next step
func pursue(g *state.Game, drone *entities.Actor) {
	b := drone.Behavior
	if b.Target == nil {
		return
	}
	if b.State != entities.StateChase && b.AtTarget(drone.Pos) {
		b.ClearPath()
		return
	}

	if !b.HasPath() || b.State == entities.StateChase {
		b.Path = append(b.Path[:0], world.FindPath(g.Grid, drone.Pos, *b.Target, world.Adversary)...)
	}
	if !b.HasPath() {
		return
	}

	next := b.Path[0]
	occupant := g.ActorAt(next)
	switch {
	case occupant != nil && occupant.IsPlayer():
		combat.ResolveAttack(g, drone, occupant)
		b.ClearPath()
	case occupant == nil && world.Adversary.Allows(g.Grid.AtPoint(next)):
		drone.Pos = next
		b.Path = b.Path[1:]
	default:
		b.ClearPath()
	}
}
