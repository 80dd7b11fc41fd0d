package ai

import (
	"github.com/sirupsen/logrus"

	"darkstation/pkg/engine/logger"
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// Decide applies the state transitions for each perception in order
func Decide(g *state.Game, percepts []Perception) {
	searchTurns := g.Config.Get(config.SearchTurns)
	campTurns := g.Config.Get(config.CampTurns)

	for _, p := range percepts {
		b := p.Drone.Behavior
		from := b.State
		decide(g.Grid, p, searchTurns, campTurns)
		if b.State != from {
			logger.Component("ai").WithFields(logrus.Fields{
				"drone": p.Drone.ID,
				"from":  from.String(),
				"to":    b.State.String(),
			}).Debug("State changed.")
		}
	}
}

func decide(grid *world.Grid, p Perception, searchTurns, campTurns int) {
	drone := p.Drone
	b := drone.Behavior

	switch b.State {
	case entities.StatePatrol:
		if p.CanSeePlayer {
			startChase(b, p)
		} else if p.HeardNoise != nil {
			b.State = entities.StateInvestigate
			b.SetTarget(*p.HeardNoise)
			b.ClearPath()
		}

	case entities.StateInvestigate:
		if p.CanSeePlayer {
			startChase(b, p)
		} else if b.AtTarget(drone.Pos) {
			b.State = entities.StateSearch
			b.SearchTurns = searchTurns
		}

	case entities.StateChase:
		if p.CanSeePlayer {
			b.SetTarget(*p.LastKnown)
			return
		}
		lastKnown := p.LastKnown
		if lastKnown == nil {
			lastKnown = b.Target
		}
		if vent, ok := adjacentVent(grid, lastKnown); ok {
			b.State = entities.StateCampVent
			b.SetTarget(vent)
			b.CampTurns = campTurns
			b.ClearPath()
			return
		}
		b.State = entities.StateSearch
		b.SearchTurns = searchTurns

	case entities.StateSearch:
		if p.CanSeePlayer {
			startChase(b, p)
			return
		}
		b.SearchTurns--
		if b.SearchTurns <= 0 || b.AtTarget(drone.Pos) {
			returnToPatrol(b)
		}

	case entities.StateCampVent:
		if p.CanSeePlayer {
			startChase(b, p)
			b.CampTurns = 0
			return
		}
		b.CampTurns--
		if b.CampTurns <= 0 {
			returnToPatrol(b)
		}
	}
}

func startChase(b *entities.Behavior, p Perception) {
	b.State = entities.StateChase
	b.SetTarget(*p.LastKnown)
}

func returnToPatrol(b *entities.Behavior) {
	b.State = entities.StatePatrol
	b.ClearTarget()
	b.SearchTurns = 0
	b.CampTurns = 0
	b.ClearPath()
}

// adjacentVent returns the first vent orthogonally next to p
func adjacentVent(grid *world.Grid, p *world.Point) (world.Point, bool) {
	if p == nil {
		return world.Point{}, false
	}
	for _, off := range world.OrthogonalOffsets() {
		n := p.Add(off.X, off.Y)
		if grid.AtPoint(n).IsVent() {
			return n, true
		}
	}
	return world.Point{}, false
}
