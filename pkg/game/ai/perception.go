// Package ai drives the drones through perception, decision and movement.
package ai

import (
	"github.com/leonelquinteros/gotext"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// Perception is what one drone sensed this turn. It is never kept across turns.
type Perception struct {
	Drone        *entities.Actor
	CanSeePlayer bool
	LastKnown    *world.Point
	HeardNoise   *world.Point
}

// Perceive runs vision and hearing for every active drone, then clears the
// noise queue. Disabled drones count down instead and are left out.
func Perceive(g *state.Game) []Perception {
	visionRange := g.Config.Get(config.VisionRange)
	percepts := make([]Perception, 0, len(g.Actors))

	for _, drone := range g.Drones() {
		if drone.Disabled {
			if drone.TickDisabled() {
				g.AddMessage(gotext.Get("A drone reboots."))
			}
			continue
		}

		p := Perception{Drone: drone}
		if player := g.Player; player != nil && !player.Dead {
			if world.CanSee(g.Grid, drone.Pos, player.Pos, visionRange) {
				p.CanSeePlayer = true
				p.LastKnown = player.Pos.Ptr()
			}
		}
		for _, noise := range g.Noise {
			if drone.Pos.DistSq(noise.At) <= noise.Radius*noise.Radius {
				p.HeardNoise = noise.At.Ptr()
				break
			}
		}
		percepts = append(percepts, p)
	}

	g.Noise = g.Noise[:0]
	return percepts
}
