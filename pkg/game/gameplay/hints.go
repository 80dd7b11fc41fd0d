package gameplay

import (
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/generator"
	"darkstation/pkg/game/state"
)

// giveTerminalHint reveals either the nearest uncollected crate or the
// nearest vent exit, chosen at random
func giveTerminalHint(g *state.Game, from world.Point) {
	if g.Rng.Intn(2) == 0 {
		if p, ok := nearestCrate(g, from); ok {
			g.Reveal([]world.Point{p})
			logMessage(g, "The terminal pings the location of a nearby crate.")
		} else {
			logMessage(g, "No crates detected nearby.")
		}
		return
	}

	if p, ok := nearest(from, generator.VentExits(g.Grid)); ok {
		g.Reveal([]world.Point{p})
		logMessage(g, "The terminal highlights a nearby maintenance vent access.")
	} else {
		logMessage(g, "No vent access detected nearby.")
	}
}

func nearestCrate(g *state.Game, from world.Point) (world.Point, bool) {
	var crates []world.Point
	for _, pk := range g.Pickups {
		if pk.Kind == entities.PickupCrate {
			crates = append(crates, pk.Pos)
		}
	}
	return nearest(from, crates)
}

// nearest returns the candidate closest to from by Euclidean distance.
// Ties go to the earliest candidate.
func nearest(from world.Point, candidates []world.Point) (world.Point, bool) {
	best, bestDist, found := world.Point{}, 0, false
	for _, p := range candidates {
		if d := from.DistSq(p); !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}
