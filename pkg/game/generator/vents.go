package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"darkstation/pkg/engine/world"
)

// placeVents puts maintenance vents in the interior corners of larger rooms.
// A vent is kept only if the start, every feature and every room center stay
// reachable for adversaries, who cannot crawl through vents.
func (g *BSPGenerator) placeVents(rng *rand.Rand, level *Level, taken mapset.Set[world.Point]) {
	if g.Vents <= 0 {
		return
	}

	var candidates []world.Point
	for _, r := range level.Rooms {
		x0, y0 := r.X+1, r.Y+1
		x1, y1 := r.X+r.Width-2, r.Y+r.Height-2
		if x1-x0 < 2 || y1-y0 < 2 {
			continue
		}
		candidates = append(candidates,
			world.Pt(x0, y0), world.Pt(x1, y0), world.Pt(x0, y1), world.Pt(x1, y1))
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	required := level.Features()
	for _, r := range level.Rooms {
		required = append(required, r.Center())
	}

	grid := level.Grid
	for _, c := range candidates {
		if len(level.Vents) >= g.Vents {
			break
		}
		if taken.Has(c) || grid.AtPoint(c) != world.TileFloor {
			continue
		}

		grid.SetPoint(c, world.TileVent)
		if !allReachable(grid, level.Start, required) {
			grid.SetPoint(c, world.TileFloor)
			continue
		}
		taken.Put(c)
		level.Vents = append(level.Vents, c)
	}
}

// allReachable reports whether every target can be reached from start
// under the adversary policy
func allReachable(grid *world.Grid, start world.Point, targets []world.Point) bool {
	reach := world.Reachable(grid, start, world.Adversary)
	for _, p := range targets {
		if !reach.Has(p) {
			return false
		}
	}
	return true
}

// VentExits returns every vent tile that borders a walkable non-vent tile
func VentExits(grid *world.Grid) []world.Point {
	var exits []world.Point
	grid.ForEachTile(func(x, y int, t world.Tile) {
		if !t.IsVent() {
			return
		}
		for _, d := range world.AllDirections() {
			n := grid.AtPoint(world.Pt(x, y).Step(d))
			if n.Walkable() && !n.IsVent() {
				exits = append(exits, world.Pt(x, y))
				return
			}
		}
	})
	return exits
}
