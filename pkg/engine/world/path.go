package world

import (
	"github.com/zyedidia/generic/mapset"
)

// NeighborPolicy decides which orthogonal neighbours a search may enter
type NeighborPolicy int

const (
	// Unrestricted allows any walkable tile
	Unrestricted NeighborPolicy = iota
	// Adversary allows walkable tiles except vents
	Adversary
)

// Allows returns true if the policy permits stepping onto t
func (p NeighborPolicy) Allows(t Tile) bool {
	if !t.Walkable() {
		return false
	}
	if p == Adversary && t.IsVent() {
		return false
	}
	return true
}

// String returns the policy name
func (p NeighborPolicy) String() string {
	if p == Adversary {
		return "adversary"
	}
	return "unrestricted"
}

// neighborOffsets is the fixed expansion order: south, north, east, west.
var neighborOffsets = [4]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Neighbors returns the orthogonal neighbours of p, in bounds, that the policy allows
func Neighbors(grid *Grid, p Point, policy NeighborPolicy) []Point {
	out := make([]Point, 0, 4)
	for _, off := range neighborOffsets {
		n := p.Add(off.X, off.Y)
		if policy.Allows(grid.AtPoint(n)) {
			out = append(out, n)
		}
	}
	return out
}

// OrthogonalOffsets returns the neighbour offsets in expansion order
func OrthogonalOffsets() []Point {
	return neighborOffsets[:]
}

// FindPath returns the shortest path from start to goal, excluding start and
// including goal. An unreachable goal, or start == goal, yields an empty path.
func FindPath(grid *Grid, start, goal Point, policy NeighborPolicy) []Point {
	if start == goal {
		return nil
	}

	cameFrom := map[Point]Point{start: start}
	frontier := []Point{start}

	found := false
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		if current == goal {
			found = true
			break
		}

		for _, n := range Neighbors(grid, current, policy) {
			if _, seen := cameFrom[n]; seen {
				continue
			}
			cameFrom[n] = current
			frontier = append(frontier, n)
		}
	}

	if !found {
		return nil
	}

	var path []Point
	for p := goal; p != start; p = cameFrom[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reachable returns every cell reachable from start under the policy,
// start included.
func Reachable(grid *Grid, start Point, policy NeighborPolicy) mapset.Set[Point] {
	visited := mapset.New[Point]()
	visited.Put(start)
	queue := []Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range Neighbors(grid, current, policy) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}
