package generator

import (
	"math/rand"

	"darkstation/pkg/engine/world"
)

// Room is an axis-aligned rectangle produced by generation. Its border cells
// stay wall; only the interior is carved.
type Room struct {
	X, Y, Width, Height int
}

// Center returns the room's center cell
func (r Room) Center() world.Point {
	return world.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Contains returns true if p lies inside the rectangle, border included
func (r Room) Contains(p world.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Level is the output of a generator run
type Level struct {
	Grid      *world.Grid
	Start     world.Point
	Crates    []world.Point
	Terminals []world.Point
	Vents     []world.Point
	Rooms     []Room
}

// Features returns every crate and terminal point
func (l *Level) Features() []world.Point {
	out := make([]world.Point, 0, len(l.Crates)+len(l.Terminals))
	out = append(out, l.Crates...)
	return append(out, l.Terminals...)
}

// LevelGenerator is an interface for map generation algorithms
type LevelGenerator interface {
	Generate(rng *rand.Rand, width, height int) *Level
	Name() string
}

// BSP is the binary space partitioning generator with default feature counts
var BSP = &BSPGenerator{
	Crates:    3,
	Terminals: 2,
	Bulkheads: 2,
	Vents:     4,
}

// DefaultGenerator is the default map generator
var DefaultGenerator LevelGenerator = BSP
