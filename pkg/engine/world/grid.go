package world

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size map of tiles addressed by (x, y), origin top-left.
// A new grid is solid wall.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for i := range g.tiles {
		g.tiles[i] = TileWall
	}
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at (x, y), or TileNone if out of bounds
func (g *Grid) At(x, y int) Tile {
	if !g.IsValidPosition(x, y) {
		return TileNone
	}
	return g.tiles[y*g.width+x]
}

// AtPoint returns the tile at p, or TileNone if out of bounds
func (g *Grid) AtPoint(p Point) Tile {
	return g.At(p.X, p.Y)
}

// Set changes the tile at (x, y). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.IsValidPosition(x, y) {
		return
	}
	g.tiles[y*g.width+x] = t
}

// SetPoint changes the tile at p
func (g *Grid) SetPoint(p Point, t Tile) {
	g.Set(p.X, p.Y, t)
}

// ForEachTile iterates over every tile row by row
func (g *Grid) ForEachTile(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y*g.width+x])
		}
	}
}

// Count returns the number of tiles of the given kind
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

// ParseGrid builds a grid from rows of glyphs. Used by tests and dev tools.
//
//	# wall  . floor  + closed door  ' open door  = closed bulkhead
//	_ open bulkhead  A airlock  v vent
func ParseGrid(rows ...string) (*Grid, error) {
	height := len(rows)
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	g := NewGrid(width, height)
	for y, r := range rows {
		for x, ch := range r {
			t, ok := glyphTiles[ch]
			if !ok {
				return nil, fmt.Errorf("parse grid: unknown glyph %q at %d,%d", ch, x, y)
			}
			g.Set(x, y, t)
		}
	}
	return g, nil
}

var glyphTiles = map[rune]Tile{
	'#':  TileWall,
	'.':  TileFloor,
	'+':  TileDoorClosed,
	'\'': TileDoorOpen,
	'=':  TileBulkheadClosed,
	'_':  TileBulkheadOpen,
	'A':  TileAirlock,
	'v':  TileVent,
}

// Glyph returns the ParseGrid glyph for a tile
func Glyph(t Tile) rune {
	for ch, tile := range glyphTiles {
		if tile == t {
			return ch
		}
	}
	return ' '
}

// String renders the grid with ParseGrid glyphs
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(Glyph(g.At(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
