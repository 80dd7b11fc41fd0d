package world

// Tile is the terrain classification of a single grid cell
type Tile int

// Tile constants. TileNone is returned for coordinates outside the grid.
const (
	TileNone Tile = iota
	TileWall
	TileFloor
	TileDoorClosed
	TileDoorOpen
	TileBulkheadClosed
	TileBulkheadOpen
	TileAirlock
	TileVent
)

type tileTraits struct {
	walkable    bool
	transparent bool
	name        string
}

var tileTable = map[Tile]tileTraits{
	TileNone:           {false, false, "void"},
	TileWall:           {false, false, "wall"},
	TileFloor:          {true, true, "floor"},
	TileDoorClosed:     {false, false, "closed door"},
	TileDoorOpen:       {true, true, "open door"},
	TileBulkheadClosed: {false, false, "bulkhead"},
	TileBulkheadOpen:   {true, true, "open bulkhead"},
	TileAirlock:        {true, true, "airlock"},
	// Vents can be crawled through but not seen through.
	TileVent: {true, false, "vent"},
}

// Walkable returns true if an actor may stand on the tile
func (t Tile) Walkable() bool {
	return tileTable[t].walkable
}

// Transparent returns true if the tile does not block sight
func (t Tile) Transparent() bool {
	return tileTable[t].transparent
}

// IsVent returns true for maintenance vent tiles
func (t Tile) IsVent() bool {
	return t == TileVent
}

// IsDoor returns true for doors and bulkheads in either state
func (t Tile) IsDoor() bool {
	switch t {
	case TileDoorClosed, TileDoorOpen, TileBulkheadClosed, TileBulkheadOpen:
		return true
	}
	return false
}

// String returns a lower-case human-readable name
func (t Tile) String() string {
	if traits, ok := tileTable[t]; ok {
		return traits.name
	}
	return "unknown"
}
