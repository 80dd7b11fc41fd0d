package generator

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"darkstation/pkg/engine/logger"
	"darkstation/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct {
	Crates    int
	Terminals int
	Bulkheads int
	Vents     int
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Room
}

// Constants for BSP generation
const (
	minLeafSize  = 8    // Minimum size of a partition
	roomPadding  = 2    // Minimum padding from partition edge to room edge
	aspectForced = 1.25 // Ratio beyond which the longer axis is always split
)

// Generate creates a new level using the BSP algorithm
func (g *BSPGenerator) Generate(rng *rand.Rand, width, height int) *Level {
	level := &Level{Grid: world.NewGrid(width, height)}

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{x: 1, y: 1, width: width - 2, height: height - 2}
	leaves := splitLeaves(rng, root)

	for _, leaf := range leaves {
		leaf.createRoom(rng)
		if leaf.room != nil {
			carveRoom(level.Grid, *leaf.room)
			level.Rooms = append(level.Rooms, *leaf.room)
		}
	}

	connectRooms(rng, level.Grid, level.Rooms)
	doors := placeDoors(level.Grid)
	g.placeFeatures(rng, level)

	logger.Component("generator").WithFields(logrus.Fields{
		"width":     width,
		"height":    height,
		"leaves":    len(leaves),
		"rooms":     len(level.Rooms),
		"doors":     doors,
		"crates":    len(level.Crates),
		"terminals": len(level.Terminals),
		"vents":     len(level.Vents),
	}).Debug("Level generated.")

	return level
}

// splitLeaves splits the tree breadth-first until no leaf can be split and
// returns the final leaves in split order
func splitLeaves(rng *rand.Rand, root *bspNode) []*bspNode {
	leaves := []*bspNode{root}
	var finished []*bspNode

	for len(leaves) > 0 {
		var next []*bspNode
		for _, leaf := range leaves {
			if leaf.split(rng) {
				next = append(next, leaf.left, leaf.right)
			} else {
				finished = append(finished, leaf)
			}
		}
		leaves = next
	}
	return finished
}

// split divides the node along its longer axis, or a random axis when the
// node is close to square. Returns false if either child would be too small.
func (n *bspNode) split(rng *rand.Rand) bool {
	if n.left != nil || n.right != nil {
		return false
	}

	splitHorizontal := rng.Float64() > 0.5
	if float64(n.width) > float64(n.height)*aspectForced {
		splitHorizontal = false
	} else if float64(n.height) > float64(n.width)*aspectForced {
		splitHorizontal = true
	}

	size := n.width
	if splitHorizontal {
		size = n.height
	}
	limit := size - minLeafSize
	if limit <= minLeafSize {
		return false
	}

	at := rng.Intn(limit-minLeafSize) + minLeafSize

	if splitHorizontal {
		// Top and bottom
		n.left = &bspNode{x: n.x, y: n.y, width: n.width, height: at}
		n.right = &bspNode{x: n.x, y: n.y + at, width: n.width, height: n.height - at}
	} else {
		// Left and right
		n.left = &bspNode{x: n.x, y: n.y, width: at, height: n.height}
		n.right = &bspNode{x: n.x + at, y: n.y, width: n.width - at, height: n.height}
	}
	return true
}

// createRoom places one randomly sized room inside a leaf
func (n *bspNode) createRoom(rng *rand.Rand) {
	if n.left != nil || n.right != nil {
		return
	}
	if n.width-roomPadding*2 <= 0 || n.height-roomPadding*2 <= 0 {
		return
	}

	w := rng.Intn(n.width-roomPadding*2) + roomPadding
	h := rng.Intn(n.height-roomPadding*2) + roomPadding
	x := n.x + rng.Intn(n.width-w-1)
	y := n.y + rng.Intn(n.height-h-1)

	n.room = &Room{X: x, Y: y, Width: w, Height: h}
}

// carveRoom turns the interior of a room into floor
func carveRoom(grid *world.Grid, r Room) {
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		for x := r.X + 1; x < r.X+r.Width-1; x++ {
			grid.Set(x, y, world.TileFloor)
		}
	}
}

// connectRooms joins every room into one component. Each step connects the
// closest (connected, unconnected) pair of room centers with an L corridor.
func connectRooms(rng *rand.Rand, grid *world.Grid, rooms []Room) {
	if len(rooms) < 2 {
		return
	}

	connected := []Room{rooms[0]}
	unconnected := append([]Room(nil), rooms[1:]...)

	for len(unconnected) > 0 {
		bestFrom, bestTo := -1, -1
		bestDist := math.MaxInt
		for i, from := range connected {
			for j, to := range unconnected {
				d := from.Center().DistSq(to.Center())
				if d < bestDist {
					bestDist = d
					bestFrom, bestTo = i, j
				}
			}
		}

		p1 := connected[bestFrom].Center()
		p2 := unconnected[bestTo].Center()
		if rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			carveCorridorHorizontal(grid, p1.Y, p1.X, p2.X)
			carveCorridorVertical(grid, p2.X, p1.Y, p2.Y)
		} else {
			// Vertical first, then horizontal
			carveCorridorVertical(grid, p1.X, p1.Y, p2.Y)
			carveCorridorHorizontal(grid, p2.Y, p1.X, p2.X)
		}

		connected = append(connected, unconnected[bestTo])
		unconnected = append(unconnected[:bestTo], unconnected[bestTo+1:]...)
	}
}

// carveCorridorHorizontal carves floor along row y between two columns
func carveCorridorHorizontal(grid *world.Grid, y, x1, x2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		grid.Set(x, y, world.TileFloor)
	}
}

// carveCorridorVertical carves floor along column x between two rows
func carveCorridorVertical(grid *world.Grid, x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		grid.Set(x, y, world.TileFloor)
	}
}

// placeDoors turns corridor pinch points into closed doors: a wall with floor
// on both sides along exactly one axis. Returns the number of doors placed.
func placeDoors(grid *world.Grid) int {
	doors := 0
	for x := 1; x < grid.Width()-1; x++ {
		for y := 1; y < grid.Height()-1; y++ {
			if grid.At(x, y) != world.TileWall {
				continue
			}
			above := grid.At(x, y-1) == world.TileFloor
			below := grid.At(x, y+1) == world.TileFloor
			left := grid.At(x-1, y) == world.TileFloor
			right := grid.At(x+1, y) == world.TileFloor

			if (above && below && !left && !right) || (left && right && !above && !below) {
				grid.Set(x, y, world.TileDoorClosed)
				doors++
			}
		}
	}
	return doors
}

// placeFeatures assigns the airlock, crates and terminals to shuffled room
// centers, then promotes doors to bulkheads and adds vents
func (g *BSPGenerator) placeFeatures(rng *rand.Rand, level *Level) {
	grid := level.Grid
	taken := mapset.New[world.Point]()

	if len(level.Rooms) == 0 {
		// Degenerate map: open the center so the player has somewhere to stand
		level.Start = world.Pt(grid.Width()/2, grid.Height()/2)
		grid.SetPoint(level.Start, world.TileAirlock)
		return
	}

	shuffled := append([]Room(nil), level.Rooms...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	level.Start = shuffled[0].Center()
	grid.SetPoint(level.Start, world.TileAirlock)
	taken.Put(level.Start)
	shuffled = shuffled[1:]

	takeCenter := func() (world.Point, bool) {
		r := shuffled[0]
		shuffled = shuffled[1:]
		p := r.Center()
		if grid.AtPoint(p) != world.TileFloor || taken.Has(p) {
			return p, false
		}
		taken.Put(p)
		return p, true
	}

	for i := 0; i < g.Crates && len(shuffled) > 0; i++ {
		if p, ok := takeCenter(); ok {
			level.Crates = append(level.Crates, p)
		}
	}
	for i := 0; i < g.Terminals && len(shuffled) > 0; i++ {
		if p, ok := takeCenter(); ok {
			level.Terminals = append(level.Terminals, p)
		}
	}

	g.placeBulkheads(rng, grid)
	g.placeVents(rng, level, taken)
}

// placeBulkheads promotes random closed doors to one-way bulkheads
func (g *BSPGenerator) placeBulkheads(rng *rand.Rand, grid *world.Grid) {
	var doors []world.Point
	for x := 1; x < grid.Width()-1; x++ {
		for y := 1; y < grid.Height()-1; y++ {
			if grid.At(x, y) == world.TileDoorClosed {
				doors = append(doors, world.Pt(x, y))
			}
		}
	}
	rng.Shuffle(len(doors), func(i, j int) {
		doors[i], doors[j] = doors[j], doors[i]
	})
	for i := 0; i < g.Bulkheads && i < len(doors); i++ {
		grid.SetPoint(doors[i], world.TileBulkheadClosed)
	}
}
