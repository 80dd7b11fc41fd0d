package world

// Mask is a per-cell boolean overlay with the same dimensions as a grid
type Mask struct {
	width  int
	height int
	cells  []bool
}

// NewMask creates an empty mask
func NewMask(width, height int) *Mask {
	return &Mask{width: width, height: height, cells: make([]bool, width*height)}
}

// Visible returns true if (x, y) is set. Out of bounds is never visible.
func (m *Mask) Visible(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x]
}

// Mark sets (x, y)
func (m *Mask) Mark(x, y int) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = true
}

// Union sets every cell that is set in other
func (m *Mask) Union(other *Mask) {
	if other == nil {
		return
	}
	for y := 0; y < other.height && y < m.height; y++ {
		for x := 0; x < other.width && x < m.width; x++ {
			if other.cells[y*other.width+x] {
				m.cells[y*m.width+x] = true
			}
		}
	}
}

// Count returns the number of set cells
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// ComputeFOV returns the cells visible from (ox, oy) within a Euclidean radius.
// A ray is traced to every cell in range; each ray marks cells until it has
// marked an opaque cell or leaves the map. The origin is always visible.
func ComputeFOV(grid *Grid, ox, oy, radius int) *Mask {
	mask := NewMask(grid.Width(), grid.Height())
	mask.Mark(ox, oy)

	r2 := radius * radius
	for y := oy - radius; y <= oy+radius; y++ {
		for x := ox - radius; x <= ox+radius; x++ {
			dx, dy := x-ox, y-oy
			if dx*dx+dy*dy > r2 {
				continue
			}
			for _, p := range BresenhamLine(ox, oy, x, y) {
				if !grid.IsValidPosition(p.X, p.Y) {
					break
				}
				mask.Mark(p.X, p.Y)
				if !grid.At(p.X, p.Y).Transparent() {
					break
				}
			}
		}
	}
	return mask
}

// HasLineOfSight returns true if every cell on the line from viewer to target,
// other than the target itself, is transparent.
func HasLineOfSight(grid *Grid, viewer, target Point) bool {
	for _, p := range LineBetween(viewer, target) {
		if p == target {
			continue
		}
		if !grid.AtPoint(p).Transparent() {
			return false
		}
	}
	return true
}

// CanSee combines a Euclidean range gate with HasLineOfSight
func CanSee(grid *Grid, viewer, target Point, rangeLimit int) bool {
	if viewer.DistSq(target) > rangeLimit*rangeLimit {
		return false
	}
	return HasLineOfSight(grid, viewer, target)
}

// PeekRay returns the cells seen when looking length cells in one direction.
// The ray includes the origin and stops after the first opaque cell or at the
// map edge.
func PeekRay(grid *Grid, from Point, d Direction, length int) []Point {
	dx, dy := d.Delta()
	end := from.Add(dx*length, dy*length)

	var seen []Point
	for _, p := range LineBetween(from, end) {
		if !grid.IsValidPosition(p.X, p.Y) {
			break
		}
		seen = append(seen, p)
		if !grid.AtPoint(p).Transparent() {
			break
		}
	}
	return seen
}
