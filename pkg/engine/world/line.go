package world

// BresenhamLine returns every grid cell on the line from (x0,y0) to (x1,y1),
// both ends included, in order from the start.
func BresenhamLine(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	points := make([]Point, 0, max(dx, dy)+1)
	err := dx - dy
	for {
		points = append(points, Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
	return points
}

// LineBetween is BresenhamLine for two points
func LineBetween(from, to Point) []Point {
	return BresenhamLine(from.X, from.Y, to.X, to.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
