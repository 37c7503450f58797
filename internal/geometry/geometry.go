// Package geometry provides the integer and real-valued primitives used to
// rasterize rooms and corridors.
package geometry

import "math"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Vec is a real-valued coordinate, used for curved and polygonal borders.
type Vec struct {
	X, Y float64
}

// Vec converts the point to a Vec.
func (p Point) Vec() Vec { return Vec{X: float64(p.X), Y: float64(p.Y)} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared returns the squared Euclidean distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointDistance returns the distance between two grid points.
func PointDistance(a, b Point) float64 {
	return Distance(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
}

// PointInRect reports whether (x, y) lies inside r. The right and bottom
// edges are exclusive.
func PointInRect(x, y int, r Rect) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// PointInCircle reports whether (x, y) lies within radius of (cx, cy).
func PointInCircle(x, y, cx, cy, radius float64) bool {
	return DistanceSquared(x, y, cx, cy) <= radius*radius
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	sum := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) <= sum*sum
}

// RectsOverlap reports whether two rectangles share any area.
func RectsOverlap(a, b Rect) bool {
	return !(b.X >= a.X+a.Width || b.X+b.Width <= a.X || b.Y >= a.Y+a.Height || b.Y+b.Height <= a.Y)
}

// RectIntersection returns the overlapping area of a and b.
// ok is false when they do not intersect.
func RectIntersection(a, b Rect) (r Rect, ok bool) {
	left := max(a.X, b.X)
	top := max(a.Y, b.Y)
	right := min(a.X+a.Width, b.X+b.Width)
	bottom := min(a.Y+a.Height, b.Y+b.Height)

	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// LinePoints rasterizes the segment from (x1, y1) to (x2, y2) with
// Bresenham's algorithm. Both endpoints are included.
func LinePoints(x1, y1, x2, y2 int) []Point {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	points := make([]Point, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := x1, y1

	for {
		points = append(points, Point{X: x, Y: y})
		if x == x2 && y == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			if x == x2 {
				break
			}
			err -= dy
			x += sx
		}
		if e2 < dx {
			if y == y2 {
				break
			}
			err += dx
			y += sy
		}
	}

	return points
}

// CirclePoints returns the outline of a circle using the midpoint algorithm.
// Octant symmetry means some points repeat where octants meet.
func CirclePoints(cx, cy, radius int) []Point {
	var points []Point
	x, y, err := radius, 0, 0

	for x >= y {
		points = append(points,
			Point{cx + x, cy + y},
			Point{cx + y, cy + x},
			Point{cx - y, cy + x},
			Point{cx - x, cy + y},
			Point{cx - x, cy - y},
			Point{cx - y, cy - x},
			Point{cx + y, cy - x},
			Point{cx + x, cy - y},
		)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}

	return points
}

// FilledCirclePoints returns every cell within radius of the center,
// scanning the bounding box column by column.
func FilledCirclePoints(cx, cy, radius int) []Point {
	var points []Point
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy <= radius*radius {
				points = append(points, Point{X: cx + dx, Y: cy + dy})
			}
		}
	}
	return points
}

// Polygon returns the vertices of a regular polygon.
func Polygon(center Vec, radius float64, sides int, angleOffset float64) []Vec {
	vertices := make([]Vec, 0, sides)
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		angle := float64(i)*step + angleOffset
		vertices = append(vertices, Vec{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return vertices
}

// PointInPolygon reports whether p lies inside polygon using the even-odd
// ray-casting rule. The polygon may be concave and in either winding.
func PointInPolygon(p Vec, polygon []Vec) bool {
	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the min and max corners of a vertex set.
func Bounds(vertices []Vec) (lo, hi Vec) {
	if len(vertices) == 0 {
		return Vec{}, Vec{}
	}
	lo, hi = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
