// Package grid provides a dense, bounds-checked 2D container.
package grid

import "github.com/samdwyer/dungeongen/internal/geometry"

// Grid is a fixed-size width×height store of T, stored row-major.
type Grid[T any] struct {
	width, height int
	def           T
	cells         []T
}

// Neighbor is an adjacent cell returned by Neighbors.
type Neighbor[T any] struct {
	X, Y  int
	Value T
}

var (
	orthogonal = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	allAround  = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// New creates a grid with every cell set to def.
// Negative dimensions are treated as zero.
func New[T any](width, height int, def T) *Grid[T] {
	width, height = max(0, width), max(0, height)
	g := &Grid[T]{
		width:  width,
		height: height,
		def:    def,
		cells:  make([]T, width*height),
	}
	g.Fill(def)
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the value at (x, y). ok is false when out of bounds.
func (g *Grid[T]) Get(x, y int) (v T, ok bool) {
	if !g.InBounds(x, y) {
		return v, false
	}
	return g.cells[y*g.width+x], true
}

// At returns the value at (x, y), or the default value when out of bounds.
func (g *Grid[T]) At(x, y int) T {
	if !g.InBounds(x, y) {
		return g.def
	}
	return g.cells[y*g.width+x]
}

// Set stores v at (x, y) and reports whether the cell was in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// FillRect sets every cell in the inclusive rectangle (x1,y1)-(x2,y2),
// clipped to the grid, to v.
func (g *Grid[T]) FillRect(x1, y1, x2, y2 int, v T) {
	x1, y1 = max(0, x1), max(0, y1)
	x2, y2 = min(g.width-1, x2), min(g.height-1, y2)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.cells[y*g.width+x] = v
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{width: g.width, height: g.height, def: g.def, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// ForEach calls fn for every cell, row by row.
func (g *Grid[T]) ForEach(fn func(v T, x, y int)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(g.cells[y*g.width+x], x, y)
		}
	}
}

// FindAll returns the coordinates of every cell matching pred, row by row.
func (g *Grid[T]) FindAll(pred func(v T, x, y int) bool) []geometry.Point {
	var out []geometry.Point
	g.ForEach(func(v T, x, y int) {
		if pred(v, x, y) {
			out = append(out, geometry.Point{X: x, Y: y})
		}
	})
	return out
}

// Neighbors returns the in-bounds cells adjacent to (x, y): up to 4, or up
// to 8 when diagonal is set.
func (g *Grid[T]) Neighbors(x, y int, diagonal bool) []Neighbor[T] {
	dirs := orthogonal
	if diagonal {
		dirs = allAround
	}
	out := make([]Neighbor[T], 0, len(dirs))
	for _, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Neighbor[T]{X: nx, Y: ny, Value: g.cells[ny*g.width+nx]})
		}
	}
	return out
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Map returns a new grid holding fn applied to every cell of g.
func Map[T, U any](g *Grid[T], fn func(v T, x, y int) U) *Grid[U] {
	out := &Grid[U]{
		width:  g.width,
		height: g.height,
		def:    fn(g.def, 0, 0),
		cells:  make([]U, len(g.cells)),
	}
	g.ForEach(func(v T, x, y int) {
		out.cells[y*g.width+x] = fn(v, x, y)
	})
	return out
}
