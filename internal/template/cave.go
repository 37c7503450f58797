package template

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/grid"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	// A living cell with fewer live neighbors than this dies.
	caveSurviveMin = 4
	// A dead cell with at least this many live neighbors comes alive.
	caveBirthMin = 5
	// Erosion results smaller than this are discarded in favor of the seed.
	caveMinCells = 4
)

// Cave erodes a rectangular or circular seed with a cellular automaton into
// an organic blob.
type Cave struct{}

func (Cave) Shape() world.Shape { return world.ShapeCave }
func (Cave) Name() string       { return "Cave" }

func (Cave) DefaultParams() Params {
	return Params{
		MinWidth: 5, MaxWidth: 10,
		MinHeight: 5, MaxHeight: 10,
		MinRadius: 3, MaxRadius: 5,
		CaveIterations:   2,
		CaveCircleChance: 0.5,
	}
}

// MaxExtent covers the larger of the two seed shapes. Erosion never grows a
// seed past its bounding box.
func (t Cave) MaxExtent(params Params) (int, int) {
	p := t.DefaultParams().Merge(params)
	d := 2*p.MaxRadius + 1
	return max(p.MaxWidth, d), max(p.MaxHeight, d)
}

func (t Cave) Generate(id, x, y, boundsW, boundsH int, r *rng.Random, params Params) *world.Room {
	p := t.DefaultParams().Merge(params)

	var seed *world.Room
	if r.NextBool(p.CaveCircleChance) {
		seed = Circular{}.Generate(id, x, y, boundsW, boundsH, r, p)
	} else {
		seed = Rectangular{}.Generate(id, x, y, boundsW, boundsH, r, p)
	}

	cells := erode(seed.Cells, p.CaveIterations)
	cells = largestRegion(cells)
	if len(cells) < caveMinCells {
		cells = seed.Cells
	}

	box := cellBounds(cells)
	return &world.Room{
		ID:     id,
		Shape:  world.ShapeCave,
		X:      box.X,
		Y:      box.Y,
		Width:  box.Width,
		Height: box.Height,
		Center: meanCenter(cells),
		Cells:  cells,
	}
}

func (Cave) ConnectionPoints(room *world.Room) []geometry.Point {
	return perimeter(room.Cells)
}

func (Cave) ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point {
	return nearestPerimeter(room, target)
}

// erode runs the automaton over the seed's bounding box padded by one cell.
// Each step reads the previous generation only.
func erode(seed []geometry.Point, iterations int) []geometry.Point {
	if len(seed) == 0 {
		return nil
	}
	box := cellBounds(seed)
	ox, oy := box.X-1, box.Y-1
	alive := grid.New(box.Width+2, box.Height+2, false)
	for _, c := range seed {
		alive.Set(c.X-ox, c.Y-oy, true)
	}

	for i := 0; i < iterations; i++ {
		prev := alive.Clone()
		prev.ForEach(func(live bool, x, y int) {
			n := 0
			for _, nb := range prev.Neighbors(x, y, true) {
				if nb.Value {
					n++
				}
			}
			switch {
			case live && n < caveSurviveMin:
				alive.Set(x, y, false)
			case !live && n >= caveBirthMin:
				alive.Set(x, y, true)
			}
		})
	}

	var out []geometry.Point
	for _, c := range alive.FindAll(func(live bool, _, _ int) bool { return live }) {
		out = append(out, geometry.Point{X: c.X + ox, Y: c.Y + oy})
	}
	return out
}

// largestRegion keeps the biggest 4-connected group of cells. Ties go to the
// group found first.
func largestRegion(cells []geometry.Point) []geometry.Point {
	remaining := mapset.New[geometry.Point]()
	for _, c := range cells {
		remaining.Put(c)
	}

	var best []geometry.Point
	for _, start := range cells {
		if !remaining.Has(start) {
			continue
		}
		remaining.Remove(start)
		region := []geometry.Point{start}
		for i := 0; i < len(region); i++ {
			for _, d := range orthogonal {
				n := region[i].Add(d)
				if remaining.Has(n) {
					remaining.Remove(n)
					region = append(region, n)
				}
			}
		}
		if len(region) > len(best) {
			best = region
		}
	}
	return best
}
