package template

import (
	"testing"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

func cellSet(cells []geometry.Point) map[geometry.Point]bool {
	set := make(map[geometry.Point]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

func TestTemplatesStayInBounds(t *testing.T) {
	areas := []struct {
		name       string
		x, y, w, h int
	}{
		{"roomy", 3, 4, 40, 40},
		{"tight", 0, 0, 12, 12},
		{"cramped", 10, 2, 6, 4},
		{"sliver", 5, 5, 1, 9},
	}

	for _, tmpl := range Default() {
		for _, a := range areas {
			area := geometry.Rect{X: a.x, Y: a.y, Width: a.w, Height: a.h}
			for seed := int64(1); seed <= 40; seed++ {
				r := rng.NewFromValue(seed)
				room := tmpl.Generate(7, a.x, a.y, a.w, a.h, r, Params{})

				if room.ID != 7 || room.Shape != tmpl.Shape() {
					t.Fatalf("%s/%s: got id %d shape %s", tmpl.Shape(), a.name, room.ID, room.Shape)
				}
				if len(room.Cells) == 0 {
					t.Fatalf("%s/%s seed %d: room has no cells", tmpl.Shape(), a.name, seed)
				}
				seen := make(map[geometry.Point]bool)
				for _, c := range room.Cells {
					if !geometry.PointInRect(c.X, c.Y, area) {
						t.Fatalf("%s/%s seed %d: cell %v outside %+v", tmpl.Shape(), a.name, seed, c, area)
					}
					if seen[c] {
						t.Fatalf("%s/%s seed %d: duplicate cell %v", tmpl.Shape(), a.name, seed, c)
					}
					seen[c] = true
				}
			}
		}
	}
}

func TestTemplatesDeterministic(t *testing.T) {
	for _, tmpl := range Default() {
		a := tmpl.Generate(0, 2, 2, 30, 30, rng.NewFromValue(4242), Params{})
		b := tmpl.Generate(0, 2, 2, 30, 30, rng.NewFromValue(4242), Params{})
		if len(a.Cells) != len(b.Cells) || a.Center != b.Center {
			t.Fatalf("%s: rooms differ for the same seed", tmpl.Shape())
		}
		for i := range a.Cells {
			if a.Cells[i] != b.Cells[i] {
				t.Fatalf("%s: cell %d differs: %v vs %v", tmpl.Shape(), i, a.Cells[i], b.Cells[i])
			}
		}
	}
}

func TestMaxExtentCoversRooms(t *testing.T) {
	for _, tmpl := range Default() {
		ew, eh := tmpl.MaxExtent(Params{})
		for seed := int64(1); seed <= 60; seed++ {
			room := tmpl.Generate(0, 0, 0, 60, 60, rng.NewFromValue(seed), Params{})
			box := cellBounds(room.Cells)
			if box.Width > ew || box.Height > eh {
				t.Errorf("%s seed %d: footprint %dx%d exceeds MaxExtent %dx%d",
					tmpl.Shape(), seed, box.Width, box.Height, ew, eh)
			}
		}
	}
}

func TestConnectionPointTouchesRoom(t *testing.T) {
	targets := []geometry.Point{{X: -20, Y: 15}, {X: 80, Y: 15}, {X: 15, Y: -20}, {X: 15, Y: 80}, {X: 70, Y: 70}}

	for _, tmpl := range Default() {
		for seed := int64(1); seed <= 20; seed++ {
			room := tmpl.Generate(0, 5, 5, 30, 30, rng.NewFromValue(seed), Params{})
			cells := cellSet(room.Cells)
			for _, target := range targets {
				p := tmpl.ConnectionPoint(room, target)
				if !touches(cells, p) {
					t.Errorf("%s seed %d: connection point %v toward %v is not on or beside the room",
						tmpl.Shape(), seed, p, target)
				}
			}
			if len(tmpl.ConnectionPoints(room)) == 0 {
				t.Errorf("%s seed %d: no connection points", tmpl.Shape(), seed)
			}
		}
	}
}

func touches(cells map[geometry.Point]bool, p geometry.Point) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if cells[geometry.Point{X: p.X + dx, Y: p.Y + dy}] {
				return true
			}
		}
	}
	return false
}

func TestRectangularConnectionPoint(t *testing.T) {
	room := &world.Room{X: 10, Y: 10, Width: 5, Height: 4}

	tests := []struct {
		target geometry.Point
		want   geometry.Point
	}{
		{geometry.Point{X: 9, Y: 30}, geometry.Point{X: 10, Y: 13}},  // left wall, clamped
		{geometry.Point{X: 15, Y: -5}, geometry.Point{X: 14, Y: 10}}, // right wall, clamped
		{geometry.Point{X: 12, Y: 10}, geometry.Point{X: 12, Y: 10}}, // top wall
		{geometry.Point{X: 12, Y: 14}, geometry.Point{X: 12, Y: 13}}, // bottom wall
		{geometry.Point{X: 10, Y: 10}, geometry.Point{X: 10, Y: 10}}, // tie goes to the left wall
	}

	for _, tt := range tests {
		if got := (Rectangular{}).ConnectionPoint(room, tt.target); got != tt.want {
			t.Errorf("ConnectionPoint(%v) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestCircularConnectionPoint(t *testing.T) {
	room := circleRoom(0, world.ShapeCircular, 0, 0, 4)

	if got := (Circular{}).ConnectionPoint(room, geometry.Point{X: 20, Y: 4}); got != (geometry.Point{X: 8, Y: 4}) {
		t.Errorf("east rim = %v, want (8,4)", got)
	}
	if got := (Circular{}).ConnectionPoint(room, room.Center); got != room.Center {
		t.Errorf("target at center should return center, got %v", got)
	}
	if len(room.Border) < minBorderSamples {
		t.Errorf("border has %d samples, want at least %d", len(room.Border), minBorderSamples)
	}
}

func TestLShapedHasCutCorner(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		room := LShaped{}.Generate(0, 0, 0, 40, 40, rng.NewFromValue(seed), Params{})
		if len(room.Cells) >= room.Width*room.Height {
			t.Fatalf("seed %d: L-shaped room is a full rectangle", seed)
		}
		cells := cellSet(room.Cells)
		if !cells[geometry.Point{X: 0, Y: 0}] {
			t.Fatalf("seed %d: top-left corner missing", seed)
		}
		if cells[geometry.Point{X: room.Width - 1, Y: room.Height - 1}] {
			t.Fatalf("seed %d: bottom-right corner should be cut", seed)
		}
	}
}

func TestCaveHasNoIsolatedCells(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		room := Cave{}.Generate(0, 2, 2, 30, 30, rng.NewFromValue(seed), Params{})
		cells := cellSet(room.Cells)
		for _, c := range room.Cells {
			alive := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if (dx != 0 || dy != 0) && cells[geometry.Point{X: c.X + dx, Y: c.Y + dy}] {
						alive++
					}
				}
			}
			if alive == 0 {
				t.Fatalf("seed %d: cave cell %v has no living neighbor", seed, c)
			}
		}

		box := cellBounds(room.Cells)
		if box != room.Bounds() {
			t.Fatalf("seed %d: room bounds %+v do not match cells %+v", seed, room.Bounds(), box)
		}
	}
}

func TestErodeRules(t *testing.T) {
	if got := erode([]geometry.Point{{X: 5, Y: 5}}, 1); len(got) != 0 {
		t.Errorf("lone cell survived: %v", got)
	}

	// A solid 5x5 block keeps its interior and loses its corners.
	block := rectCells(0, 0, 5, 5)
	got := cellSet(erode(block, 1))
	if got[geometry.Point{X: 0, Y: 0}] {
		t.Error("corner with 3 neighbors should die")
	}
	if !got[geometry.Point{X: 2, Y: 2}] || !got[geometry.Point{X: 0, Y: 2}] {
		t.Error("interior and edge cells with enough neighbors should survive")
	}
	if len(got) != 21 {
		t.Errorf("eroded block has %d cells, want 21", len(got))
	}
}

func TestLargestRegion(t *testing.T) {
	cells := []geometry.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6},
		{X: 9, Y: 9},
	}
	got := largestRegion(cells)
	if len(got) != 3 {
		t.Fatalf("largest region has %d cells, want 3", len(got))
	}
	if got[0] != (geometry.Point{X: 5, Y: 5}) {
		t.Errorf("region should start at (5,5), got %v", got[0])
	}
}

func TestParamsMerge(t *testing.T) {
	base := Rectangular{}.DefaultParams()
	merged := base.Merge(Params{MaxWidth: 20, InnerRatio: 0.5})

	if merged.MinWidth != 3 || merged.MaxWidth != 20 {
		t.Errorf("width range = %d..%d, want 3..20", merged.MinWidth, merged.MaxWidth)
	}
	if merged.InnerRatio != 0.5 {
		t.Errorf("InnerRatio = %v, want 0.5", merged.InnerRatio)
	}
	if merged.MaxHeight != 8 {
		t.Errorf("MaxHeight = %d, want untouched 8", merged.MaxHeight)
	}
}

func TestPerimeter(t *testing.T) {
	cells := rectCells(0, 0, 3, 3)
	per := perimeter(cells)
	if len(per) != 8 {
		t.Fatalf("3x3 perimeter has %d cells, want 8", len(per))
	}
	for _, c := range per {
		if c == (geometry.Point{X: 1, Y: 1}) {
			t.Error("center cell reported as perimeter")
		}
	}
}
