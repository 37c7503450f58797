package generator

import (
	"testing"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

// pointRoom is a 1×1 rectangular room, so its only connection point is the
// cell itself.
func pointRoom(id, x, y int) *world.Room {
	p := geometry.Point{X: x, Y: y}
	return &world.Room{
		ID: id, Shape: world.ShapeRectangular,
		X: x, Y: y, Width: 1, Height: 1,
		Center: p, Cells: []geometry.Point{p},
	}
}

func scatteredRooms() []*world.Room {
	return []*world.Room{
		pointRoom(0, 5, 5),
		pointRoom(1, 30, 6),
		pointRoom(2, 12, 28),
		pointRoom(3, 40, 40),
		pointRoom(4, 20, 15),
		pointRoom(5, 3, 44),
	}
}

// contiguous reports whether consecutive path points are 8-neighbors.
func contiguous(path []geometry.Point) bool {
	for i := 1; i < len(path); i++ {
		dx, dy := abs(path[i].X-path[i-1].X), abs(path[i].Y-path[i-1].Y)
		if dx > 1 || dy > 1 || dx+dy == 0 {
			return false
		}
	}
	return true
}

func connected(n int, corridors []*world.Corridor) bool {
	adj := make(map[int][]int)
	for _, c := range corridors {
		adj[c.From] = append(adj[c.From], c.To)
		adj[c.To] = append(adj[c.To], c.From)
	}
	seen := map[int]bool{0: true}
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(seen) == n
}

func TestSpanningTree(t *testing.T) {
	rooms := scatteredRooms()
	for _, style := range []HallwayStyle{HallwayStraight, HallwayBendy, HallwayOrganic} {
		g := NewCorridorGenerator(rng.NumberSeed(9), 1, false, 0, style)
		corridors := g.GenerateCorridors(rooms, 50, 50, nil)

		if len(corridors) != len(rooms)-1 {
			t.Fatalf("%s: %d corridors, want %d", style, len(corridors), len(rooms)-1)
		}
		if !connected(len(rooms), corridors) {
			t.Errorf("%s: corridors do not connect every room", style)
		}

		pairs := make(map[[2]int]bool)
		for _, c := range corridors {
			key := [2]int{min(c.From, c.To), max(c.From, c.To)}
			if pairs[key] {
				t.Errorf("%s: duplicate corridor %v", style, key)
			}
			pairs[key] = true

			if c.Path[0] != c.FromRoom.Center || c.Path[len(c.Path)-1] != c.ToRoom.Center {
				t.Errorf("%s: corridor %v does not run between room centers", style, key)
			}
			if !contiguous(c.Path) {
				t.Errorf("%s: corridor %v path has gaps", style, key)
			}
		}
	}
}

func TestSpanningTreePrefersShortEdges(t *testing.T) {
	rooms := []*world.Room{
		pointRoom(0, 0, 0),
		pointRoom(1, 10, 0),
		pointRoom(2, 20, 0),
	}
	tree := spanningTree(allEdges(rooms), len(rooms))
	if len(tree) != 2 {
		t.Fatalf("tree has %d edges, want 2", len(tree))
	}
	for _, e := range tree {
		if e.a == 0 && e.b == 2 {
			t.Error("spanning tree used the longest edge")
		}
	}
}

func TestStraightCorridorScenario(t *testing.T) {
	rooms := []*world.Room{pointRoom(0, 5, 5), pointRoom(1, 5, 15)}
	g := NewCorridorGenerator(rng.NumberSeed(1), 1, false, 0, HallwayStraight)
	conn := NewRoomGenerator(rng.NumberSeed(1), 0.5, 0.2, nil)

	corridors := g.GenerateCorridors(rooms, 30, 30, conn)
	if len(corridors) != 1 {
		t.Fatalf("got %d corridors, want 1", len(corridors))
	}
	path := corridors[0].Path
	if len(path) != 11 {
		t.Fatalf("path length = %d, want 11", len(path))
	}
	for i, p := range path {
		if p != (geometry.Point{X: 5, Y: 5 + i}) {
			t.Fatalf("path[%d] = %v, want (5,%d)", i, p, 5+i)
		}
	}
}

func TestBendyPath(t *testing.T) {
	from, to := geometry.Point{X: 2, Y: 3}, geometry.Point{X: 12, Y: 9}
	for seed := int64(1); seed <= 20; seed++ {
		path := BendyPath(rng.NewFromValue(seed), from, to)
		if path[0] != from || path[len(path)-1] != to {
			t.Fatalf("seed %d: endpoints %v..%v", seed, path[0], path[len(path)-1])
		}
		if !contiguous(path) {
			t.Fatalf("seed %d: bendy path has gaps", seed)
		}
		// One horizontal run plus one vertical run, sharing the corner.
		if len(path) != 10+6+1 {
			t.Fatalf("seed %d: path length = %d, want 17", seed, len(path))
		}
	}
}

func TestOrganicPathStaysOnMap(t *testing.T) {
	from, to := geometry.Point{X: 1, Y: 1}, geometry.Point{X: 18, Y: 2}
	for seed := int64(1); seed <= 50; seed++ {
		path := OrganicPath(rng.NewFromValue(seed), from, to, 20, 12)
		if path[0] != from || path[len(path)-1] != to {
			t.Fatalf("seed %d: endpoints %v..%v", seed, path[0], path[len(path)-1])
		}
		if !contiguous(path) {
			t.Fatalf("seed %d: organic path has gaps", seed)
		}
		for _, p := range path {
			if p.X < 0 || p.Y < 0 || p.X >= 20 || p.Y >= 12 {
				t.Fatalf("seed %d: path point %v off the map", seed, p)
			}
		}
	}
}

func TestLoops(t *testing.T) {
	rooms := scatteredRooms()
	n := len(rooms)

	tests := []struct {
		name        string
		createLoops bool
		chance      float64
		want        int
	}{
		{"every pair", true, 1, n * (n - 1) / 2},
		{"zero chance", true, 0, n - 1},
		{"loops disabled", false, 1, n - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCorridorGenerator(rng.NumberSeed(4), 1, tt.createLoops, tt.chance, HallwayStraight)
			corridors := g.GenerateCorridors(rooms, 50, 50, nil)
			if len(corridors) != tt.want {
				t.Errorf("got %d corridors, want %d", len(corridors), tt.want)
			}
		})
	}
}

func TestCorridorsSingleRoom(t *testing.T) {
	g := NewCorridorGenerator(rng.NumberSeed(1), 1, true, 1, HallwayBendy)
	if got := g.GenerateCorridors([]*world.Room{pointRoom(0, 3, 3)}, 10, 10, nil); got != nil {
		t.Errorf("single room produced corridors: %v", got)
	}
}

func TestCorridorWidthClamped(t *testing.T) {
	if g := NewCorridorGenerator(rng.NumberSeed(1), 7, false, 0, HallwayBendy); g.width != maxCorridorWidth {
		t.Errorf("width = %d, want %d", g.width, maxCorridorWidth)
	}
	if g := NewCorridorGenerator(rng.NumberSeed(1), 0, false, 0, HallwayBendy); g.width != minCorridorWidth {
		t.Errorf("width = %d, want %d", g.width, minCorridorWidth)
	}
}
