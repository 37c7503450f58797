package generator

import (
	"cmp"
	"math"
	"slices"

	"github.com/samdwyer/dungeongen/internal/geometry"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/world"
)

const (
	minBends = 2
	maxBends = 4

	// Organic waypoints stray up to this many cells from the straight line.
	bendVariance = 10
)

// Connector resolves where a corridor toward target attaches to a room.
type Connector interface {
	ConnectionPoint(room *world.Room, target geometry.Point) geometry.Point
}

// CorridorGenerator links rooms with a minimum spanning tree of corridors.
type CorridorGenerator struct {
	rand        *rng.Random
	width       int
	createLoops bool
	loopChance  float64
	style       HallwayStyle
}

// NewCorridorGenerator creates a generator for corridors of the given width
// and style. Loops are only added when createLoops is set and loopChance is
// positive.
func NewCorridorGenerator(seed rng.Seed, width int, createLoops bool, loopChance float64, style HallwayStyle) *CorridorGenerator {
	return &CorridorGenerator{
		rand:        rng.New(seed),
		width:       max(minCorridorWidth, min(maxCorridorWidth, width)),
		createLoops: createLoops,
		loopChance:  loopChance,
		style:       style,
	}
}

// Reset rewinds the random stream.
func (g *CorridorGenerator) Reset() { g.rand.Reset() }

// edge joins two rooms, weighted by the distance between their centers.
type edge struct {
	a, b   int // indexes into the room slice
	weight float64
}

// GenerateCorridors connects every room. Without loops the result has
// exactly len(rooms)-1 corridors. conn may be nil, in which case corridors
// run between room centers.
func (g *CorridorGenerator) GenerateCorridors(rooms []*world.Room, mapW, mapH int, conn Connector) []*world.Corridor {
	if len(rooms) <= 1 {
		return nil
	}

	edges := allEdges(rooms)
	chosen := spanningTree(edges, len(rooms))
	if g.createLoops && g.loopChance > 0 {
		chosen = g.addLoops(edges, chosen)
	}

	corridors := make([]*world.Corridor, 0, len(chosen))
	for _, e := range chosen {
		from, to := rooms[e.a], rooms[e.b]
		start, end := from.Center, to.Center
		if conn != nil {
			start = conn.ConnectionPoint(from, to.Center)
			end = conn.ConnectionPoint(to, from.Center)
		}
		corridors = append(corridors, &world.Corridor{
			From:     from.ID,
			To:       to.ID,
			FromRoom: from,
			ToRoom:   to,
			Path:     g.path(start, end, mapW, mapH),
			Width:    g.width,
		})
	}
	return corridors
}

// allEdges returns every room pair sorted by ascending distance. Equal
// distances keep their pair order.
func allEdges(rooms []*world.Room) []edge {
	edges := make([]edge, 0, len(rooms)*(len(rooms)-1)/2)
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			edges = append(edges, edge{
				a:      i,
				b:      j,
				weight: geometry.PointDistance(rooms[i].Center, rooms[j].Center),
			})
		}
	}
	slices.SortStableFunc(edges, func(x, y edge) int {
		return cmp.Compare(x.weight, y.weight)
	})
	return edges
}

// spanningTree runs Kruskal's algorithm over edges sorted by weight.
func spanningTree(edges []edge, n int) []edge {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	tree := make([]edge, 0, n-1)
	for _, e := range edges {
		ra, rb := find(e.a), find(e.b)
		if ra == rb {
			continue
		}
		tree = append(tree, e)
		parent[ra] = rb
		if len(tree) == n-1 {
			break
		}
	}
	return tree
}

// addLoops returns tree plus each remaining edge kept with probability
// loopChance. Tree edges come first and are never duplicated.
func (g *CorridorGenerator) addLoops(edges, tree []edge) []edge {
	inTree := make(map[[2]int]bool, len(tree))
	for _, e := range tree {
		inTree[[2]int{e.a, e.b}] = true
	}

	out := slices.Clone(tree)
	for _, e := range edges {
		if inTree[[2]int{e.a, e.b}] {
			continue
		}
		if g.rand.NextFloat(0, 1) < g.loopChance {
			out = append(out, e)
		}
	}
	return out
}

func (g *CorridorGenerator) path(from, to geometry.Point, mapW, mapH int) []geometry.Point {
	switch g.style {
	case HallwayStraight:
		return StraightPath(from, to)
	case HallwayOrganic:
		return OrganicPath(g.rand, from, to, mapW, mapH)
	default:
		return BendyPath(g.rand, from, to)
	}
}

// StraightPath is a single Bresenham line from one point to the other.
func StraightPath(from, to geometry.Point) []geometry.Point {
	return geometry.LinePoints(from.X, from.Y, to.X, to.Y)
}

// BendyPath runs along one axis and then the other, turning at a randomly
// chosen corner.
func BendyPath(r *rng.Random, from, to geometry.Point) []geometry.Point {
	corner := geometry.Point{X: from.X, Y: to.Y}
	if r.NextBool(0.5) {
		corner = geometry.Point{X: to.X, Y: from.Y}
	}
	return joinSegments([]geometry.Point{from, corner, to})
}

// OrganicPath wanders through two to four jittered waypoints spaced evenly
// between the endpoints. Waypoints are kept on the map.
func OrganicPath(r *rng.Random, from, to geometry.Point, mapW, mapH int) []geometry.Point {
	bends := r.NextInt(minBends, maxBends)
	points := make([]geometry.Point, 0, bends+2)
	points = append(points, from)

	for i := 0; i < bends; i++ {
		t := float64(i+1) / float64(bends+1)
		tx := float64(from.X) + float64(to.X-from.X)*t
		ty := float64(from.Y) + float64(to.Y-from.Y)*t
		x := int(math.Round(tx)) + r.NextInt(-bendVariance, bendVariance)
		y := int(math.Round(ty)) + r.NextInt(-bendVariance, bendVariance)
		points = append(points, geometry.Point{
			X: max(0, min(mapW-1, x)),
			Y: max(0, min(mapH-1, y)),
		})
	}
	points = append(points, to)
	return joinSegments(points)
}

// joinSegments draws lines between consecutive waypoints without repeating
// the shared point at each joint.
func joinSegments(waypoints []geometry.Point) []geometry.Point {
	var path []geometry.Point
	for i := 0; i+1 < len(waypoints); i++ {
		seg := StraightPath(waypoints[i], waypoints[i+1])
		if i > 0 {
			seg = seg[1:]
		}
		path = append(path, seg...)
	}
	return path
}
