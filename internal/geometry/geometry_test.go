package geometry

import (
	"math"
	"testing"
)

func TestLinePointsVertical(t *testing.T) {
	points := LinePoints(5, 5, 5, 15)
	if len(points) != 11 {
		t.Fatalf("expected 11 points, got %d", len(points))
	}
	for i, p := range points {
		if p.X != 5 || p.Y != 5+i {
			t.Errorf("point %d = %v, want (5,%d)", i, p, 5+i)
		}
	}
}

func TestLinePointsEndpointsAndAdjacency(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 int
	}{
		{0, 0, 10, 3},
		{10, 3, 0, 0},
		{-4, 7, 6, -2},
		{3, 3, 3, 3},
		{0, 0, 5, 5},
	}

	for _, tt := range tests {
		points := LinePoints(tt.x1, tt.y1, tt.x2, tt.y2)
		first, last := points[0], points[len(points)-1]
		if first != (Point{tt.x1, tt.y1}) || last != (Point{tt.x2, tt.y2}) {
			t.Errorf("LinePoints(%v) endpoints = %v..%v", tt, first, last)
		}
		for i := 1; i < len(points); i++ {
			dx := abs(points[i].X - points[i-1].X)
			dy := abs(points[i].Y - points[i-1].Y)
			if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Errorf("LinePoints(%v) step %d not 8-adjacent: %v -> %v", tt, i, points[i-1], points[i])
			}
		}
	}
}

func TestRectIntersection(t *testing.T) {
	r, ok := RectIntersection(Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10})
	if !ok || r != (Rect{5, 5, 5, 5}) {
		t.Errorf("RectIntersection = %v, %v", r, ok)
	}
	if _, ok := RectIntersection(Rect{0, 0, 5, 5}, Rect{5, 0, 5, 5}); ok {
		t.Error("touching rectangles should not intersect")
	}
	if RectsOverlap(Rect{0, 0, 5, 5}, Rect{5, 0, 5, 5}) {
		t.Error("touching rectangles should not overlap")
	}
	if !RectsOverlap(Rect{0, 0, 5, 5}, Rect{4, 4, 5, 5}) {
		t.Error("overlapping rectangles reported disjoint")
	}
}

func TestContainment(t *testing.T) {
	if !PointInRect(0, 0, Rect{0, 0, 1, 1}) || PointInRect(1, 0, Rect{0, 0, 1, 1}) {
		t.Error("PointInRect edge handling wrong")
	}
	if !PointInCircle(3, 4, 0, 0, 5) || PointInCircle(4, 4, 0, 0, 5) {
		t.Error("PointInCircle wrong")
	}
	if !CirclesOverlap(0, 0, 2, 4, 0, 2) || CirclesOverlap(0, 0, 1, 4, 0, 1) {
		t.Error("CirclesOverlap wrong")
	}
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestFilledCirclePoints(t *testing.T) {
	points := FilledCirclePoints(10, 10, 3)
	for _, p := range points {
		dx, dy := p.X-10, p.Y-10
		if dx*dx+dy*dy > 9 {
			t.Errorf("point %v outside radius", p)
		}
	}
	// 29 lattice points satisfy x^2 + y^2 <= 9.
	if len(points) != 29 {
		t.Errorf("expected 29 points, got %d", len(points))
	}
}

func TestCirclePointsOnRing(t *testing.T) {
	for _, p := range CirclePoints(0, 0, 6) {
		d := math.Hypot(float64(p.X), float64(p.Y))
		if math.Abs(d-6) > 1.5 {
			t.Errorf("outline point %v is %.2f from center", p, d)
		}
	}
}

func TestPointInPolygonConcave(t *testing.T) {
	// U shape opening upward.
	u := []Vec{{0, 0}, {1, 0}, {1, 2}, {2, 2}, {2, 0}, {3, 0}, {3, 3}, {0, 3}}
	if !PointInPolygon(Vec{0.5, 1}, u) {
		t.Error("left arm should be inside")
	}
	if PointInPolygon(Vec{1.5, 1}, u) {
		t.Error("notch should be outside")
	}
	if !PointInPolygon(Vec{1.5, 2.5}, u) {
		t.Error("base should be inside")
	}

	// Reversed winding gives the same answer.
	rev := make([]Vec, len(u))
	for i := range u {
		rev[i] = u[len(u)-1-i]
	}
	if PointInPolygon(Vec{1.5, 1}, rev) || !PointInPolygon(Vec{0.5, 1}, rev) {
		t.Error("winding changed containment")
	}
}

func TestPolygonAndBounds(t *testing.T) {
	square := Polygon(Vec{0, 0}, 1, 4, 0)
	if len(square) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(square))
	}
	lo, hi := Bounds(square)
	if math.Abs(lo.X+1) > 1e-9 || math.Abs(hi.X-1) > 1e-9 || math.Abs(lo.Y+1) > 1e-9 || math.Abs(hi.Y-1) > 1e-9 {
		t.Errorf("Bounds = %v %v", lo, hi)
	}
}
