package grid

import (
	"testing"

	"github.com/samdwyer/dungeongen/internal/geometry"
)

func TestGetSetBounds(t *testing.T) {
	g := New(10, 5, 0)

	if !g.Set(9, 4, 7) {
		t.Fatal("Set inside bounds failed")
	}
	if v, ok := g.Get(9, 4); !ok || v != 7 {
		t.Errorf("Get(9,4) = %d, %v", v, ok)
	}
	if g.Set(10, 0, 1) || g.Set(0, 5, 1) || g.Set(-1, 0, 1) {
		t.Error("Set out of bounds should fail")
	}
	if _, ok := g.Get(-1, 2); ok {
		t.Error("Get out of bounds should report absent")
	}
	if g.At(100, 100) != 0 {
		t.Error("At out of bounds should return default")
	}
}

func TestFillRectClips(t *testing.T) {
	g := New(5, 5, '.')
	g.FillRect(-3, 3, 1, 10, '#')

	count := len(g.FindAll(func(v rune, x, y int) bool { return v == '#' }))
	if count != 4 {
		t.Errorf("expected 4 filled cells, got %d", count)
	}
	if g.At(0, 3) != '#' || g.At(1, 4) != '#' || g.At(2, 3) != '.' {
		t.Error("FillRect filled the wrong cells")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(3, 3, false)
	c := g.Clone()
	c.Set(1, 1, true)

	if g.At(1, 1) {
		t.Error("mutating clone changed original")
	}
	if !c.At(1, 1) {
		t.Error("clone lost its own write")
	}
}

func TestMapAndRows(t *testing.T) {
	g := New(3, 2, 1)
	g.Set(2, 1, 5)
	doubled := Map(g, func(v, x, y int) int { return v * 2 })

	rows := doubled.Rows()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("Rows shape = %dx%d", len(rows), len(rows[0]))
	}
	if rows[1][2] != 10 || rows[0][0] != 2 {
		t.Errorf("Map produced %v", rows)
	}
}

func TestNeighbors(t *testing.T) {
	g := New(3, 3, 0)

	tests := []struct {
		x, y     int
		diagonal bool
		want     int
	}{
		{1, 1, false, 4},
		{1, 1, true, 8},
		{0, 0, false, 2},
		{0, 0, true, 3},
		{2, 1, true, 5},
	}

	for _, tt := range tests {
		if got := len(g.Neighbors(tt.x, tt.y, tt.diagonal)); got != tt.want {
			t.Errorf("Neighbors(%d,%d,%v) = %d, want %d", tt.x, tt.y, tt.diagonal, got, tt.want)
		}
	}
}

func TestFindAllOrder(t *testing.T) {
	g := New(4, 4, 0)
	g.Set(3, 0, 1)
	g.Set(0, 2, 1)

	got := g.FindAll(func(v, x, y int) bool { return v == 1 })
	want := []geometry.Point{{X: 3, Y: 0}, {X: 0, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("FindAll = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindAll[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
