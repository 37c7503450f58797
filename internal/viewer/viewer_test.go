package viewer

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongen/internal/generator"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/ui"
)

type fakeDisplay struct {
	w, h   int
	shows  int
	syncs  int
	events []tcell.Event
}

func (d *fakeDisplay) SetContent(int, int, rune, tcell.Style) {}

func (d *fakeDisplay) Size() (int, int) { return d.w, d.h }

func (d *fakeDisplay) Clear() {}

func (d *fakeDisplay) Show() { d.shows++ }

func (d *fakeDisplay) Sync() { d.syncs++ }

func (d *fakeDisplay) PollEvent() tcell.Event {
	if len(d.events) == 0 {
		return nil
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev
}

func newTestViewer(t *testing.T) (*Viewer, *fakeDisplay) {
	t.Helper()
	p := generator.DefaultParams()
	p.Seed = rng.NumberSeed(31337)

	display := &fakeDisplay{w: 20, h: 12}
	v := NewWithDisplay(display, p)
	if err := v.regenerate(context.Background(), p.Seed); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	return v, display
}

func TestScrollClamps(t *testing.T) {
	v, _ := newTestViewer(t)
	ctx := context.Background()

	_ = v.handleKey(ctx, tcell.KeyLeft, 0)
	_ = v.handleKey(ctx, tcell.KeyUp, 0)
	if v.view.X != 0 || v.view.Y != 0 {
		t.Fatalf("scrolled past the top-left: %+v", v.view)
	}

	for i := 0; i < 100; i++ {
		_ = v.handleKey(ctx, tcell.KeyRight, 0)
		_ = v.handleKey(ctx, tcell.KeyDown, 0)
	}
	// 50x50 map on a 20x12 canvas with two status rows.
	if v.view.X != 30 || v.view.Y != 40 {
		t.Errorf("view = %+v, want {30 40}", v.view)
	}
}

func TestLegendToggle(t *testing.T) {
	v, _ := newTestViewer(t)
	ctx := context.Background()

	_ = v.handleKey(ctx, tcell.KeyRune, 'l')
	if v.mode != ModeLegend {
		t.Fatalf("mode = %s, want legend", v.mode)
	}
	_ = v.handleKey(ctx, tcell.KeyRune, 'L')
	if v.mode != ModeMap {
		t.Fatalf("mode = %s, want map", v.mode)
	}
}

func TestReroll(t *testing.T) {
	v, _ := newTestViewer(t)
	first := v.Dungeon().Seed

	if err := v.handleKey(context.Background(), tcell.KeyRune, 'r'); err != nil {
		t.Fatalf("reroll: %v", err)
	}
	if v.Dungeon().Seed == first {
		t.Error("reroll kept the same seed")
	}
	if v.Dungeon().Seed.IsZero() {
		t.Error("rerolled dungeon has no recorded seed")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"Q", tcell.KeyRune, 'Q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestViewer(t)
			_ = v.handleKey(context.Background(), tt.key, tt.ch)
			if v.running {
				t.Error("viewer still running")
			}
		})
	}
}

func TestDrawAndResize(t *testing.T) {
	v, display := newTestViewer(t)
	v.mode = ModeLegend
	v.draw()
	if display.shows != 1 {
		t.Errorf("draw showed %d times, want 1", display.shows)
	}

	_ = v.handleEvent(context.Background(), tcell.NewEventResize(40, 20))
	if display.syncs != 1 {
		t.Errorf("resize synced %d times, want 1", display.syncs)
	}
}

func TestModeString(t *testing.T) {
	if ModeMap.String() != "map" || ModeLegend.String() != "legend" || Mode(9).String() != "unknown" {
		t.Error("unexpected mode names")
	}
}

func TestHintDescribesCenteredRoom(t *testing.T) {
	v, display := newTestViewer(t)
	room := v.Dungeon().Rooms[0]

	// Scroll so the room center sits in the middle of the map area.
	rows := display.h - 2
	v.view = ui.Viewport{X: room.Center.X - display.w/2, Y: room.Center.Y - rows/2}
	if !room.Contains(room.Center.X, room.Center.Y) {
		t.Skip("room center is not a floor cell of this shape")
	}
	if got := v.hint(display.w, display.h); !strings.Contains(got, room.Description) {
		t.Errorf("hint = %q, want the description of room %d", got, room.ID)
	}

	v.view = ui.Viewport{}
	if v.Dungeon().RoomAt(display.w/2, rows/2) == nil && v.hint(display.w, display.h) != keyHelp {
		t.Error("hint should list keys away from rooms")
	}
}
