// Package viewer is an interactive terminal browser for generated dungeons.
package viewer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/generator"
	"github.com/samdwyer/dungeongen/internal/rng"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/ui"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Display is the terminal the viewer draws to.
type Display interface {
	ui.Canvas
	Clear()
	Show()
	Sync()
	PollEvent() tcell.Event
}

// Viewer holds the current dungeon and scroll position.
type Viewer struct {
	display  Display
	renderer *ui.Renderer
	params   generator.Params
	dungeon  *world.Dungeon
	view     ui.Viewport
	mode     Mode
	running  bool
}

// New creates a viewer that will generate from params on a real terminal.
// The returned close function restores the terminal.
func New(params generator.Params) (*Viewer, func(), error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithDisplay(screen, params), screen.Close, nil
}

// NewWithDisplay creates a viewer drawing to display.
func NewWithDisplay(display Display, params generator.Params) *Viewer {
	return &Viewer{
		display:  display,
		renderer: ui.NewRenderer(display, gamedata.DefaultPalette()),
		params:   params,
		mode:     ModeMap,
		running:  true,
	}
}

// Dungeon returns the dungeon on screen.
func (v *Viewer) Dungeon() *world.Dungeon { return v.dungeon }

// Run generates the first dungeon and processes input until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")

	ctx, initSpan := tracer.Start(ctx, "viewer.init")
	err := v.regenerate(ctx, v.params.Seed)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.SetStatus(codes.Error, err.Error())
	}
	initSpan.End()
	if err != nil {
		return err
	}

	for v.running {
		v.draw()
		if err := v.handleEvent(ctx, v.display.PollEvent()); err != nil {
			return err
		}
	}
	return nil
}

// regenerate replaces the dungeon with one built from seed. An absent seed
// rolls a fresh one.
func (v *Viewer) regenerate(ctx context.Context, seed rng.Seed) error {
	p := v.params
	p.Seed = seed

	d, err := generator.New(p).Generate(ctx)
	if err != nil {
		return err
	}
	v.dungeon = d
	v.view = ui.Viewport{}

	log.FromContext(ctx).Debug("showing dungeon", "seed", d.Seed, "rooms", len(d.Rooms))
	return nil
}

func (v *Viewer) draw() {
	v.display.Clear()
	width, height := v.display.Size()
	v.view = v.view.Clamp(v.dungeon, width, height)

	v.renderer.Render(v.dungeon, v.view)
	if v.mode == ModeLegend {
		v.renderer.RenderLegend(ui.Legend(v.dungeon))
	}
	v.renderer.RenderMessage(v.status(), height-ui.StatusRows)
	v.renderer.RenderMessage(v.hint(width, height), height-1)
	v.display.Show()
}

// hint describes the room at the middle of the screen, or lists the keys
// when there is none.
func (v *Viewer) hint(width, height int) string {
	x := v.view.X + width/2
	y := v.view.Y + (height-ui.StatusRows)/2
	if room := v.dungeon.RoomAt(x, y); room != nil {
		return fmt.Sprintf("room %d (%s): %s", room.ID, room.Shape, room.Description)
	}
	return keyHelp
}

const keyHelp = "arrows scroll  r reroll  l legend  q quit"

func (v *Viewer) status() string {
	d := v.dungeon
	return fmt.Sprintf("seed %s  %dx%d  rooms %d  corridors %d  features %d  theme %s",
		d.Seed, d.Width, d.Height, len(d.Rooms), len(d.Corridors), len(d.Features), d.Theme)
}

// handleEvent processes a single input event.
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.display.Sync()
	}
	return nil
}

func (v *Viewer) handleKey(ctx context.Context, key tcell.Key, ch rune) error {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			v.running = false
		case 'l', 'L':
			if v.mode == ModeLegend {
				v.mode = ModeMap
			} else {
				v.mode = ModeLegend
			}
		case 'r', 'R':
			return v.reroll(ctx)
		}
	}
	return nil
}

func (v *Viewer) scroll(dx, dy int) {
	width, height := v.display.Size()
	v.view = ui.Viewport{X: v.view.X + dx, Y: v.view.Y + dy}.Clamp(v.dungeon, width, height)
}

func (v *Viewer) reroll(ctx context.Context) error {
	ctx, span := telemetry.Tracer("viewer").Start(ctx, "viewer.reroll")
	defer span.End()

	if err := v.regenerate(ctx, rng.Seed{}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.String("dungeon.seed", v.dungeon.Seed.String()))
	return nil
}
