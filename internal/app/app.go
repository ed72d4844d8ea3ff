//go:build ebiten

package app

import (
	"time"

	"cellview/internal/render"
	"cellview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	clearColor   = render.RGB{R: 12, G: 12, B: 16}
	heatColor    = render.MustHex("2E8B57")
	borderColor  = render.MustHex("FFFFFF")
	contourColor = render.MustHex("FF8030")
)

// Game adapts a render world to the ebiten.Game interface: it steps the
// simulation, composites the selected layers into the surface, and presents
// the committed frame.
type Game struct {
	world   RenderWorld
	surface *render.Surface
	display *render.DisplayTarget
	overlay *ui.Overlay

	paused   bool
	tickOnce bool
	seed     int64
	step     int

	drawErr error
}

// New constructs a Game for the provided world at the given zoom.
func New(world RenderWorld, zoom int, seed int64) *Game {
	size := world.Size()
	surface := render.NewSurface(size.W, size.H, zoom)
	surface.SetWrap(size.W, size.H)
	display := render.NewDisplayTarget(size.W*surface.Zoom(), size.H*surface.Zoom())
	surface.SetTarget(display)
	return &Game{
		world:   world,
		surface: surface,
		display: display,
		overlay: ui.NewOverlay(),
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.step = 0
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if (!g.paused) || g.tickOnce {
		g.world.Step()
		g.step++
		g.tickOnce = false
	}
	return nil
}

// Draw composites the selected layers and presents the frame. Render
// failures are carried into the next Update, which terminates the loop.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.renderLayers(); err != nil && g.drawErr == nil {
		g.drawErr = err
	}
	screen.DrawImage(g.display.Image(), nil)
	g.overlay.Draw(screen, g.overlay.Status(g.world.Name(), g.step))
}

func (g *Game) renderLayers() error {
	layers := g.overlay.Layers()

	err := g.surface.Acquire(func(fb *render.Frame) error {
		fb.Clear(clearColor, 1)
		return nil
	})
	if err != nil {
		return err
	}

	if layers.Heatmap {
		r := render.FieldRenderer{Surface: g.surface}
		if err := r.DrawHeatmap(g.world.Scent(), heatColor); err != nil {
			return err
		}
	}
	if layers.Entities {
		r := render.EntityRenderer{Surface: g.surface, Entities: g.world, Index: g.world}
		if err := r.DrawEntities(-1, render.PerEntity(render.HashColor)); err != nil {
			return err
		}
	}
	if layers.Activity {
		r := render.ActivityRenderer{
			Surface:     g.surface,
			Labels:      g.world.Labels(),
			Entities:    g.world,
			Constraints: g.world.Constraints(),
		}
		if err := r.DrawActivity(-1, nil, nil); err != nil {
			return err
		}
	}
	if layers.Borders {
		r := render.BorderRenderer{Surface: g.surface, Labels: g.world.Labels(), Entities: g.world}
		if err := r.DrawBorders(-1, borderColor); err != nil {
			return err
		}
	}
	if layers.Contours {
		r := render.FieldRenderer{Surface: g.surface}
		if err := r.DrawContours(g.world.Scent(), 10, contourColor); err != nil {
			return err
		}
	}
	return nil
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.surface.PixelSize()
	return size.W, size.H
}
