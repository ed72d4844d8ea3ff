//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Layers selects which render passes the viewer composites each frame.
type Layers struct {
	Heatmap  bool
	Entities bool
	Borders  bool
	Contours bool
	Activity bool
}

// DefaultLayers enables the entity fill and border passes.
func DefaultLayers() Layers { return Layers{Entities: true, Borders: true} }

// Overlay owns the interactive layer toggles and the status line.
type Overlay struct {
	layers Layers
}

// NewOverlay constructs an overlay with the default layer selection.
func NewOverlay() *Overlay { return &Overlay{layers: DefaultLayers()} }

// Layers reports the current selection.
func (o *Overlay) Layers() Layers { return o.layers }

// Update processes the digit-key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.layers.Entities = !o.layers.Entities
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.layers.Borders = !o.layers.Borders
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.layers.Heatmap = !o.layers.Heatmap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.layers.Contours = !o.layers.Contours
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit5) {
		o.layers.Activity = !o.layers.Activity
	}
}

// Status formats the step counter and layer markers for the status line.
func (o *Overlay) Status(name string, step int) string {
	mark := func(on bool) string {
		if on {
			return "+"
		}
		return "-"
	}
	return fmt.Sprintf("%s step %d  1%sfill 2%sborders 3%sheat 4%scontours 5%sactivity",
		name, step,
		mark(o.layers.Entities), mark(o.layers.Borders), mark(o.layers.Heatmap),
		mark(o.layers.Contours), mark(o.layers.Activity))
}

// Draw renders the status line onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	text.Draw(screen, status, basicfont.Face7x13, 6, 16, color.White)
}
