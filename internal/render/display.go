//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// DisplayTarget uploads committed frames into an ebiten image for on-screen
// presentation.
type DisplayTarget struct {
	img *ebiten.Image
}

// NewDisplayTarget allocates a display target for a device-sized raster.
func NewDisplayTarget(w, h int) *DisplayTarget {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &DisplayTarget{img: ebiten.NewImage(w, h)}
}

// Flush receives a committed pixel buffer and uploads it.
func (t *DisplayTarget) Flush(pix []byte, w, h int) {
	if t.img.Bounds().Dx() != w || t.img.Bounds().Dy() != h {
		t.img = ebiten.NewImage(w, h)
	}
	t.img.ReplacePixels(pix)
}

// Image exposes the uploaded frame for drawing onto the screen.
func (t *DisplayTarget) Image() *ebiten.Image { return t.img }
