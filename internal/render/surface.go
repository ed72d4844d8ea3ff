package render

import (
	"image"

	"cellview/internal/core"
)

// Target receives the committed pixel buffer after every acquire cycle.
type Target interface {
	Flush(pix []byte, w, h int)
}

// Surface owns the output raster: a width*zoom by height*zoom RGBA buffer
// plus optional per-axis wrap moduli for logical draw coordinates. A Surface
// is created once per output and reused across frames; it assumes a single
// writer and is not safe for concurrent use.
type Surface struct {
	w, h   int
	zoom   int
	wrapX  int
	wrapY  int
	pix    []byte
	target Target

	acquired bool
}

// NewSurface allocates a surface for a w by h grid at the given zoom factor.
func NewSurface(w, h, zoom int) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if zoom <= 0 {
		zoom = 1
	}
	return &Surface{w: w, h: h, zoom: zoom, pix: make([]byte, w*zoom*h*zoom*4)}
}

// SetWrap installs per-axis wrap moduli; 0 disables wrapping on that axis.
func (s *Surface) SetWrap(wx, wy int) {
	s.wrapX = wx
	s.wrapY = wy
}

// SetTarget installs the display backend that receives committed frames.
func (s *Surface) SetTarget(t Target) { s.target = t }

// Size reports the logical (unzoomed) dimensions.
func (s *Surface) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Zoom reports the integer zoom factor.
func (s *Surface) Zoom() int { return s.zoom }

// PixelSize reports the device dimensions of the raster.
func (s *Surface) PixelSize() core.Size {
	return core.Size{W: s.w * s.zoom, H: s.h * s.zoom}
}

// Image copies the current raster into a standard RGBA image.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.w*s.zoom, s.h*s.zoom))
	copy(img.Pix, s.pix)
	return img
}

// Acquire runs draw with scoped access to the pixel buffer. The frame is
// committed to the target on every exit path, including when draw returns an
// error. Nested acquisition on the same surface is a caller bug and panics.
func (s *Surface) Acquire(draw func(*Frame) error) error {
	if s.acquired {
		panic("render: nested Surface.Acquire")
	}
	s.acquired = true
	defer func() {
		s.acquired = false
		if s.target != nil {
			s.target.Flush(s.pix, s.w*s.zoom, s.h*s.zoom)
		}
	}()
	return draw(&Frame{s: s})
}

// Frame is the scoped mutable view of a surface's pixel buffer, valid only
// inside the Acquire call that produced it.
type Frame struct {
	s *Surface
}

// Wrap reduces a logical coordinate by the surface's wrap moduli. Axes with
// modulus 0 pass through unchanged.
func (f *Frame) Wrap(c core.Coord) core.Coord {
	if wx := f.s.wrapX; wx != 0 {
		c.X = (c.X%wx + wx) % wx
	}
	if wy := f.s.wrapY; wy != 0 {
		c.Y = (c.Y%wy + wy) % wy
	}
	return c
}

// Clear fills the entire buffer with one color at the given opacity.
func (f *Frame) Clear(col RGB, alpha float64) {
	a := alphaByte(alpha)
	pix := f.s.pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = a
	}
}

// Set writes a zoom by zoom block at the wrapped logical coordinate. The
// alpha channel stores alpha*255 directly: this is an overwrite, not a blend
// against prior buffer content. Coordinates outside the logical extents
// after wrapping are a caller bug and panic on the slice bounds check.
func (f *Frame) Set(c core.Coord, col RGB, alpha float64) {
	c = f.Wrap(c)
	z := f.s.zoom
	a := alphaByte(alpha)
	stride := f.s.w * z * 4
	for dy := 0; dy < z; dy++ {
		i := (c.Y*z+dy)*stride + c.X*z*4
		for dx := 0; dx < z; dx++ {
			f.s.pix[i+0] = col.R
			f.s.pix[i+1] = col.G
			f.s.pix[i+2] = col.B
			f.s.pix[i+3] = a
			i += 4
		}
	}
}

// SetRaw writes a single byte quad at device coordinates, bypassing wrap and
// zoom replication. Out-of-range coordinates panic on the bounds check.
func (f *Frame) SetRaw(x, y int, col RGB, alpha float64) {
	i := (y*f.s.w*f.s.zoom + x) * 4
	f.s.pix[i+0] = col.R
	f.s.pix[i+1] = col.G
	f.s.pix[i+2] = col.B
	f.s.pix[i+3] = alphaByte(alpha)
}

// alphaByte stores alpha*255, clamped so out-of-range normalized values
// cannot wrap around the byte. The renderers themselves never clamp.
func alphaByte(alpha float64) uint8 {
	v := alpha * 255
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
