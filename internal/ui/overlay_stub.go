//go:build !ebiten

package ui

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

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Layers reports the default selection in headless builds.
func (o *Overlay) Layers() Layers { return DefaultLayers() }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Status returns an empty status line in headless builds.
func (o *Overlay) Status(string, int) string { return "" }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, string) {}
