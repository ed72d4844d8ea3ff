package render

import "cellview/internal/core"

// Field exposes a scalar-valued grid to the heatmap and contour passes.
type Field interface {
	Extents() core.Size
	ValueAt(core.Coord) float64
	Neighbors4(core.Coord) []core.Coord
}

// LabelGrid exposes an entity-labeled grid. Label 0 is background.
type LabelGrid interface {
	Extents() core.Size
	LabelAt(core.Coord) int
	Index(core.Coord) int
}

// CellPixel pairs a grid coordinate with the entity occupying it.
type CellPixel struct {
	Coord core.Coord
	ID    int
}

// EntitySource answers entity queries for one draw call. The returned
// slices are treated as immutable snapshots; mutating the underlying grid
// while a draw call runs is undefined.
type EntitySource interface {
	// KindOf reports the rendering category of an entity. Kind 0 is
	// background and conventionally excluded by the source, not here.
	KindOf(id int) int
	// EntityPixels lists every occupied cell with its owner.
	EntityPixels() []CellPixel
	// BorderPixels lists cells 4-adjacent to a differently labeled cell.
	BorderPixels() []CellPixel
}

// EntityPixels groups the cells owned by one entity.
type EntityPixels struct {
	ID     int
	Coords []core.Coord
}

// PixelIndex maps entity ids to their owned cells, fetched fresh at the
// start of each fill call and discarded afterwards.
type PixelIndex interface {
	PixelsByEntity() []EntityPixels
}

// Constraint is a pluggable simulation rule attached to a world. The
// renderer only cares about which capabilities a constraint declares.
type Constraint interface {
	Name() string
}

// ActivityProvider is the capability a constraint declares when it tracks
// per-pixel activity values.
type ActivityProvider interface {
	Constraint
	// Pxact returns the raw activity at a linear pixel index.
	Pxact(index int) float64
	// MaxAct returns the activity ceiling configured for a kind; kinds with
	// a non-positive ceiling are not drawn.
	MaxAct(kind int) float64
}

// FirstActivityProvider returns the first constraint declaring the activity
// capability, preserving registry order.
func FirstActivityProvider(cs []Constraint) (ActivityProvider, bool) {
	for _, c := range cs {
		if p, ok := c.(ActivityProvider); ok {
			return p, true
		}
	}
	return nil, false
}
