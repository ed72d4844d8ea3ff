package app

import (
	"cellview/internal/core"
	"cellview/internal/render"
)

// RenderWorld couples the Sim contract with the query surfaces the
// renderers consume.
type RenderWorld interface {
	core.Sim
	render.EntitySource
	render.PixelIndex
	Labels() *core.IntGrid
	Scent() *core.FloatGrid
	Constraints() []render.Constraint
}
