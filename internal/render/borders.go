package render

import "cellview/internal/core"

// BorderRenderer traces entity boundaries on a label grid.
type BorderRenderer struct {
	Surface  *Surface
	Labels   LabelGrid
	Entities EntitySource
}

// DrawBorders draws a unit-width, zoom-scaled segment along every cell side
// whose 4-neighbor carries a different label. Both sides of an
// entity-to-entity boundary draw their own edge, so two adjacent entities
// produce a double-thickness line; a boundary against background draws only
// from the foreground side. kind < 0 draws all entities, otherwise only
// entities of that kind.
func (r BorderRenderer) DrawBorders(kind int, col RGB) error {
	pixels := r.Entities.BorderPixels()
	z := r.Surface.Zoom()
	return r.Surface.Acquire(func(fb *Frame) error {
		for _, bp := range pixels {
			if kind >= 0 && r.Entities.KindOf(bp.ID) != kind {
				continue
			}
			c := fb.Wrap(bp.Coord)
			label := r.Labels.LabelAt(c)
			x0 := c.X * z
			y0 := c.Y * z
			// right, left, down, up
			if r.Labels.LabelAt(core.Coord{X: c.X + 1, Y: c.Y}) != label {
				for k := 0; k < z; k++ {
					fb.SetRaw(x0+z-1, y0+k, col, 1)
				}
			}
			if r.Labels.LabelAt(core.Coord{X: c.X - 1, Y: c.Y}) != label {
				for k := 0; k < z; k++ {
					fb.SetRaw(x0, y0+k, col, 1)
				}
			}
			if r.Labels.LabelAt(core.Coord{X: c.X, Y: c.Y + 1}) != label {
				for k := 0; k < z; k++ {
					fb.SetRaw(x0+k, y0+z-1, col, 1)
				}
			}
			if r.Labels.LabelAt(core.Coord{X: c.X, Y: c.Y - 1}) != label {
				for k := 0; k < z; k++ {
					fb.SetRaw(x0+k, y0, col, 1)
				}
			}
		}
		return nil
	})
}

// DrawBorderPixels fills the border cells themselves instead of tracing
// their edges. The paint may derive the color per entity id.
func (r BorderRenderer) DrawBorderPixels(kind int, p Paint) error {
	pixels := r.Entities.BorderPixels()
	return r.Surface.Acquire(func(fb *Frame) error {
		for _, bp := range pixels {
			if kind >= 0 && r.Entities.KindOf(bp.ID) != kind {
				continue
			}
			fb.Set(bp.Coord, p.For(bp.ID), 1)
		}
		return nil
	})
}
