package render

// EntityRenderer fills every pixel owned by each entity.
type EntityRenderer struct {
	Surface  *Surface
	Entities EntitySource
	Index    PixelIndex
}

// DrawEntities fills each matching entity's owned cells at full opacity.
// The pixel index is fetched exactly once per call and treated as a
// snapshot. kind < 0 draws every entity; entities of the background kind
// are expected to be absent from the index rather than filtered here.
// Painting order is whatever order the index yields; owned pixel sets do
// not overlap on a consistent label grid, so order is immaterial.
func (r EntityRenderer) DrawEntities(kind int, p Paint) error {
	byEntity := r.Index.PixelsByEntity()
	return r.Surface.Acquire(func(fb *Frame) error {
		for _, ent := range byEntity {
			if kind >= 0 && r.Entities.KindOf(ent.ID) != kind {
				continue
			}
			col := p.For(ent.ID)
			for _, c := range ent.Coords {
				fb.Set(c, col, 1)
			}
		}
		return nil
	})
}
