package render

import (
	"math"

	"cellview/internal/core"
)

// FieldRenderer draws scalar fields as log-intensity heatmaps and
// approximate isolines.
type FieldRenderer struct {
	Surface *Surface
}

// fieldTransform is the log mapping applied to every raw field value before
// normalization. The 0.1 offset keeps zero-valued cells finite.
func fieldTransform(v float64) float64 { return math.Log(0.1 + v) }

// heatAlpha is the normalized intensity for a transformed value given the
// grid maximum. Values below the transform floor normalize negative; the
// ratio is passed through unclamped and only the byte store saturates.
func heatAlpha(t, maxval float64) float64 { return t / maxval }

// DrawHeatmap renders the field in the given color with per-cell opacity
// proportional to log(0.1+value), normalized so the maximal cell is fully
// opaque. Two passes: the first finds the maximum transformed value, the
// second writes every cell.
func (r FieldRenderer) DrawHeatmap(f Field, col RGB) error {
	size := f.Extents()
	if size.W <= 0 || size.H <= 0 {
		return nil
	}

	maxval := math.Inf(-1)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			t := fieldTransform(f.ValueAt(core.Coord{X: x, Y: y}))
			if t > maxval {
				maxval = t
			}
		}
	}
	if maxval == 0 || math.IsInf(maxval, -1) {
		return nil
	}

	return r.Surface.Acquire(func(fb *Frame) error {
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				c := core.Coord{X: x, Y: y}
				t := fieldTransform(f.ValueAt(c))
				fb.Set(c, col, heatAlpha(t, maxval))
			}
		}
		return nil
	})
}

// DrawContours marks cells lying on approximate isolines of the transformed
// field. The value range [log(0.1), max] is split into nsteps levels; a cell
// marks at a level when its closed 4-neighborhood both comes within
// 0.05*max of the level and straddles it (at least one value strictly
// below, one at or above). This is a neighbor level-crossing test, not
// marching squares; coarse nsteps can under- or over-mark near a crossing
// and that imprecision is kept. Marked cells fade in with the level: alpha
// runs from 0.3 at the floor to 1.0 at the maximum.
func (r FieldRenderer) DrawContours(f Field, nsteps int, col RGB) error {
	size := f.Extents()
	if size.W <= 0 || size.H <= 0 {
		return nil
	}
	if nsteps <= 0 {
		nsteps = 10
	}

	minval := fieldTransform(0)
	maxval := math.Inf(-1)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			t := fieldTransform(f.ValueAt(core.Coord{X: x, Y: y}))
			if t > maxval {
				maxval = t
			}
		}
	}
	span := maxval - minval
	if span <= 0 || math.IsInf(maxval, -1) {
		return nil
	}
	window := 0.05 * maxval

	return r.Surface.Acquire(func(fb *Frame) error {
		for step := 1; step <= nsteps; step++ {
			v := minval + float64(step)*span/float64(nsteps)
			for y := 0; y < size.H; y++ {
				for x := 0; x < size.W; x++ {
					c := core.Coord{X: x, Y: y}
					t := fieldTransform(f.ValueAt(c))
					near := math.Abs(t-v) <= window
					below := t < v
					above := !below
					for _, n := range f.Neighbors4(c) {
						tn := fieldTransform(f.ValueAt(n))
						if !near && math.Abs(tn-v) <= window {
							near = true
						}
						if tn < v {
							below = true
						} else {
							above = true
						}
						if near && below && above {
							break
						}
					}
					if near && below && above {
						fb.Set(c, col, 0.3+0.7*(v-minval)/span)
					}
				}
			}
		}
		return nil
	})
}
