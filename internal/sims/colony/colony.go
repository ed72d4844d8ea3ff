package colony

import (
	"cellview/internal/core"
	"cellview/internal/render"
	rnd "cellview/pkg/core"
)

// Entity kinds. Kind 0 is background and never drawn.
const (
	KindBackground = iota
	KindSettler
	KindRover
)

// World is a labeled-entity growth simulation on a toroidal grid. Colonies
// of two kinds claim and release cells by seeded randomness and leak a
// diffusing scent field. It implements every query interface the renderers
// consume: label grid, scalar field, entity source, pixel index, and a
// constraint registry carrying the activity capability.
type World struct {
	cfg Config

	labels    *core.IntGrid
	scent     *core.FloatGrid
	scentNext []float64

	kinds map[int]int
	index *pixelIndex
	act   *ActivityConstraint

	rng *rnd.RNG
}

// New returns a colony world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a colony world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	return &World{
		cfg:       cfg,
		labels:    core.NewIntGrid(cfg.Width, cfg.Height, true),
		scent:     core.NewFloatGrid(cfg.Width, cfg.Height, true),
		scentNext: make([]float64, total),
		kinds:     map[int]int{},
		index:     newPixelIndex(),
		act:       NewActivityConstraint(total, cfg.Params.MaxAct),
		rng:       rnd.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "colony" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.labels.Extents() }

// Labels exposes the entity label grid.
func (w *World) Labels() *core.IntGrid { return w.labels }

// Scent exposes the diffusing scalar field.
func (w *World) Scent() *core.FloatGrid { return w.scent }

// Constraints exposes the ordered constraint registry.
func (w *World) Constraints() []render.Constraint {
	return []render.Constraint{w.act}
}

// KindOf reports the kind of an entity; unknown ids are background.
func (w *World) KindOf(id int) int { return w.kinds[id] }

// Reset rebuilds the initial world using deterministic randomness.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = rnd.NewRNG(effective)

	w.labels.Clear()
	for i := range w.scent.Cells() {
		w.scent.Cells()[i] = 0
		w.scentNext[i] = 0
	}
	w.kinds = map[int]int{}
	w.index.clear()
	w.act.reset()

	p := w.cfg.Params
	size := w.Size()
	for i := 0; i < p.Colonies; i++ {
		id := i + 1
		kind := KindSettler + i%2
		w.kinds[id] = kind

		center := core.Coord{X: w.rng.IntN(size.W), Y: w.rng.IntN(size.H)}
		radius := p.SeedRadiusMin
		if p.SeedRadiusMax > p.SeedRadiusMin {
			radius += w.rng.IntN(p.SeedRadiusMax - p.SeedRadiusMin + 1)
		}
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy > radius*radius {
					continue
				}
				w.claim(id, kind, core.Coord{X: center.X + dx, Y: center.Y + dy})
			}
		}
	}
}

// Step advances the simulation by one tick: colonies grow into adjacent
// background, occasionally retreat, deposit scent, and the scent field
// diffuses while activity decays.
func (w *World) Step() {
	p := w.cfg.Params

	// Snapshot before mutating; growth this tick must not feed on itself.
	// Retreats run after every growth pass so a cell released this tick
	// cannot change owner within the same tick.
	snapshot := w.PixelsByEntity()
	for _, ent := range snapshot {
		kind := w.kinds[ent.ID]
		attempts := len(ent.Coords)/8 + 1
		for i := 0; i < attempts; i++ {
			c := ent.Coords[w.rng.IntN(len(ent.Coords))]
			ns := w.labels.Neighbors4(c)
			n := ns[w.rng.IntN(len(ns))]
			if w.labels.LabelAt(n) == 0 && w.rng.Chance(p.GrowthChance) {
				w.claim(ent.ID, kind, n)
			}
		}
	}
	for _, ent := range snapshot {
		// Live count, not the snapshot: an entity never gives up its
		// last cell, so colonies survive for the life of the run.
		if w.index.count(ent.ID) > 1 && w.rng.Chance(p.RetreatChance) {
			w.release(ent.ID, ent.Coords[w.rng.IntN(len(ent.Coords))])
		}
	}

	w.depositScent(p.ScentDeposit)
	w.diffuseScent(p.ScentDecay)
	w.act.decay()
}

func (w *World) claim(id, kind int, c core.Coord) {
	c = w.labels.Wrap(c)
	if w.labels.LabelAt(c) != 0 {
		return
	}
	w.labels.Set(c, id)
	w.index.add(id, c)
	w.act.bump(w.labels.Index(c), kind)
}

func (w *World) release(id int, c core.Coord) {
	c = w.labels.Wrap(c)
	if w.labels.LabelAt(c) != id {
		return
	}
	w.labels.Set(c, 0)
	w.index.remove(id, c)
}

func (w *World) depositScent(amount float64) {
	if amount <= 0 {
		return
	}
	cells := w.scent.Cells()
	for i, label := range w.labels.Cells() {
		if label != 0 {
			cells[i] += amount
		}
	}
}

func (w *World) diffuseScent(decay float64) {
	size := w.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := core.Coord{X: x, Y: y}
			sum := w.scent.ValueAt(c)
			n := 1
			for _, nc := range w.scent.Neighbors4(c) {
				sum += w.scent.ValueAt(nc)
				n++
			}
			w.scentNext[w.scent.Index(c)] = decay * sum / float64(n)
		}
	}
	copy(w.scent.Cells(), w.scentNext)
}

// EntityPixels lists every occupied cell with its owner, ascending by id.
func (w *World) EntityPixels() []render.CellPixel {
	var out []render.CellPixel
	w.index.each(func(id int, coords []core.Coord) {
		for _, c := range coords {
			out = append(out, render.CellPixel{Coord: c, ID: id})
		}
	})
	return out
}

// BorderPixels lists occupied cells 4-adjacent to a differently labeled
// cell, ascending by id.
func (w *World) BorderPixels() []render.CellPixel {
	var out []render.CellPixel
	w.index.each(func(id int, coords []core.Coord) {
		for _, c := range coords {
			for _, n := range w.labels.Neighbors4(c) {
				if w.labels.LabelAt(n) != id {
					out = append(out, render.CellPixel{Coord: c, ID: id})
					break
				}
			}
		}
	})
	return out
}

// PixelsByEntity snapshots the pixel index, ascending by id. Coordinate
// slices are copied so callers hold a stable view of one tick.
func (w *World) PixelsByEntity() []render.EntityPixels {
	var out []render.EntityPixels
	w.index.each(func(id int, coords []core.Coord) {
		out = append(out, render.EntityPixels{
			ID:     id,
			Coords: append([]core.Coord(nil), coords...),
		})
	})
	return out
}

func init() {
	core.Register("colony", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
