package core

// IntGrid stores a 2D grid of entity labels in row-major order. Label 0 is
// reserved for background. When Torus is set, coordinate lookups wrap on
// both axes; otherwise out-of-range lookups read as background.
type IntGrid struct {
	W, H  int
	Torus bool
	data  []int
}

// NewIntGrid allocates a label grid with the given dimensions.
func NewIntGrid(w, h int, torus bool) *IntGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &IntGrid{W: w, H: h, Torus: torus, data: make([]int, w*h)}
}

// Extents reports the grid dimensions.
func (g *IntGrid) Extents() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *IntGrid) Cells() []int { return g.data }

// Index returns the linear slice index for the coordinate.
func (g *IntGrid) Index(c Coord) int { return c.Y*g.W + c.X }

// CoordAt inverts Index.
func (g *IntGrid) CoordAt(i int) Coord { return Coord{X: i % g.W, Y: i / g.W} }

// Wrap applies toroidal wrapping to the provided coordinate.
func (g *IntGrid) Wrap(c Coord) Coord {
	c.X = (c.X%g.W + g.W) % g.W
	c.Y = (c.Y%g.H + g.H) % g.H
	return c
}

// LabelAt returns the label at the coordinate. On a torus the coordinate is
// wrapped first; on a bounded grid out-of-range coordinates read as 0.
func (g *IntGrid) LabelAt(c Coord) int {
	if g.Torus {
		c = g.Wrap(c)
	} else if c.X < 0 || c.X >= g.W || c.Y < 0 || c.Y >= g.H {
		return 0
	}
	return g.data[g.Index(c)]
}

// Set stores a label at the coordinate, wrapping on a torus.
func (g *IntGrid) Set(c Coord, v int) {
	if g.Torus {
		c = g.Wrap(c)
	}
	g.data[g.Index(c)] = v
}

// Clear fills the grid with background.
func (g *IntGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Neighbors4 returns the von Neumann neighborhood in right, left, down, up
// order. On a bounded grid neighbors outside the extents are omitted.
func (g *IntGrid) Neighbors4(c Coord) []Coord {
	return neighbors4(c, g.W, g.H, g.Torus)
}

// FloatGrid stores a 2D grid of scalar field values in row-major order.
type FloatGrid struct {
	W, H  int
	Torus bool
	data  []float64
}

// NewFloatGrid allocates a field grid with the given dimensions.
func NewFloatGrid(w, h int, torus bool) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, Torus: torus, data: make([]float64, w*h)}
}

// Extents reports the grid dimensions.
func (g *FloatGrid) Extents() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for the coordinate.
func (g *FloatGrid) Index(c Coord) int { return c.Y*g.W + c.X }

// CoordAt inverts Index.
func (g *FloatGrid) CoordAt(i int) Coord { return Coord{X: i % g.W, Y: i / g.W} }

// Wrap applies toroidal wrapping to the provided coordinate.
func (g *FloatGrid) Wrap(c Coord) Coord {
	c.X = (c.X%g.W + g.W) % g.W
	c.Y = (c.Y%g.H + g.H) % g.H
	return c
}

// ValueAt returns the field value at the coordinate. On a torus the
// coordinate is wrapped first; on a bounded grid out-of-range reads are 0.
func (g *FloatGrid) ValueAt(c Coord) float64 {
	if g.Torus {
		c = g.Wrap(c)
	} else if c.X < 0 || c.X >= g.W || c.Y < 0 || c.Y >= g.H {
		return 0
	}
	return g.data[g.Index(c)]
}

// Set stores a field value at the coordinate, wrapping on a torus.
func (g *FloatGrid) Set(c Coord, v float64) {
	if g.Torus {
		c = g.Wrap(c)
	}
	g.data[g.Index(c)] = v
}

// Neighbors4 returns the von Neumann neighborhood in right, left, down, up
// order. On a bounded grid neighbors outside the extents are omitted.
func (g *FloatGrid) Neighbors4(c Coord) []Coord {
	return neighbors4(c, g.W, g.H, g.Torus)
}

var vonNeumann = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func neighbors4(c Coord, w, h int, torus bool) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range vonNeumann {
		n := Coord{X: c.X + d.X, Y: c.Y + d.Y}
		if torus {
			n.X = (n.X%w + w) % w
			n.Y = (n.Y%h + h) % h
		} else if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
			continue
		}
		out = append(out, n)
	}
	return out
}
