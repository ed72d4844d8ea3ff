package render

import (
	"testing"

	"cellview/internal/core"
)

// gridSource derives entity queries straight from a label grid, the way the
// simulation collaborator does.
type gridSource struct {
	grid  *core.IntGrid
	kinds map[int]int
}

func (s gridSource) KindOf(id int) int { return s.kinds[id] }

func (s gridSource) EntityPixels() []CellPixel {
	var out []CellPixel
	size := s.grid.Extents()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := core.Coord{X: x, Y: y}
			if id := s.grid.LabelAt(c); id != 0 {
				out = append(out, CellPixel{Coord: c, ID: id})
			}
		}
	}
	return out
}

func (s gridSource) BorderPixels() []CellPixel {
	var out []CellPixel
	for _, ep := range s.EntityPixels() {
		for _, n := range s.grid.Neighbors4(ep.Coord) {
			if s.grid.LabelAt(n) != ep.ID {
				out = append(out, ep)
				break
			}
		}
	}
	return out
}

// twoBlockWorld builds an 8x6 grid holding two 3x3 entities that share a
// vertical boundary: entity 1 (kind 1) at x 1-3, entity 2 (kind 2) at
// x 4-6, both at y 1-3.
func twoBlockWorld() (*core.IntGrid, gridSource) {
	g := core.NewIntGrid(8, 6, false)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			g.Set(core.Coord{X: x, Y: y}, 1)
		}
		for x := 4; x <= 6; x++ {
			g.Set(core.Coord{X: x, Y: y}, 2)
		}
	}
	return g, gridSource{grid: g, kinds: map[int]int{1: 1, 2: 2}}
}

func TestDrawBordersMatchesLabelBoundaries(t *testing.T) {
	g, src := twoBlockWorld()
	s := NewSurface(8, 6, 1)
	r := BorderRenderer{Surface: s, Labels: g, Entities: src}
	if err := r.DrawBorders(-1, RGB{R: 255, G: 255, B: 255}); err != nil {
		t.Fatalf("DrawBorders: %v", err)
	}

	// At zoom 1 every drawn edge lands on its own cell, so the marked set
	// must be exactly the entity cells adjacent to a different label. The
	// two block centers are interior and stay unmarked, as does all
	// background.
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			c := core.Coord{X: x, Y: y}
			id := g.LabelAt(c)
			want := false
			if id != 0 {
				for _, n := range g.Neighbors4(c) {
					if g.LabelAt(n) != id {
						want = true
						break
					}
				}
			}
			marked := pixelAt(s, x, y)[3] != 0
			if marked != want {
				t.Fatalf("cell (%d,%d) marked=%v, want %v", x, y, marked, want)
			}
		}
	}
}

func TestDrawBordersDoubleThickness(t *testing.T) {
	g, src := twoBlockWorld()
	s := NewSurface(8, 6, 3)
	r := BorderRenderer{Surface: s, Labels: g, Entities: src}
	if err := r.DrawBorders(-1, RGB{R: 255, G: 255, B: 255}); err != nil {
		t.Fatalf("DrawBorders: %v", err)
	}

	// Entity-to-entity boundary between cells (3,1) and (4,1): both sides
	// draw, producing adjacent device columns 11 and 12.
	if pixelAt(s, 11, 4)[3] == 0 {
		t.Fatal("entity 1 side of shared boundary not drawn")
	}
	if pixelAt(s, 12, 4)[3] == 0 {
		t.Fatal("entity 2 side of shared boundary not drawn")
	}

	// Background boundary at the left of cell (1,1): only the foreground
	// side draws. Device column 3 belongs to the entity cell, column 2 to
	// the background cell.
	if pixelAt(s, 3, 4)[3] == 0 {
		t.Fatal("foreground side of background boundary not drawn")
	}
	if pixelAt(s, 2, 4)[3] != 0 {
		t.Fatal("background side of boundary must stay empty")
	}
}

func TestDrawBordersKindFilter(t *testing.T) {
	g, src := twoBlockWorld()
	s := NewSurface(8, 6, 1)
	r := BorderRenderer{Surface: s, Labels: g, Entities: src}
	if err := r.DrawBorders(1, RGB{R: 255, G: 255, B: 255}); err != nil {
		t.Fatalf("DrawBorders: %v", err)
	}

	if pixelAt(s, 1, 1)[3] == 0 {
		t.Fatal("kind 1 border cell not drawn")
	}
	for y := 1; y <= 3; y++ {
		for x := 4; x <= 6; x++ {
			if pixelAt(s, x, y)[3] != 0 {
				t.Fatalf("kind 2 cell (%d,%d) drawn despite filter", x, y)
			}
		}
	}
}

func TestDrawBorderPixelsPerEntity(t *testing.T) {
	g, src := twoBlockWorld()
	s := NewSurface(8, 6, 1)
	r := BorderRenderer{Surface: s, Labels: g, Entities: src}

	paint := PerEntity(func(id int) RGB { return RGB{R: uint8(100 * id)} })
	if err := r.DrawBorderPixels(-1, paint); err != nil {
		t.Fatalf("DrawBorderPixels: %v", err)
	}

	if got := pixelAt(s, 1, 1); got != [4]byte{100, 0, 0, 255} {
		t.Fatalf("entity 1 border cell = %v", got)
	}
	if got := pixelAt(s, 4, 1); got != [4]byte{200, 0, 0, 255} {
		t.Fatalf("entity 2 border cell = %v", got)
	}
	if got := pixelAt(s, 2, 2); got[3] != 0 {
		t.Fatalf("interior cell colored: %v", got)
	}
}
