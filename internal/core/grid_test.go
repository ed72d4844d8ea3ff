package core

import "testing"

func TestIntGridWrap(t *testing.T) {
	g := NewIntGrid(10, 6, true)
	cases := []struct {
		in   Coord
		want Coord
	}{
		{Coord{X: 10, Y: 0}, Coord{X: 0, Y: 0}},
		{Coord{X: -1, Y: -1}, Coord{X: 9, Y: 5}},
		{Coord{X: 23, Y: 13}, Coord{X: 3, Y: 1}},
	}
	for _, tc := range cases {
		if got := g.Wrap(tc.in); got != tc.want {
			t.Fatalf("Wrap(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestIndexRoundtrip(t *testing.T) {
	g := NewIntGrid(7, 4, false)
	c := Coord{X: 3, Y: 2}
	if got := g.CoordAt(g.Index(c)); got != c {
		t.Fatalf("CoordAt(Index(%+v)) = %+v", c, got)
	}
}

func TestNeighbors4Order(t *testing.T) {
	g := NewIntGrid(5, 5, true)
	got := g.Neighbors4(Coord{X: 2, Y: 2})
	want := []Coord{{X: 3, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 1}}
	if len(got) != 4 {
		t.Fatalf("neighbor count = %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbor %d = %+v, want %+v (right, left, down, up)", i, got[i], want[i])
		}
	}
}

func TestNeighbors4TorusWraps(t *testing.T) {
	g := NewIntGrid(5, 5, true)
	got := g.Neighbors4(Coord{X: 0, Y: 0})
	want := []Coord{{X: 1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 4}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("torus neighbor %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNeighbors4BoundedOmits(t *testing.T) {
	g := NewIntGrid(5, 5, false)
	got := g.Neighbors4(Coord{X: 0, Y: 0})
	if len(got) != 2 {
		t.Fatalf("corner neighbor count = %d, want 2", len(got))
	}
}

func TestLabelAtOutOfRange(t *testing.T) {
	g := NewIntGrid(3, 3, false)
	g.Set(Coord{X: 0, Y: 0}, 5)
	if got := g.LabelAt(Coord{X: -1, Y: 0}); got != 0 {
		t.Fatalf("out-of-range label = %d, want background", got)
	}

	torus := NewIntGrid(3, 3, true)
	torus.Set(Coord{X: 0, Y: 0}, 5)
	if got := torus.LabelAt(Coord{X: 3, Y: 3}); got != 5 {
		t.Fatalf("torus label = %d, want 5", got)
	}
}

func TestFloatGridValues(t *testing.T) {
	g := NewFloatGrid(4, 4, true)
	g.Set(Coord{X: 1, Y: 2}, 3.25)
	if got := g.ValueAt(Coord{X: 5, Y: 6}); got != 3.25 {
		t.Fatalf("wrapped value = %v, want 3.25", got)
	}
}
