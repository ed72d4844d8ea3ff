package render

import (
	"math"
	"testing"

	"cellview/internal/core"
)

func TestHeatAlphaFormula(t *testing.T) {
	// A grid holding raw values 0 and 10 normalizes against max = log(10.1):
	// the max cell lands exactly at 1 and the zero cell at the literal
	// ratio log(0.1)/log(10.1), which is negative and passed through
	// unclamped.
	maxval := math.Log(10.1)
	if got := heatAlpha(fieldTransform(10), maxval); got != 1 {
		t.Fatalf("alpha of max cell = %v, want 1", got)
	}
	want := math.Log(0.1) / math.Log(10.1)
	if got := heatAlpha(fieldTransform(0), maxval); got != want {
		t.Fatalf("alpha of zero cell = %v, want %v", got, want)
	}
	if want >= 0 {
		t.Fatalf("zero-cell alpha %v should be negative", want)
	}
}

func TestDrawHeatmapExtremes(t *testing.T) {
	g := core.NewFloatGrid(2, 1, false)
	g.Set(core.Coord{X: 0, Y: 0}, 0)
	g.Set(core.Coord{X: 1, Y: 0}, 10)

	s := NewSurface(2, 1, 1)
	r := FieldRenderer{Surface: s}
	if err := r.DrawHeatmap(g, RGB{R: 255}); err != nil {
		t.Fatalf("DrawHeatmap: %v", err)
	}

	if got := pixelAt(s, 1, 0); got != [4]byte{255, 0, 0, 255} {
		t.Fatalf("max cell = %v, want fully opaque red", got)
	}
	// The zero cell's negative normalized alpha saturates to 0 at the byte
	// store; the color channels are still written.
	if got := pixelAt(s, 0, 0); got != [4]byte{255, 0, 0, 0} {
		t.Fatalf("zero cell = %v, want red at alpha 0", got)
	}
}

func TestDrawContoursStepField(t *testing.T) {
	g := core.NewFloatGrid(10, 1, false)
	for x := 0; x < 10; x++ {
		if x >= 5 {
			g.Set(core.Coord{X: x, Y: 0}, 100)
		}
	}

	s := NewSurface(10, 1, 1)
	r := FieldRenderer{Surface: s}
	if err := r.DrawContours(g, 1, RGB{B: 255}); err != nil {
		t.Fatalf("DrawContours: %v", err)
	}

	for x := 0; x < 10; x++ {
		marked := pixelAt(s, x, 0)[3] != 0
		want := x == 4 || x == 5
		if marked != want {
			t.Fatalf("cell x=%d marked=%v, want %v", x, marked, want)
		}
	}
	// nsteps=1 has its single level at the maximum, so the crossing draws
	// at the top of the alpha ramp.
	if got := pixelAt(s, 5, 0); got != [4]byte{0, 0, 255, 255} {
		t.Fatalf("contour pixel = %v, want opaque blue", got)
	}
}

func TestDrawContoursPeakSelfStraddle(t *testing.T) {
	// One cell sits just above an interior level while every neighbor is
	// far below it. The cell's own value supplies the at-or-above side of
	// the straddle, so the peak marks without any neighbor at the level.
	g := core.NewFloatGrid(7, 1, false)
	g.Set(core.Coord{X: 3, Y: 0}, 3.57)
	g.Set(core.Coord{X: 6, Y: 0}, 100)

	s := NewSurface(7, 1, 1)
	r := FieldRenderer{Surface: s}
	if err := r.DrawContours(g, 10, RGB{G: 255}); err != nil {
		t.Fatalf("DrawContours: %v", err)
	}

	if pixelAt(s, 3, 0)[3] == 0 {
		t.Fatal("peak cell not marked")
	}
	// Cells with no value near any level stay clear.
	for _, x := range []int{0, 1} {
		if pixelAt(s, x, 0)[3] != 0 {
			t.Fatalf("background cell x=%d marked", x)
		}
	}
}

func TestDrawContoursFlatField(t *testing.T) {
	g := core.NewFloatGrid(4, 4, false)
	for i := range g.Cells() {
		g.Cells()[i] = 3.5
	}

	s := NewSurface(4, 4, 1)
	r := FieldRenderer{Surface: s}
	if err := r.DrawContours(g, 10, RGB{R: 255}); err != nil {
		t.Fatalf("DrawContours: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pixelAt(s, x, y); got != [4]byte{} {
				t.Fatalf("flat field wrote pixel (%d,%d) = %v", x, y, got)
			}
		}
	}
}
