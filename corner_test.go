package gridplate

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/csg"
	"github.com/gridfab/gridplate/internal/d3"
)

func TestCornerTrimFill(t *testing.T) {
	c := DefaultConstants()
	piece, ok := c.cornerTrim(5, false).(csg.Extrude)
	if !ok {
		t.Fatal("fill piece is not a plain extrusion")
	}
	if piece.Height != 5 {
		t.Errorf("fill height %g, want 5", piece.Height)
	}
	outline, ok := piece.Profile.(csg.Difference2)
	if !ok {
		t.Fatalf("fill profile is %T, want csg.Difference2", piece.Profile)
	}
	rect, ok := outline.A.(csg.Rect)
	if !ok || rect.Size != (r2.Vec{X: c.OutsideRadius, Y: c.OutsideRadius}) {
		t.Errorf("fill square is %v, want %g sided rect", outline.A, c.OutsideRadius)
	}
	circle, ok := outline.B.(csg.Circle)
	if !ok || circle.Radius != c.OutsideRadius {
		t.Errorf("fill arc is %v, want circle of radius %g", outline.B, c.OutsideRadius)
	}
}

func TestCornerTrimSubtractOversizes(t *testing.T) {
	c := DefaultConstants()
	tr, ok := c.cornerTrim(5, true).(csg.Transformed)
	if !ok {
		t.Fatal("cutter piece is not shifted")
	}
	if got := tr.T.MulPosition(r3.Vec{}); !d3.EqualWithin(got, r3.Vec{Z: -c.Tolerance}, 0) {
		t.Errorf("cutter starts at %v, want z=-%g", got, c.Tolerance)
	}
	piece := tr.Solid.(csg.Extrude)
	if piece.Height != 5+2*c.Tolerance {
		t.Errorf("cutter height %g, want %g", piece.Height, 5+2*c.Tolerance)
	}
	outline := piece.Profile.(csg.Difference2)
	if rect := outline.A.(csg.Rect); rect.Size.X != c.OutsideRadius+c.Tolerance {
		t.Errorf("cutter square side %g, want %g", rect.Size.X, c.OutsideRadius+c.Tolerance)
	}
	if circle := outline.B.(csg.Circle); circle.Radius != c.OutsideRadius-c.Tolerance {
		t.Errorf("cutter arc radius %g, want %g", circle.Radius, c.OutsideRadius-c.Tolerance)
	}
}

func TestQuadrantRotation(t *testing.T) {
	cases := []struct {
		sx, sy, want float64
	}{
		{1, 1, 0},
		{-1, 1, 90},
		{-1, -1, 180},
		{1, -1, 270},
	}
	for _, c := range cases {
		if got := quadrantRotation(c.sx, c.sy); got != c.want {
			t.Errorf("quadrantRotation(%g, %g) = %g, want %g", c.sx, c.sy, got, c.want)
		}
	}
}

func TestSign01(t *testing.T) {
	if sign01(-0.5) != -1 || sign01(2) != 1 || sign01(0) != 1 {
		t.Error("sign01 does not treat zero as positive")
	}
}
