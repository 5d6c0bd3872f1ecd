package gridplate

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridfab/gridplate/csg"
	"github.com/gridfab/gridplate/internal/d3"
)

var sweepProfile = []r2.Vec{
	{X: 0, Y: 0},
	{X: 2, Y: 0},
	{X: 2, Y: 3},
	{X: 0, Y: 3},
}

// clockwise square path, 34mm side.
func squarePath(half float64) []r3.Vec {
	return []r3.Vec{
		{X: -half, Y: half},
		{X: half, Y: half},
		{X: half, Y: -half},
		{X: -half, Y: -half},
	}
}

// sweepParts splits the sweep union into its alternating edge and
// corner transforms.
func sweepParts(t *testing.T, s csg.Solid) (edges, corners []csg.Transformed, lengths []float64) {
	t.Helper()
	u, ok := s.(csg.Union)
	if !ok {
		t.Fatalf("sweep is %T, want csg.Union", s)
	}
	if len(u.Solids)%2 != 0 {
		t.Fatalf("sweep has %d parts, want an even count", len(u.Solids))
	}
	for i := 0; i < len(u.Solids); i += 2 {
		e, ok := u.Solids[i].(csg.Transformed)
		if !ok {
			t.Fatalf("part %d is %T, want csg.Transformed", i, u.Solids[i])
		}
		ext, ok := e.Solid.(csg.Extrude)
		if !ok {
			t.Fatalf("part %d wraps %T, want csg.Extrude", i, e.Solid)
		}
		c, ok := u.Solids[i+1].(csg.Transformed)
		if !ok {
			t.Fatalf("part %d is %T, want csg.Transformed", i+1, u.Solids[i+1])
		}
		rev, ok := c.Solid.(csg.Revolve)
		if !ok {
			t.Fatalf("part %d wraps %T, want csg.Revolve", i+1, c.Solid)
		}
		if rev.Degrees != 90 {
			t.Fatalf("corner revolve sweeps %g degrees, want 90", rev.Degrees)
		}
		edges = append(edges, e)
		corners = append(corners, c)
		lengths = append(lengths, ext.Height)
	}
	return edges, corners, lengths
}

func TestSweepPathFrames(t *testing.T) {
	const tol = 1e-9
	path := squarePath(17)
	s, err := sweepPath(sweepProfile, path)
	if err != nil {
		t.Fatal(err)
	}
	edges, corners, lengths := sweepParts(t, s)
	if len(edges) != len(path) {
		t.Fatalf("got %d edges, want %d", len(edges), len(path))
	}

	// outward normals of the clockwise square, per edge.
	normals := []r3.Vec{{Y: 1}, {X: 1}, {Y: -1}, {X: -1}}
	for i := range edges {
		a := path[i]
		b := path[(i+1)%len(path)]
		frame := edges[i].T
		if lengths[i] != 34 {
			t.Errorf("edge %d: length %g, want 34", i, lengths[i])
		}
		// the profile plane starts at the edge start and the
		// extrusion axis ends at the edge end.
		if got := frame.MulPosition(r3.Vec{}); !d3.EqualWithin(got, a, tol) {
			t.Errorf("edge %d: origin at %v, want %v", i, got, a)
		}
		if got := frame.MulPosition(r3.Vec{Z: lengths[i]}); !d3.EqualWithin(got, b, tol) {
			t.Errorf("edge %d: end at %v, want %v", i, got, b)
		}
		// profile x points along the outward normal, profile y up.
		nx := r3.Sub(frame.MulPosition(r3.Vec{X: 1}), a)
		if !d3.EqualWithin(nx, normals[i], tol) {
			t.Errorf("edge %d: profile x maps to %v, want %v", i, nx, normals[i])
		}
		ny := r3.Sub(frame.MulPosition(r3.Vec{Y: 1}), a)
		if !d3.EqualWithin(ny, r3.Vec{Z: 1}, tol) {
			t.Errorf("edge %d: profile y maps to %v, want +z", i, ny)
		}
		// the corner pivot sits on the path vertex.
		if got := corners[i].T.MulPosition(r3.Vec{}); !d3.EqualWithin(got, b, tol) {
			t.Errorf("corner %d: pivot at %v, want %v", i, got, b)
		}
	}
}

func TestSweepPathCornerContinuity(t *testing.T) {
	const tol = 1e-9
	path := squarePath(17)
	s, err := sweepPath(sweepProfile, path)
	if err != nil {
		t.Fatal(err)
	}
	edges, corners, lengths := sweepParts(t, s)

	// probe a profile point off both axes.
	p := r2.Vec{X: 1.5, Y: 2}
	for i := range corners {
		corner := corners[i].T
		cur := edges[i].T
		next := edges[(i+1)%len(edges)].T
		// the revolution starts where the next edge starts: at sweep
		// angle 0 the profile point (x, y) sits at local (x, 0, y).
		start := corner.MulPosition(r3.Vec{X: p.X, Z: p.Y})
		wantStart := next.MulPosition(r3.Vec{X: p.X, Y: p.Y})
		if !d3.EqualWithin(start, wantStart, tol) {
			t.Errorf("corner %d: start plane at %v, next edge starts at %v", i, start, wantStart)
		}
		// and ends where the current edge ends: at 90 degrees the
		// profile point sits at local (0, x, y).
		end := corner.MulPosition(r3.Vec{Y: p.X, Z: p.Y})
		wantEnd := cur.MulPosition(r3.Vec{X: p.X, Y: p.Y, Z: lengths[i]})
		if !d3.EqualWithin(end, wantEnd, tol) {
			t.Errorf("corner %d: end plane at %v, current edge ends at %v", i, end, wantEnd)
		}
	}
}

func TestSweepPathRejectsDegenerateInput(t *testing.T) {
	var geomErr *GeometryError

	_, err := sweepPath(sweepProfile[:2], squarePath(17))
	if !errors.As(err, &geomErr) {
		t.Errorf("short profile: got %v, want GeometryError", err)
	}

	_, err = sweepPath(sweepProfile, squarePath(17)[:2])
	if !errors.As(err, &geomErr) {
		t.Errorf("short path: got %v, want GeometryError", err)
	}

	dup := squarePath(17)
	dup[1] = dup[0]
	_, err = sweepPath(sweepProfile, dup)
	if !errors.As(err, &geomErr) {
		t.Errorf("repeated vertex: got %v, want GeometryError", err)
	}
}
