package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/wayfind/geom"
)

func TestCoord(t *testing.T) {
	p := geom.NewPoint3D(1, 2, 3)
	for axis, want := range map[int]float64{geom.AxisX: 1, geom.AxisY: 2, geom.AxisZ: 3} {
		got, err := p.Coord(axis)
		if err != nil {
			t.Fatalf("Coord(%d): unexpected error %v", axis, err)
		}
		if got != want {
			t.Errorf("Coord(%d) = %g; want %g", axis, got, want)
		}
	}
	if _, err := p.Coord(3); !errors.Is(err, geom.ErrAxisRange) {
		t.Errorf("Coord(3): want ErrAxisRange, got %v", err)
	}
	if _, err := p.Coord(-1); !errors.Is(err, geom.ErrAxisRange) {
		t.Errorf("Coord(-1): want ErrAxisRange, got %v", err)
	}
}

func TestEquality(t *testing.T) {
	a := geom.NewPoint3D(1, 2, 3)
	b := geom.NewPoint3D(1, 2, 3)
	c := geom.NewPoint3D(1, 2, 4)
	if !a.Equal(b) || a != b {
		t.Error("points with identical coordinates must compare equal")
	}
	if a.Equal(c) {
		t.Error("points with differing coordinates must not compare equal")
	}
	// usable as a map key
	seen := map[geom.Point3D]bool{a: true}
	if !seen[b] {
		t.Error("equal points must hash to the same map key")
	}
}

func TestDistance(t *testing.T) {
	a := geom.NewPoint3D(0, 0, 0)
	b := geom.NewPoint3D(3, 4, 0)
	if got := geom.Distance(a, b); got != 5 {
		t.Errorf("Distance = %g; want 5", got)
	}
	if got := geom.Distance(b, a); got != 5 {
		t.Errorf("Distance must be symmetric; got %g", got)
	}
	if got := geom.SquaredDistance(a, b); got != 25 {
		t.Errorf("SquaredDistance = %g; want 25", got)
	}
	if got := geom.Distance(a, a); got != 0 {
		t.Errorf("Distance(a,a) = %g; want 0", got)
	}
}

func TestManhattanAndChebyshev(t *testing.T) {
	a := geom.NewPoint3D(0, 0, 0)
	b := geom.NewPoint3D(1, -2, 3)
	if got := geom.ManhattanDistance(a, b); got != 6 {
		t.Errorf("ManhattanDistance = %g; want 6", got)
	}
	if got := geom.ChebyshevDistance(a, b); got != 3 {
		t.Errorf("ChebyshevDistance = %g; want 3", got)
	}
}

func TestProjectOnLine(t *testing.T) {
	a := geom.NewPoint3D(0, 0, 0)
	b := geom.NewPoint3D(2, 0, 0)

	// directly above the segment midpoint
	p := geom.NewPoint3D(1, 5, 0)
	if got, want := geom.ProjectOnLine(p, a, b), geom.NewPoint3D(1, 0, 0); got != want {
		t.Errorf("ProjectOnLine = %v; want %v", got, want)
	}

	// beyond the segment: the projection lands on the infinite line
	p = geom.NewPoint3D(7, 3, 0)
	if got, want := geom.ProjectOnLine(p, a, b), geom.NewPoint3D(7, 0, 0); got != want {
		t.Errorf("ProjectOnLine beyond segment = %v; want %v", got, want)
	}

	// degenerate line: both defining points coincide
	if got := geom.ProjectOnLine(p, a, a); got != a {
		t.Errorf("ProjectOnLine degenerate = %v; want %v", got, a)
	}
}

func TestProjectOnLineSkew(t *testing.T) {
	a := geom.NewPoint3D(0, 0, 0)
	b := geom.NewPoint3D(1, 1, 1)
	p := geom.NewPoint3D(1, 0, 0)
	got := geom.ProjectOnLine(p, a, b)
	want := geom.NewPoint3D(1.0/3, 1.0/3, 1.0/3)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
		t.Errorf("ProjectOnLine skew = %v; want %v", got, want)
	}
	// the residual must be perpendicular to the line direction
	r := geom.NewPoint3D(p.X-got.X, p.Y-got.Y, p.Z-got.Z)
	if dot := r.X + r.Y + r.Z; math.Abs(dot) > 1e-12 {
		t.Errorf("residual not perpendicular: dot = %g", dot)
	}
}
