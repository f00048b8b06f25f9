package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrAxisRange is returned when a coordinate axis index is outside [0..2].
var ErrAxisRange = errors.New("geom: axis index out of range")

// Axis indices accepted by Point3D.Coord.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// Point3D is an immutable triple of Cartesian coordinates.
// It is a comparable value type: p == q holds iff all three coordinates
// are equal, which also makes Point3D usable as a map key.
type Point3D struct {
	X, Y, Z float64
}

// NewPoint3D builds a Point3D from its three coordinates.
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Coord returns the coordinate along the given axis (AxisX, AxisY, AxisZ).
// Returns ErrAxisRange for any other index.
func (p Point3D) Coord(axis int) (float64, error) {
	switch axis {
	case AxisX:
		return p.X, nil
	case AxisY:
		return p.Y, nil
	case AxisZ:
		return p.Z, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrAxisRange, axis)
	}
}

// Equal reports coordinate-triple equality. Identical to p == q; provided
// for call sites that read better with a named predicate.
func (p Point3D) Equal(q Point3D) bool {
	return p == q
}

// String renders the point as "(x, y, z)".
func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point3D) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Cheaper than Distance when only relative order matters.
func SquaredDistance(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return dx*dx + dy*dy + dz*dz
}

// ManhattanDistance returns the L1 distance between a and b.
func ManhattanDistance(a, b Point3D) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y) + math.Abs(a.Z-b.Z)
}

// ChebyshevDistance returns the L∞ distance between a and b: the largest
// coordinate-wise absolute difference.
func ChebyshevDistance(a, b Point3D) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Max(math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z)))
}

// ProjectOnLine returns the foot of the perpendicular from p onto the
// infinite line through a and b. When a == b the line is degenerate and a
// is returned.
func ProjectOnLine(p, a, b Point3D) Point3D {
	ab := Point3D{X: b.X - a.X, Y: b.Y - a.Y, Z: b.Z - a.Z}
	den := ab.X*ab.X + ab.Y*ab.Y + ab.Z*ab.Z
	if den == 0 {
		return a
	}
	ap := Point3D{X: p.X - a.X, Y: p.Y - a.Y, Z: p.Z - a.Z}
	t := (ap.X*ab.X + ap.Y*ab.Y + ap.Z*ab.Z) / den

	return Point3D{
		X: a.X + t*ab.X,
		Y: a.Y + t*ab.Y,
		Z: a.Z + t*ab.Z,
	}
}
