// Package geom provides the minimal 3D geometric vocabulary the rest of
// wayfind is built on: an immutable Point3D value type, the standard
// distance metrics, and projection of a point onto an infinite line.
//
// Overview:
//
//   - Point3D is a plain comparable value: two points are equal iff their
//     coordinate triples are equal, and Point3D may be used directly as a
//     map key.
//   - Distance, SquaredDistance, ManhattanDistance, and ChebyshevDistance
//     cover the metrics consumed by the search heuristics in astar/.
//   - ProjectOnLine returns the foot of the perpendicular from a point to
//     the infinite line through two other points.
//
// All operations are pure functions with no hidden state; the package has
// no dependencies beyond the standard library.
package geom
