// Package geograph turns geographic tracks (github.com/paulmach/orb
// types, lon/lat in degrees) into core graphs embedded in a local 3D
// Cartesian frame, so the astar engine can search them with plain
// Euclidean geometry.
//
// Projection model:
//
//	A Projector maps lon/lat/altitude onto a tangent plane anchored at a
//	reference coordinate: X is meters east of the anchor, Y meters north,
//	Z the altitude in meters. The equirectangular approximation is
//	accurate for the local extents pathfinding graphs usually cover
//	(city to region scale); it is not meant for continental spans.
//
// PathGraph builds a bidirectional chain graph from an orb.LineString.
// Each node carries its source orb.Point as payload, so results map back
// to geographic space either via Projector.Unproject or directly through
// Node.Payload. With WithGreatCircleWeights, arc weights are scaled so
// that Cost() equals the haversine distance between the endpoints rather
// than the planar approximation; GreatCircleHeuristic provides the
// matching astar heuristic over the node payloads.
//
// Errors (sentinel):
//
//	ErrShortLine        - a line with fewer than two points.
//	ErrAltitudeMismatch - altitude count differs from point count.
//	ErrBadAltitude      - a NaN or infinite altitude.
package geograph
