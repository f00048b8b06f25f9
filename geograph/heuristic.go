package geograph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/core"
)

// GreatCircleHeuristic returns a heuristic for searching graphs built by
// PathGraph: the great-circle (haversine) distance between the nodes'
// source coordinates, read from their payloads.
//
// It pairs with WithGreatCircleWeights, where every arc's Cost() is the
// haversine distance between its endpoints — the estimate then never
// exceeds the remaining cost along any route. Altitude is deliberately
// ignored, matching the cost model. For planar-weighted graphs the
// default astar.Euclidean heuristic is the better fit.
func GreatCircleHeuristic() astar.Heuristic[orb.Point] {
	return func(n, target *core.Node[orb.Point]) float64 {
		return geo.Distance(n.Payload(), target.Payload())
	}
}
