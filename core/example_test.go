package core_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/geom"
)

// ExampleGraph shows the basic construction flow: nodes, arcs, and a
// spatial query.
func ExampleGraph() {
	g := core.NewGraph[string]()

	dock := core.NewNode(geom.NewPoint3D(0, 0, 0), core.WithPayload("dock"))
	buoy := core.NewNode(geom.NewPoint3D(3, 4, 0), core.WithPayload("buoy"))
	g.AddNode(dock)
	g.AddNode(buoy)

	arc, _ := g.AddArcBetween(dock, buoy, 2)
	fmt.Printf("length=%.0f cost=%.0f\n", arc.Length(), arc.Cost())

	closest, dist, _ := g.ClosestNode(geom.NewPoint3D(2.9, 4.1, 0), false)
	fmt.Printf("closest=%s dist=%.2f\n", closest.Payload(), dist)

	// Output:
	// length=5 cost=10
	// closest=buoy dist=0.14
}
