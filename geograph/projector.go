package geograph

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/wayfind/geom"
)

// earthRadiusMeters is the mean Earth radius used by the equirectangular
// projection.
const earthRadiusMeters = 6371000.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// Projector maps geographic coordinates onto a local tangent plane
// anchored at a reference point: X meters east, Y meters north, Z the
// altitude in meters. A Projector is immutable and safe for concurrent
// use.
type Projector struct {
	anchor orb.Point
	cosLat float64
}

// NewProjector creates a projector anchored at the given lon/lat.
func NewProjector(anchor orb.Point) *Projector {
	return &Projector{
		anchor: anchor,
		cosLat: math.Cos(anchor.Lat() * degToRad),
	}
}

// Anchor returns the reference coordinate.
func (pr *Projector) Anchor() orb.Point {
	return pr.anchor
}

// Project maps p at the given altitude (meters) into the local frame.
func (pr *Projector) Project(p orb.Point, altitude float64) geom.Point3D {
	x := earthRadiusMeters * (p.Lon() - pr.anchor.Lon()) * degToRad * pr.cosLat
	y := earthRadiusMeters * (p.Lat() - pr.anchor.Lat()) * degToRad

	return geom.NewPoint3D(x, y, altitude)
}

// Unproject maps a local-frame point back to lon/lat and altitude.
// Inverse of Project up to floating-point rounding.
func (pr *Projector) Unproject(pt geom.Point3D) (orb.Point, float64) {
	lon := pr.anchor.Lon() + pt.X/(earthRadiusMeters*pr.cosLat)/degToRad
	lat := pr.anchor.Lat() + pt.Y/earthRadiusMeters/degToRad

	return orb.Point{lon, lat}, pt.Z
}
