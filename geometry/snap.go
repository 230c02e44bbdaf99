package geometry

import "math"

// Snap rounds each coordinate to the nearest multiple of size. A size
// of zero or less is a passthrough. Idempotent: snapping an already
// snapped point changes nothing.
func Snap(p Point, size float64) Point {
	if size <= 0 {
		return p
	}
	return Point{
		X: math.Round(p.X/size) * size,
		Y: math.Round(p.Y/size) * size,
	}
}

// SnapPolygon snaps every vertex of the polygon to the grid.
func SnapPolygon(p Polygon, size float64) Polygon {
	if size <= 0 {
		return p
	}
	out := Polygon{Vertices: make([]Point, len(p.Vertices)), Closed: p.Closed}
	for i, v := range p.Vertices {
		out.Vertices[i] = Snap(v, size)
	}
	return out
}
