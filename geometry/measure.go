package geometry

import "math"

// Area returns the unsigned area of the polygon using the shoelace
// formula. Polygons with fewer than 3 vertices, or with non-finite
// coordinates, measure zero. The result is invariant under cyclic
// rotation of the start vertex and under reversal of vertex order.
func Area(p Polygon) float64 {
	n := len(p.Vertices)
	if n < 3 || !p.isFinite() {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X * p.Vertices[j].Y
		sum -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return math.Abs(sum) / 2
}

// Perimeter returns the total edge length: n edges for a closed
// polygon, n-1 for an open chain.
func Perimeter(p Polygon) float64 {
	n := len(p.Vertices)
	if n < 2 || !p.isFinite() {
		return 0
	}
	edges := n
	if !p.Closed {
		edges = n - 1
	}
	total := 0.0
	for i := 0; i < edges; i++ {
		total += p.Vertices[i].Distance(p.Vertices[(i+1)%n])
	}
	return total
}

// Bounds returns the axis-aligned bounding box of the vertices, or the
// degenerate zero box for an empty vertex list.
func Bounds(p Polygon) BoundingBox {
	if len(p.Vertices) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{
		MinX: p.Vertices[0].X, MinY: p.Vertices[0].Y,
		MaxX: p.Vertices[0].X, MaxY: p.Vertices[0].Y,
	}
	for _, v := range p.Vertices[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// Centroid returns the arithmetic mean of the vertices. This is NOT the
// area-weighted polygon centroid: it can fall outside a concave shape.
// It exists as a cheap containment heuristic for Overlaps and must not
// be used as a true center of mass.
func Centroid(p Polygon) Point {
	n := len(p.Vertices)
	if n == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, v := range p.Vertices {
		sx += v.X
		sy += v.Y
	}
	return Point{X: sx / float64(n), Y: sy / float64(n)}
}
