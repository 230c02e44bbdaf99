package geometry

import "math"

// DefaultTolerance is the distance tolerance for on-segment and
// vertex-match tests, in plan units.
const DefaultTolerance = 1e-4

// parallelEpsilon guards the parametric intersection solve: segment
// pairs whose direction cross product is below this are treated as
// non-intersecting. Exactly-parallel non-collinear segments would
// otherwise divide by zero.
const parallelEpsilon = 1e-12

// PointOnSegment reports whether p lies on the segment a-b, within tol:
// true iff |dist(p,a) + dist(p,b) - dist(a,b)| < tol.
func PointOnSegment(p, a, b Point, tol float64) bool {
	if !p.IsFinite() || !a.IsFinite() || !b.IsFinite() {
		return false
	}
	return math.Abs(p.Distance(a)+p.Distance(b)-a.Distance(b)) < tol
}

// PointOnEdge reports whether p lies on any cyclic edge of the polygon.
func PointOnEdge(p Point, poly Polygon, tol float64) bool {
	n := len(poly.Vertices)
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		e := poly.Edge(i)
		if PointOnSegment(p, e.Start, e.End, tol) {
			return true
		}
	}
	return false
}

// cross returns the z component of (b-a) x (c-a). Positive when c is
// left of the directed line a->b.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsIntersect reports whether two segments share a point. A
// proper crossing yields KindPoint plus the crossing location solved
// parametrically; a collinear endpoint touch or overlap yields
// KindSegment with no single point. Parallel non-collinear segments,
// and any segment with non-finite coordinates, yield no intersection.
func SegmentsIntersect(s1, s2 Segment) Intersection {
	none := Intersection{Kind: KindNone}
	if !s1.Start.IsFinite() || !s1.End.IsFinite() || !s2.Start.IsFinite() || !s2.End.IsFinite() {
		return none
	}

	d1 := cross(s2.Start, s2.End, s1.Start)
	d2 := cross(s2.Start, s2.End, s1.End)
	d3 := cross(s1.Start, s1.End, s2.Start)
	d4 := cross(s1.Start, s1.End, s2.End)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		denom := (s1.End.X-s1.Start.X)*(s2.End.Y-s2.Start.Y) -
			(s1.End.Y-s1.Start.Y)*(s2.End.X-s2.Start.X)
		if math.Abs(denom) < parallelEpsilon {
			return none
		}
		t := ((s2.Start.X-s1.Start.X)*(s2.End.Y-s2.Start.Y) -
			(s2.Start.Y-s1.Start.Y)*(s2.End.X-s2.Start.X)) / denom
		return Intersection{
			Intersects: true,
			Kind:       KindPoint,
			Point: Point{
				X: s1.Start.X + t*(s1.End.X-s1.Start.X),
				Y: s1.Start.Y + t*(s1.End.Y-s1.Start.Y),
			},
		}
	}

	// Collinear touch: an endpoint of one segment lying on the other.
	if (d1 == 0 && PointOnSegment(s1.Start, s2.Start, s2.End, DefaultTolerance)) ||
		(d2 == 0 && PointOnSegment(s1.End, s2.Start, s2.End, DefaultTolerance)) ||
		(d3 == 0 && PointOnSegment(s2.Start, s1.Start, s1.End, DefaultTolerance)) ||
		(d4 == 0 && PointOnSegment(s2.End, s1.Start, s1.End, DefaultTolerance)) {
		return Intersection{Intersects: true, Kind: KindSegment}
	}

	return none
}

// SelfIntersects reports whether any two non-adjacent edges of the
// polygon intersect. Adjacent edges (including the wraparound pair)
// always share a vertex and are skipped. O(n²) over the edge pairs.
func SelfIntersects(p Polygon) bool {
	n := len(p.Vertices)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // wraparound adjacency
			}
			if SegmentsIntersect(p.Edge(i), p.Edge(j)).Intersects {
				return true
			}
		}
	}
	return false
}
