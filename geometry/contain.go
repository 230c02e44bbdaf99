package geometry

// ContainsPoint reports whether the point is strictly inside the
// polygon using the even-odd ray casting rule. Polygons with fewer
// than 3 vertices contain nothing. The result is invariant under
// cyclic rotation of the vertex list.
func ContainsPoint(p Polygon, pt Point) bool {
	n := len(p.Vertices)
	if n < 3 || !pt.IsFinite() || !p.isFinite() {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// insideOrOnEdge is the tolerant membership test used by the
// containment and overlap predicates: edge-touching counts.
func insideOrOnEdge(p Polygon, pt Point) bool {
	return ContainsPoint(p, pt) || PointOnEdge(pt, p, DefaultTolerance)
}

// isVertexOf reports whether pt matches a vertex of the polygon within
// the default tolerance.
func isVertexOf(pt Point, p Polygon) bool {
	for _, v := range p.Vertices {
		if pt.Distance(v) < DefaultTolerance {
			return true
		}
	}
	return false
}

// ContainedIn reports whether inner lies entirely within outer:
// every inner vertex is inside or on an edge of outer, and no inner
// edge properly crosses an outer edge except at a shared vertex.
// A polygon contains itself.
func ContainedIn(inner, outer Polygon) bool {
	if len(inner.Vertices) < 3 || len(outer.Vertices) < 3 {
		return false
	}
	if !inner.isFinite() || !outer.isFinite() {
		return false
	}
	for _, v := range inner.Vertices {
		if !insideOrOnEdge(outer, v) {
			return false
		}
	}
	for i := 0; i < len(inner.Vertices); i++ {
		for j := 0; j < len(outer.Vertices); j++ {
			hit := SegmentsIntersect(inner.Edge(i), outer.Edge(j))
			if hit.Kind != KindPoint {
				continue
			}
			if isVertexOf(hit.Point, inner) || isVertexOf(hit.Point, outer) {
				continue
			}
			return false
		}
	}
	return true
}

// Overlaps reports whether two polygons share any interior, using a
// staged heuristic that short-circuits at the first positive stage:
// bounding-box rejection, then vertex membership either way, then edge
// intersection, then mean-centroid containment either way. The final
// stage catches full containment the earlier stages miss; because the
// centroid is the vertex mean it is only reliable for convex or
// near-convex shapes. Symmetric in its arguments.
func Overlaps(a, b Polygon) bool {
	if len(a.Vertices) < 3 || len(b.Vertices) < 3 {
		return false
	}
	if !Bounds(a).Intersects(Bounds(b)) {
		return false
	}
	for _, v := range a.Vertices {
		if insideOrOnEdge(b, v) {
			return true
		}
	}
	for _, v := range b.Vertices {
		if insideOrOnEdge(a, v) {
			return true
		}
	}
	for i := 0; i < len(a.Vertices); i++ {
		for j := 0; j < len(b.Vertices); j++ {
			if SegmentsIntersect(a.Edge(i), b.Edge(j)).Intersects {
				return true
			}
		}
	}
	if ContainsPoint(b, Centroid(a)) || ContainsPoint(a, Centroid(b)) {
		return true
	}
	return false
}
