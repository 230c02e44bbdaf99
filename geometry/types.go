// Package geometry contains the pure 2D math used by the floor-plan
// editor: polygon measurement, point-in-polygon and intersection
// predicates, validation, and grid snapping. Every function is total —
// degenerate input (too few vertices, NaN coordinates, parallel
// segments) resolves to a safe zero value rather than a panic.
package geometry

import "math"

// Point represents a 2D coordinate in plan units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the euclidean distance to another point.
func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsFinite reports whether both coordinates are real numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Polygon is an ordered sequence of vertices. A valid polygon has at
// least 3 vertices and is non-self-intersecting, but the type itself
// stays permissive so shapes can be mutated mid-edit; commit paths must
// go through Validate.
type Polygon struct {
	Vertices []Point `json:"vertices"`
	Closed   bool    `json:"isClosed"`
}

// NewPolygon creates a closed polygon from the given vertices.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts, Closed: true}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// Edge returns the i-th cyclic edge: vertex i to vertex (i+1) mod n.
func (p Polygon) Edge(i int) Segment {
	n := len(p.Vertices)
	return Segment{Start: p.Vertices[i%n], End: p.Vertices[(i+1)%n]}
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := Polygon{Vertices: make([]Point, len(p.Vertices)), Closed: p.Closed}
	copy(out.Vertices, p.Vertices)
	return out
}

// isFinite reports whether every vertex has real coordinates.
func (p Polygon) isFinite() bool {
	for _, v := range p.Vertices {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}

// Segment is a line segment between two points.
type Segment struct {
	Start Point
	End   Point
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// BoundingBox is an axis-aligned rectangle. The zero value is the
// degenerate box returned for an empty vertex list.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Intersects reports whether two boxes share any point.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.MaxX < other.MinX || b.MinX > other.MaxX ||
		b.MaxY < other.MinY || b.MinY > other.MaxY)
}

// Contains reports whether the point lies inside or on the box.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// IntersectionKind classifies a segment intersection result.
type IntersectionKind int

const (
	KindNone    IntersectionKind = iota // no shared point
	KindPoint                           // proper crossing at a single point
	KindSegment                         // collinear touch or overlap
)

// String returns the kind name for display.
func (k IntersectionKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPoint:
		return "point"
	case KindSegment:
		return "segment"
	default:
		return "unknown"
	}
}

// Intersection describes how (and where) two segments meet. Point is
// meaningful only when Kind is KindPoint.
type Intersection struct {
	Intersects bool
	Point      Point
	Kind       IntersectionKind
}
