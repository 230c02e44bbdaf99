package editor

import "github.com/jay1247sjh/SmartMall-sub005/geometry"

// AddVertex inserts a vertex at the given index. Indexes are clamped
// into [0, len], so negative values prepend and oversized values
// append.
func AddVertex(p *geometry.Polygon, index int, pt geometry.Point) {
	if index < 0 {
		index = 0
	}
	if index > len(p.Vertices) {
		index = len(p.Vertices)
	}
	p.Vertices = append(p.Vertices, geometry.Point{})
	copy(p.Vertices[index+1:], p.Vertices[index:])
	p.Vertices[index] = pt
}

// RemoveVertex removes the vertex at the given index. It refuses when
// the polygon has 3 or fewer vertices, returning false with the
// polygon unchanged. An out-of-range index is a no-op.
func RemoveVertex(p *geometry.Polygon, index int) bool {
	if len(p.Vertices) <= 3 {
		return false
	}
	if index < 0 || index >= len(p.Vertices) {
		return true
	}
	p.Vertices = append(p.Vertices[:index], p.Vertices[index+1:]...)
	return true
}

// MoveVertex replaces the vertex at the given index with a new
// position. An out-of-range index is a no-op.
func MoveVertex(p *geometry.Polygon, index int, pt geometry.Point) {
	if index < 0 || index >= len(p.Vertices) {
		return
	}
	p.Vertices[index] = pt
}
