package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jay1247sjh/SmartMall-sub005/editor"
	"github.com/jay1247sjh/SmartMall-sub005/geometry"
)

// Area is a named region on a floor that owns a validated polygon. The
// derived measurements are pure functions of the shape's vertices and
// are recomputed on every mutation; all vertex edits must go through
// the Area methods so the invariant holds.
type Area struct {
	ID      string           `json:"areaId"`
	FloorID string           `json:"floorId,omitempty"`
	Name    string           `json:"name"`
	Type    AreaType         `json:"type"`
	Shape   geometry.Polygon `json:"shape"`
	Color   string           `json:"color,omitempty"`
	Visible bool             `json:"visible"`
	Locked  bool             `json:"locked"`

	Area      float64 `json:"derivedArea"`
	Perimeter float64 `json:"derivedPerimeter"`
}

// NewArea creates an area from a committed shape. The polygon must
// pass geometry validation; mid-edit permissive shapes stay outside
// the Area type until they do.
func NewArea(name string, typ AreaType, shape geometry.Polygon) (*Area, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown area type %q", typ)
	}
	if res := geometry.Validate(shape); !res.Valid {
		return nil, fmt.Errorf("invalid shape: %v", res.Errors)
	}
	a := &Area{
		ID:      uuid.New().String(),
		Name:    name,
		Type:    typ,
		Shape:   shape.Clone(),
		Color:   typ.Color(),
		Visible: true,
	}
	a.recompute()
	return a, nil
}

// SetShape replaces the committed shape, revalidating it.
func (a *Area) SetShape(shape geometry.Polygon) error {
	if res := geometry.Validate(shape); !res.Valid {
		return fmt.Errorf("invalid shape: %v", res.Errors)
	}
	a.Shape = shape.Clone()
	a.recompute()
	return nil
}

// AddVertex inserts a vertex into the shape at the given index and
// refreshes the derived measurements.
func (a *Area) AddVertex(index int, pt geometry.Point) {
	editor.AddVertex(&a.Shape, index, pt)
	a.recompute()
}

// RemoveVertex removes a vertex, refusing at the 3-vertex minimum.
func (a *Area) RemoveVertex(index int) bool {
	ok := editor.RemoveVertex(&a.Shape, index)
	if ok {
		a.recompute()
	}
	return ok
}

// MoveVertex repositions a vertex and refreshes the measurements.
func (a *Area) MoveVertex(index int, pt geometry.Point) {
	editor.MoveVertex(&a.Shape, index, pt)
	a.recompute()
}

// Validate re-runs the commit checks against the current shape.
func (a *Area) Validate() geometry.ValidationResult {
	return geometry.Validate(a.Shape)
}

// recompute refreshes the derived measurements from the vertices.
// Never cached independently of the shape that produced them.
func (a *Area) recompute() {
	a.Area = geometry.Area(a.Shape)
	a.Perimeter = geometry.Perimeter(a.Shape)
}
