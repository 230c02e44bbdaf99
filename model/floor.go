package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jay1247sjh/SmartMall-sub005/geometry"
)

// Floor owns an outline polygon and the areas placed within it.
type Floor struct {
	ID             string           `json:"floorId"`
	Name           string           `json:"name"`
	Level          int              `json:"level"`
	Height         float64          `json:"height"`
	Outline        geometry.Polygon `json:"shape"`
	InheritOutline bool             `json:"inheritOutline"`
	SortOrder      int              `json:"sortOrder"`
	Areas          []*Area          `json:"areas"`
}

// DefaultFloorHeight is the story height assumed when none is given,
// in plan length units.
const DefaultFloorHeight = 4

// NewFloor creates an empty floor at the given level.
func NewFloor(name string, level int, outline geometry.Polygon) (*Floor, error) {
	if res := geometry.Validate(outline); !res.Valid {
		return nil, fmt.Errorf("invalid outline: %v", res.Errors)
	}
	return &Floor{
		ID:      uuid.New().String(),
		Name:    name,
		Level:   level,
		Height:  DefaultFloorHeight,
		Outline: outline.Clone(),
	}, nil
}

// AddArea places an area on the floor. The area's shape must lie
// within the floor outline; violations are blocking. Overlaps with
// areas already placed are reported as warnings, one per sibling, and
// do not block.
func (f *Floor) AddArea(a *Area) ([]string, error) {
	if res := geometry.Validate(a.Shape); !res.Valid {
		return nil, fmt.Errorf("area %q has an invalid shape: %v", a.Name, res.Errors)
	}
	if len(f.Outline.Vertices) >= 3 && !geometry.ContainedIn(a.Shape, f.Outline) {
		return nil, fmt.Errorf("area %q extends outside the floor outline", a.Name)
	}

	var warnings []string
	for _, sib := range f.Areas {
		if geometry.Overlaps(a.Shape, sib.Shape) {
			warnings = append(warnings, fmt.Sprintf("area %q overlaps %q", a.Name, sib.Name))
		}
	}

	a.FloorID = f.ID
	f.Areas = append(f.Areas, a)
	return warnings, nil
}

// RemoveArea deletes the area with the given ID, reporting whether it
// was present.
func (f *Floor) RemoveArea(id string) bool {
	for i, a := range f.Areas {
		if a.ID == id {
			f.Areas = append(f.Areas[:i], f.Areas[i+1:]...)
			return true
		}
	}
	return false
}

// AreaByID returns the area with the given ID, or nil.
func (f *Floor) AreaByID(id string) *Area {
	for _, a := range f.Areas {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// SiblingShapes returns the shapes of all areas except the one with
// the given ID, in placement order. The drawing session takes these as
// its overlap-warning input.
func (f *Floor) SiblingShapes(excludeID string) []geometry.Polygon {
	out := make([]geometry.Polygon, 0, len(f.Areas))
	for _, a := range f.Areas {
		if a.ID == excludeID {
			continue
		}
		out = append(out, a.Shape)
	}
	return out
}
