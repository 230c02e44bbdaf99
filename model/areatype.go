// Package model defines the floor-plan entities that wrap validated
// geometry: areas, floors, and the plan document the host persists.
package model

import "fmt"

// AreaType classifies what an area on a floor is used for. The set is
// closed: values outside this list are rejected by Parse.
type AreaType string

const (
	Retail    AreaType = "retail"
	Food      AreaType = "food"
	Service   AreaType = "service"
	Anchor    AreaType = "anchor"
	Common    AreaType = "common"
	Corridor  AreaType = "corridor"
	Elevator  AreaType = "elevator"
	Escalator AreaType = "escalator"
	Stairs    AreaType = "stairs"
	Restroom  AreaType = "restroom"
	Storage   AreaType = "storage"
	Office    AreaType = "office"
	Parking   AreaType = "parking"
	Other     AreaType = "other"
)

// AreaTypes lists every valid area type.
var AreaTypes = []AreaType{
	Retail, Food, Service, Anchor, Common, Corridor, Elevator,
	Escalator, Stairs, Restroom, Storage, Office, Parking, Other,
}

// displayNames maps each type to its operator-facing label.
var displayNames = map[AreaType]string{
	Retail:    "Retail",
	Food:      "Food & Beverage",
	Service:   "Service",
	Anchor:    "Anchor Store",
	Common:    "Common Area",
	Corridor:  "Corridor",
	Elevator:  "Elevator",
	Escalator: "Escalator",
	Stairs:    "Stairs",
	Restroom:  "Restroom",
	Storage:   "Storage",
	Office:    "Office",
	Parking:   "Parking",
	Other:     "Other",
}

// colors maps each type to its default render color.
var colors = map[AreaType]string{
	Retail:    "#3b82f6",
	Food:      "#f97316",
	Service:   "#8b5cf6",
	Anchor:    "#ef4444",
	Common:    "#6b7280",
	Corridor:  "#9ca3af",
	Elevator:  "#10b981",
	Escalator: "#14b8a6",
	Stairs:    "#06b6d4",
	Restroom:  "#ec4899",
	Storage:   "#78716c",
	Office:    "#6366f1",
	Parking:   "#84cc16",
	Other:     "#a3a3a3",
}

// ParseAreaType converts a raw string to an AreaType, rejecting
// anything outside the closed enumeration.
func ParseAreaType(s string) (AreaType, error) {
	t := AreaType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown area type %q", s)
	}
	return t, nil
}

// Valid reports whether the value is one of the known types.
func (t AreaType) Valid() bool {
	_, ok := displayNames[t]
	return ok
}

// String returns the wire value.
func (t AreaType) String() string { return string(t) }

// DisplayName returns the operator-facing label.
func (t AreaType) DisplayName() string {
	if n, ok := displayNames[t]; ok {
		return n
	}
	return string(t)
}

// Color returns the default render color as a hex string.
func (t AreaType) Color() string {
	if c, ok := colors[t]; ok {
		return c
	}
	return "#a3a3a3"
}

// IsShopType reports whether the type is rentable shop space.
func (t AreaType) IsShopType() bool {
	switch t {
	case Retail, Food, Service, Anchor:
		return true
	default:
		return false
	}
}
