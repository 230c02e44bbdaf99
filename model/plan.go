package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Plan is the floor-plan document the host persists. The shape format
// inside it is the ordered list of {x,y} pairs in plan length units;
// no unit conversion or coordinate transformation happens here.
type Plan struct {
	ID     string   `json:"projectId"`
	Name   string   `json:"name"`
	Floors []*Floor `json:"floors"`
}

// NewPlan creates an empty plan.
func NewPlan(name string) *Plan {
	return &Plan{ID: uuid.New().String(), Name: name}
}

// FloorByLevel returns the floor at the given level, or nil.
func (p *Plan) FloorByLevel(level int) *Floor {
	for _, f := range p.Floors {
		if f.Level == level {
			return f
		}
	}
	return nil
}

// LoadPlan reads a plan document from a JSON file.
func LoadPlan(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	return &plan, nil
}

// SavePlan writes the plan document to a JSON file.
func SavePlan(filename string, plan *Plan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
