package placement

import (
	"testing"

	"github.com/jay1247sjh/SmartMall-sub005/model"
)

func TestValidatePlacement(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name   string
		target model.AreaType
		item   model.AreaType
		valid  bool
	}{
		{"escalator in corridor", model.Corridor, model.Escalator, false},
		{"escalator in escalator", model.Escalator, model.Escalator, true},
		{"retail in corridor", model.Corridor, model.Retail, false},
		{"service in retail", model.Retail, model.Service, true},
		{"food in retail", model.Retail, model.Food, false},
		{"retail in anchor", model.Anchor, model.Retail, true},
		{"food in common", model.Common, model.Food, true},
		{"anchor in common", model.Common, model.Anchor, false},
		{"storage in storage", model.Storage, model.Storage, true},
		{"service in office", model.Office, model.Service, true},
		{"parking in parking", model.Parking, model.Parking, true},
		{"retail in other", model.Other, model.Retail, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := e.ValidatePlacement(tt.target, tt.item)
			if d.Valid != tt.valid {
				t.Errorf("ValidatePlacement(%s, %s) = %v (%q), want %v",
					tt.target, tt.item, d.Valid, d.Message, tt.valid)
			}
			if !d.Valid && d.Message == "" {
				t.Error("invalid decision must carry a reason")
			}
			if d.Valid && d.Message != "" {
				t.Errorf("valid decision carries message %q", d.Message)
			}
		})
	}
}

func TestCorridorAllowsNothing(t *testing.T) {
	e := NewEngine()
	for _, item := range model.AreaTypes {
		if d := e.ValidatePlacement(model.Corridor, item); d.Valid {
			t.Errorf("corridor accepted %s", item)
		}
	}
}

func TestRequiresFloorConnection(t *testing.T) {
	e := NewEngine()
	want := map[model.AreaType]bool{
		model.Escalator: true,
		model.Elevator:  true,
		model.Stairs:    true,
	}
	for _, typ := range model.AreaTypes {
		if got := e.RequiresFloorConnection(typ); got != want[typ] {
			t.Errorf("RequiresFloorConnection(%s) = %v, want %v", typ, got, want[typ])
		}
	}
}

func TestIsVerticalConnectionType(t *testing.T) {
	vertical := map[model.AreaType]bool{
		model.Escalator: true,
		model.Elevator:  true,
		model.Stairs:    true,
	}
	for _, typ := range model.AreaTypes {
		if got := IsVerticalConnectionType(typ); got != vertical[typ] {
			t.Errorf("IsVerticalConnectionType(%s) = %v, want %v", typ, got, vertical[typ])
		}
	}
}

func TestOverrides(t *testing.T) {
	e := NewEngine()

	// A user preset that lets kiosks (retail) into corridors.
	e.Override(model.Corridor, Rule{Allowed: []model.AreaType{model.Retail}})

	if d := e.ValidatePlacement(model.Corridor, model.Retail); !d.Valid {
		t.Errorf("override ignored: %q", d.Message)
	}
	if d := e.ValidatePlacement(model.Corridor, model.Food); d.Valid {
		t.Error("override leaked beyond its whitelist")
	}

	e.ClearOverride(model.Corridor)
	if d := e.ValidatePlacement(model.Corridor, model.Retail); d.Valid {
		t.Error("ClearOverride did not restore the default")
	}

	// Overrides never bleed into the built-in table.
	if DefaultRules(model.Corridor).Allows(model.Retail) {
		t.Error("default table mutated by override")
	}
}
