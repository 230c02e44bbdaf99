// Package placement decides which categories of facility may be
// nested inside a given area type, and which area types must be linked
// to another floor. The built-in table can be shadowed per type by
// externally registered overrides (user-customized presets).
package placement

import (
	"fmt"

	"github.com/jay1247sjh/SmartMall-sub005/model"
)

// Rule is the placement constraint for one area type. An empty Allowed
// list means nothing may be nested inside that type.
type Rule struct {
	Allowed                 []model.AreaType
	RequiresFloorConnection bool
}

// Allows reports whether the item type is on the whitelist.
func (r Rule) Allows(item model.AreaType) bool {
	for _, t := range r.Allowed {
		if t == item {
			return true
		}
	}
	return false
}

// defaultRules is the built-in placement table.
var defaultRules = map[model.AreaType]Rule{
	model.Corridor:  {},
	model.Escalator: {Allowed: []model.AreaType{model.Escalator}, RequiresFloorConnection: true},
	model.Elevator:  {Allowed: []model.AreaType{model.Elevator}, RequiresFloorConnection: true},
	model.Stairs:    {Allowed: []model.AreaType{model.Stairs}, RequiresFloorConnection: true},
	model.Restroom:  {Allowed: []model.AreaType{model.Restroom}},
	model.Service:   {Allowed: []model.AreaType{model.Service}},
	model.Retail:    {Allowed: []model.AreaType{model.Retail, model.Service}},
	model.Food:      {Allowed: []model.AreaType{model.Food, model.Service}},
	model.Anchor:    {Allowed: []model.AreaType{model.Anchor, model.Retail, model.Service}},
	model.Common:    {Allowed: []model.AreaType{model.Common, model.Retail, model.Food, model.Service}},
	model.Storage:   {Allowed: []model.AreaType{model.Storage}},
	model.Office:    {Allowed: []model.AreaType{model.Office, model.Service}},
	model.Parking:   {Allowed: []model.AreaType{model.Parking}},
	model.Other:     {Allowed: []model.AreaType{model.Other, model.Common, model.Retail, model.Food, model.Service}},
}

// DefaultRules returns the built-in rule for an area type. Unknown
// types get the empty rule: nothing may be nested.
func DefaultRules(t model.AreaType) Rule {
	return defaultRules[t]
}

// IsVerticalConnectionType reports whether the type represents
// circulation between floors.
func IsVerticalConnectionType(t model.AreaType) bool {
	switch t {
	case model.Escalator, model.Elevator, model.Stairs:
		return true
	default:
		return false
	}
}

// Decision is the outcome of a placement check. Message is a
// human-readable reason, set only when invalid.
type Decision struct {
	Valid   bool
	Message string
}

// Engine answers placement queries, consulting registered overrides
// before the built-in table.
type Engine struct {
	overrides map[model.AreaType]Rule
}

// NewEngine creates an engine with no overrides.
func NewEngine() *Engine {
	return &Engine{overrides: make(map[model.AreaType]Rule)}
}

// Override registers a custom rule for an area type, shadowing the
// built-in table.
func (e *Engine) Override(t model.AreaType, r Rule) {
	e.overrides[t] = r
}

// ClearOverride removes a registered override.
func (e *Engine) ClearOverride(t model.AreaType) {
	delete(e.overrides, t)
}

// Rules returns the effective rule for an area type.
func (e *Engine) Rules(t model.AreaType) Rule {
	if r, ok := e.overrides[t]; ok {
		return r
	}
	return defaultRules[t]
}

// ValidatePlacement decides whether an item of the given type may be
// nested inside the target area type.
func (e *Engine) ValidatePlacement(target, item model.AreaType) Decision {
	rule := e.Rules(target)
	if len(rule.Allowed) == 0 {
		return Decision{Message: fmt.Sprintf("nothing may be placed inside a %s area", target.DisplayName())}
	}
	if !rule.Allows(item) {
		return Decision{Message: fmt.Sprintf("%s is not allowed in a %s area", item.DisplayName(), target.DisplayName())}
	}
	return Decision{Valid: true}
}

// RequiresFloorConnection reports whether areas of the given type must
// be linked to another floor.
func (e *Engine) RequiresFloorConnection(t model.AreaType) bool {
	return e.Rules(t).RequiresFloorConnection
}
