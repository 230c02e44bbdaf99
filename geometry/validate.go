package geometry

import "fmt"

// MinAreaWarning is the default threshold below which a polygon is
// flagged as degenerately small. Non-blocking.
const MinAreaWarning = 1e-4

// ValidationResult carries the outcome of polygon validation. Errors
// are blocking: the shape must not be committed. Warnings are not.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Validate checks a polygon against the commit invariants: at least 3
// vertices and no self-intersection (errors), plus a warning when the
// area falls below MinAreaWarning.
func Validate(p Polygon) ValidationResult {
	return ValidateWithMinArea(p, MinAreaWarning)
}

// ValidateWithMinArea is Validate with a caller-supplied minimum-area
// warning threshold. A threshold <= 0 disables the warning.
func ValidateWithMinArea(p Polygon, minArea float64) ValidationResult {
	res := ValidationResult{Valid: true}
	if len(p.Vertices) < 3 {
		res.Valid = false
		res.Errors = append(res.Errors,
			fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(p.Vertices)))
		return res
	}
	if !p.isFinite() {
		res.Valid = false
		res.Errors = append(res.Errors, "polygon has non-finite coordinates")
		return res
	}
	if SelfIntersects(p) {
		res.Valid = false
		res.Errors = append(res.Errors, "polygon edges intersect each other")
	}
	if minArea > 0 && Area(p) < minArea {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("polygon area is below %g", minArea))
	}
	return res
}
