package editor

import (
	"fmt"

	"github.com/jay1247sjh/SmartMall-sub005/geometry"
)

// Config holds the drawing settings supplied by the host.
type Config struct {
	GridSize    float64
	SnapEnabled bool
	MinArea     float64
}

// Callbacks are fired synchronously on the caller's goroutine as the
// gesture progresses. Nil callbacks are skipped.
type Callbacks struct {
	OnStart    func()
	OnUpdate   func(points []geometry.Point)
	OnComplete func(Result)
	OnCancel   func()
}

// Result is the outcome of a completed gesture. Errors are blocking:
// the host must not commit the shape. Warnings are advisory.
type Result struct {
	Polygon  geometry.Polygon
	Valid    bool
	Errors   []string
	Warnings []string
}

// Session is the drawing state machine. One gesture may be in flight
// at a time; a Session is not safe for concurrent writers, so hosts
// with multiple simultaneous editors create one Session each.
type Session struct {
	mode  Mode
	state State

	points  []geometry.Point
	preview *geometry.Point

	boundary geometry.Polygon
	siblings []geometry.Polygon

	cfg Config
	cb  Callbacks
}

// NewSession creates an idle session with no tool selected.
func NewSession(cfg Config, cb Callbacks) *Session {
	return &Session{cfg: cfg, cb: cb}
}

// SetBoundary supplies the floor outline a drawn shape may not exceed.
// An empty boundary disables the containment check.
func (s *Session) SetBoundary(p geometry.Polygon) {
	s.boundary = p
}

// SetSiblings supplies the polygons already placed on the same floor,
// used only for overlap warnings.
func (s *Session) SetSiblings(polys []geometry.Polygon) {
	s.siblings = polys
}

// SetMode switches the active tool. Switching cancels any gesture in
// progress.
func (s *Session) SetMode(m Mode) {
	if s.state == StateDrawing {
		s.Cancel()
	}
	s.mode = m
}

// Mode returns the active tool.
func (s *Session) Mode() Mode { return s.mode }

// State returns the gesture lifecycle state.
func (s *Session) State() State { return s.state }

// Points returns the committed points of the gesture in progress.
func (s *Session) Points() []geometry.Point { return s.points }

// Preview returns the uncommitted preview point, if any.
func (s *Session) Preview() (geometry.Point, bool) {
	if s.preview == nil {
		return geometry.Point{}, false
	}
	return *s.preview, true
}

// snap applies grid snapping when enabled.
func (s *Session) snap(p geometry.Point) geometry.Point {
	if !s.cfg.SnapEnabled {
		return p
	}
	return geometry.Snap(p, s.cfg.GridSize)
}

// Start begins a gesture at the given point, which becomes the session
// anchor. It reports false without side effects when no drawing tool
// is active or a gesture is already in flight.
func (s *Session) Start(p geometry.Point) bool {
	if s.mode == ModeNone || s.mode == ModeSelect {
		return false
	}
	if s.state == StateDrawing {
		return false
	}
	s.points = []geometry.Point{s.snap(p)}
	s.preview = nil
	s.state = StateDrawing
	if s.cb.OnStart != nil {
		s.cb.OnStart()
	}
	s.update()
	return true
}

// AddPoint commits the next point of the gesture. In rectangle mode
// any second point completes the shape immediately. In polygon mode
// the point is appended, except that once 3 or more points exist a
// click within 2x the grid size of the first point closes the shape
// instead of adding a vertex.
func (s *Session) AddPoint(p geometry.Point) {
	if s.state != StateDrawing {
		return
	}
	pt := s.snap(p)

	switch s.mode {
	case ModeRectangle:
		s.points = append(s.points, pt)
		s.Complete()

	case ModePolygon:
		if len(s.points) >= 3 && pt.Distance(s.points[0]) <= 2*s.cfg.GridSize {
			s.Complete()
			return
		}
		s.points = append(s.points, pt)
		s.update()
	}
}

// UpdatePreview moves the uncommitted preview vertex used to render
// the in-progress shape. It never mutates the committed point list.
func (s *Session) UpdatePreview(p geometry.Point) {
	if s.state != StateDrawing {
		return
	}
	pt := s.snap(p)
	s.preview = &pt
	s.update()
}

// CanComplete reports whether Complete would produce a shape right
// now: a rectangle needs its anchor, a polygon needs 3 vertices.
func (s *Session) CanComplete() bool {
	if s.state != StateDrawing {
		return false
	}
	switch s.mode {
	case ModeRectangle:
		return len(s.points) >= 2
	case ModePolygon:
		return len(s.points) >= 3
	default:
		return false
	}
}

// Complete builds the final closed polygon, validates it, and emits
// the result through OnComplete. Validation combines the geometric
// checks with the session's boundary containment (blocking) and one
// overlap warning per intersecting sibling (non-blocking). The session
// returns to Idle regardless of validity; the mode is preserved so the
// tool can be reused immediately.
func (s *Session) Complete() (Result, bool) {
	if s.state != StateDrawing {
		return Result{}, false
	}

	var poly geometry.Polygon
	switch s.mode {
	case ModeRectangle:
		if len(s.points) < 2 {
			s.reset()
			return Result{}, false
		}
		anchor, cursor := s.points[0], s.points[1]
		poly = geometry.NewPolygon(
			anchor,
			geometry.Point{X: cursor.X, Y: anchor.Y},
			cursor,
			geometry.Point{X: anchor.X, Y: cursor.Y},
		)
	case ModePolygon:
		poly = geometry.NewPolygon(s.points...)
	default:
		s.reset()
		return Result{}, false
	}

	res := s.validate(poly)
	s.state = StateComplete
	s.reset()
	if s.cb.OnComplete != nil {
		s.cb.OnComplete(res)
	}
	return res, true
}

// validate runs the full check set for a finished polygon.
func (s *Session) validate(poly geometry.Polygon) Result {
	vr := geometry.ValidateWithMinArea(poly, s.minArea())
	res := Result{
		Polygon:  poly,
		Valid:    vr.Valid,
		Errors:   vr.Errors,
		Warnings: vr.Warnings,
	}

	if len(s.boundary.Vertices) >= 3 && !geometry.ContainedIn(poly, s.boundary) {
		res.Valid = false
		res.Errors = append(res.Errors, "shape extends outside the floor boundary")
	}

	for i, sib := range s.siblings {
		if geometry.Overlaps(poly, sib) {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("shape overlaps existing area %d", i))
		}
	}
	return res
}

func (s *Session) minArea() float64 {
	if s.cfg.MinArea > 0 {
		return s.cfg.MinArea
	}
	return geometry.MinAreaWarning
}

// Cancel discards the gesture and returns to Idle. The cancellation
// notice fires only when a gesture was actually in progress.
func (s *Session) Cancel() {
	wasDrawing := s.state == StateDrawing
	s.reset()
	if wasDrawing && s.cb.OnCancel != nil {
		s.cb.OnCancel()
	}
}

// Undo pops the last committed vertex of a polygon gesture while more
// than one remains. It reports whether a vertex was removed.
func (s *Session) Undo() bool {
	if s.state != StateDrawing || s.mode != ModePolygon {
		return false
	}
	if len(s.points) <= 1 {
		return false
	}
	s.points = s.points[:len(s.points)-1]
	s.update()
	return true
}

// reset clears the gesture state but keeps the mode and the supplied
// boundary and siblings, which belong to the editing context rather
// than the individual gesture.
func (s *Session) reset() {
	s.points = nil
	s.preview = nil
	s.state = StateIdle
}

func (s *Session) update() {
	if s.cb.OnUpdate != nil {
		s.cb.OnUpdate(s.points)
	}
}
