// Package editor implements the interactive drawing session for the
// floor-plan authoring tool: the rectangle and polygon drawing gestures,
// per-vertex undo, cancellation, and vertex-level editing of existing
// shapes. It validates finished shapes through the geometry package and
// reports blocking errors and non-blocking warnings to the host UI.
package editor

// Mode represents the active drawing tool, chosen externally by the
// host toolbar. Select and edit modes never drive the state machine.
type Mode int

const (
	ModeNone      Mode = iota // no tool active
	ModeRectangle             // two-click rectangle gesture
	ModePolygon               // click-per-vertex polygon gesture
	ModeSelect                // selection, handled by the host
	ModeEdit                  // vertex editing, handled by the host
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "NONE"
	case ModeRectangle:
		return "RECTANGLE"
	case ModePolygon:
		return "POLYGON"
	case ModeSelect:
		return "SELECT"
	case ModeEdit:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}

// State represents the gesture lifecycle. Complete is transient: the
// session passes through it during Complete() and immediately returns
// to Idle, keeping the mode so the tool can be reused.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateComplete
)

// String returns the state name for display.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateDrawing:
		return "DRAWING"
	case StateComplete:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}
