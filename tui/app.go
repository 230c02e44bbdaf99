// Package tui is the terminal front end for the floor-plan editor. It
// owns the key and mouse bindings and forwards gestures to the drawing
// session; all geometry decisions stay in the editor and geometry
// packages. One plan unit maps to one terminal cell.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/jay1247sjh/SmartMall-sub005/config"
	"github.com/jay1247sjh/SmartMall-sub005/editor"
	"github.com/jay1247sjh/SmartMall-sub005/geometry"
	"github.com/jay1247sjh/SmartMall-sub005/model"
	"github.com/jay1247sjh/SmartMall-sub005/placement"
)

// canvas margin, in cells, so the status line never collides with the
// drawing surface.
const marginX, marginY = 2, 1

// App drives one interactive editing session over a plan document.
type App struct {
	screen  tcell.Screen
	plan    *model.Plan
	floor   *model.Floor
	session *editor.Session
	engine  *placement.Engine

	areaType    int // index into model.AreaTypes
	status      string
	lastButtons tcell.ButtonMask
	filename    string
	dirty       bool
}

// NewApp wires a session to the first floor of the plan. Plans with no
// floors get a default 80x40 ground floor to draw on.
func NewApp(plan *model.Plan, cfg config.Config, filename string) (*App, error) {
	if len(plan.Floors) == 0 {
		outline := geometry.NewPolygon(
			geometry.Point{X: 0, Y: 0}, geometry.Point{X: 80, Y: 0},
			geometry.Point{X: 80, Y: 40}, geometry.Point{X: 0, Y: 40},
		)
		floor, err := model.NewFloor("Ground", 1, outline)
		if err != nil {
			return nil, err
		}
		plan.Floors = append(plan.Floors, floor)
	}

	app := &App{
		plan:     plan,
		floor:    plan.Floors[0],
		engine:   placement.NewEngine(),
		filename: filename,
	}
	app.session = editor.NewSession(editor.Config{
		GridSize:    cfg.GridSize,
		SnapEnabled: cfg.SnapEnabled,
		MinArea:     cfg.MinArea,
	}, editor.Callbacks{
		OnComplete: app.onComplete,
		OnCancel:   func() { app.status = "drawing cancelled" },
	})
	app.session.SetBoundary(app.floor.Outline)
	app.session.SetSiblings(app.floor.SiblingShapes(""))
	app.session.SetMode(editor.ModeRectangle)
	return app, nil
}

// Run owns the screen for the lifetime of the editor.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	a.screen = screen

	for {
		a.render()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

// handleKey processes one key event; true means quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.session.Cancel()
		return false
	case tcell.KeyEnter:
		if a.session.CanComplete() {
			a.session.Complete()
		}
		return false
	case tcell.KeyCtrlZ:
		if !a.session.Undo() {
			a.status = "nothing to undo"
		}
		return false
	case tcell.KeyCtrlC:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'r':
		a.session.SetMode(editor.ModeRectangle)
		a.status = "rectangle tool: click two corners"
	case 'p':
		a.session.SetMode(editor.ModePolygon)
		a.status = "polygon tool: click vertices, click near the start to close"
	case 's':
		a.session.SetMode(editor.ModeSelect)
		a.status = "select tool"
	case 't':
		a.areaType = (a.areaType + 1) % len(model.AreaTypes)
		a.status = "area type: " + a.currentType().DisplayName()
	case 'w':
		a.save()
	}
	return false
}

// handleMouse forwards clicks and motion to the session. Only the
// press edge of button 1 commits a point.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pt := geometry.Point{X: float64(x - marginX), Y: float64(y - marginY)}

	pressed := ev.Buttons()&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
	a.lastButtons = ev.Buttons()

	if pressed {
		if a.session.State() == editor.StateIdle {
			if !a.session.Start(pt) {
				a.status = "pick a drawing tool first (r or p)"
			}
		} else {
			a.session.AddPoint(pt)
		}
		return
	}
	if a.session.State() == editor.StateDrawing {
		a.session.UpdatePreview(pt)
	}
}

func (a *App) currentType() model.AreaType {
	return model.AreaTypes[a.areaType]
}

// onComplete promotes a valid drawn shape into an area on the floor.
func (a *App) onComplete(r editor.Result) {
	if !r.Valid {
		a.status = "rejected: " + strings.Join(r.Errors, "; ")
		return
	}

	typ := a.currentType()
	area, err := model.NewArea(a.nextName(typ), typ, r.Polygon)
	if err != nil {
		a.status = "rejected: " + err.Error()
		return
	}
	warnings, err := a.floor.AddArea(area)
	if err != nil {
		a.status = "rejected: " + err.Error()
		return
	}
	a.dirty = true
	a.session.SetSiblings(a.floor.SiblingShapes(""))

	msgs := append(r.Warnings, warnings...)
	if placement.IsVerticalConnectionType(typ) && a.engine.RequiresFloorConnection(typ) {
		msgs = append(msgs, typ.DisplayName()+" needs a connection to another floor")
	}
	if len(msgs) > 0 {
		a.status = "placed with warnings: " + strings.Join(msgs, "; ")
	} else {
		a.status = fmt.Sprintf("placed %s (%.1f sq units)", area.Name, area.Area)
	}
}

func (a *App) nextName(typ model.AreaType) string {
	return fmt.Sprintf("%s %d", typ.DisplayName(), len(a.floor.Areas)+1)
}

func (a *App) save() {
	if a.filename == "" {
		a.status = "no file to save to"
		return
	}
	if err := model.SavePlan(a.filename, a.plan); err != nil {
		a.status = "save failed: " + err.Error()
		return
	}
	a.dirty = false
	a.status = "saved " + a.filename
}
