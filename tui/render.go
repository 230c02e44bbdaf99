package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/jay1247sjh/SmartMall-sub005/geometry"
)

var (
	styleOutline = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// render repaints the whole screen: floor outline, placed areas, the
// gesture in progress, and the status line.
func (a *App) render() {
	a.screen.Clear()

	a.drawPolygon(a.floor.Outline, styleOutline, '·')

	for _, area := range a.floor.Areas {
		style := tcell.StyleDefault.Foreground(tcell.GetColor(area.Color))
		a.drawPolygon(area.Shape, style, '#')
		a.drawLabel(area.Shape, area.Name, style)
	}

	a.drawSession()
	a.drawStatus()
	a.screen.Show()
}

// drawSession renders the committed points of the active gesture plus
// the rubber-band edge to the preview point.
func (a *App) drawSession() {
	points := a.session.Points()
	if len(points) == 0 {
		return
	}
	for i := 1; i < len(points); i++ {
		a.drawLine(points[i-1], points[i], styleActive, '#')
	}
	if pv, ok := a.session.Preview(); ok {
		a.drawLine(points[len(points)-1], pv, styleActive, '+')
	}
	for _, p := range points {
		a.setCell(p, 'o', styleActive)
	}
}

func (a *App) drawPolygon(p geometry.Polygon, style tcell.Style, edge rune) {
	n := len(p.Vertices)
	if n == 0 {
		return
	}
	edges := n
	if !p.Closed {
		edges = n - 1
	}
	for i := 0; i < edges; i++ {
		s := p.Edge(i)
		a.drawLine(s.Start, s.End, style, edge)
	}
	for _, v := range p.Vertices {
		a.setCell(v, '+', style)
	}
}

// drawLine rasterizes a straight edge cell by cell.
func (a *App) drawLine(from, to geometry.Point, style tcell.Style, ch rune) {
	x0, y0 := int(math.Round(from.X)), int(math.Round(from.Y))
	x1, y1 := int(math.Round(to.X)), int(math.Round(to.Y))

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		a.screen.SetContent(x0+marginX, y0+marginY, ch, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (a *App) drawLabel(p geometry.Polygon, text string, style tcell.Style) {
	c := geometry.Centroid(p)
	x := int(math.Round(c.X)) + marginX - len(text)/2
	y := int(math.Round(c.Y)) + marginY
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) setCell(p geometry.Point, ch rune, style tcell.Style) {
	a.screen.SetContent(int(math.Round(p.X))+marginX, int(math.Round(p.Y))+marginY, ch, nil, style)
}

func (a *App) drawStatus() {
	w, h := a.screen.Size()
	mark := ""
	if a.dirty {
		mark = "*"
	}
	line := fmt.Sprintf(" %s%s | %s/%s | type: %s | %s ",
		a.plan.Name, mark,
		a.session.Mode(), a.session.State(),
		a.currentType().DisplayName(),
		a.status)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		a.screen.SetContent(x, h-1, ch, nil, styleStatus)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
