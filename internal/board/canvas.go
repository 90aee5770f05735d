package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"netboard/internal/monitor"
	"netboard/internal/settings"
	"netboard/internal/topology"
)

// Surface units per terminal cell. Cells are roughly twice as tall as they
// are wide, so the vertical scale is doubled to keep the board square-ish.
const (
	CellW = 10
	CellH = 20
)

// GridStep is the spacing of the background grid in surface units.
const GridStep = 40

const maxResultWidth = 24

var statusColors = map[topology.Status]string{
	topology.StatusOnline:  "#4caf50",
	topology.StatusOffline: "#f44336",
	topology.StatusWarning: "#2196f3",
}

var kindColors = map[topology.Kind]string{
	topology.KindRouter:      "#2196f3",
	topology.KindSwitch:      "#9c27b0",
	topology.KindAccessPoint: "#00bcd4",
	topology.KindServer:      "#795548",
	topology.KindClient:      "#607d8b",
}

const (
	gridColor      = "#3a3a3a"
	edgeColor      = "#8a8a8a"
	nameColor      = "#c0c0c0"
	resultColor    = "#808080"
	selectionColor = "#ffd700"
)

// DeviceColor resolves the fill color for a device: explicit override,
// then status, then kind. An unknown status falls through to the kind
// color so fresh devices keep their identity until the first check lands.
func DeviceColor(d *topology.Device) string {
	if d.Color != "" {
		return d.Color
	}
	if c, ok := statusColors[d.Status]; ok {
		return c
	}
	if c, ok := kindColors[d.Kind]; ok {
		return c
	}
	return nameColor
}

type cell struct {
	r     rune
	color string
}

// Canvas rasterizes the topology onto a fixed grid of terminal cells.
// It only ever reads from the store; one Render call is one frame.
type Canvas struct {
	w, h  int
	cells []cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

// ToCell maps a surface point to a terminal cell.
func ToCell(p topology.Point) (col, row int) {
	return int(p.X / CellW), int(p.Y / CellH)
}

// ToSurface maps a terminal cell to the surface point at its origin.
func ToSurface(col, row int) topology.Point {
	return topology.Point{X: float64(col * CellW), Y: float64(row * CellH)}
}

func (c *Canvas) set(col, row int, r rune, color string) {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return
	}
	c.cells[row*c.w+col] = cell{r: r, color: color}
}

func (c *Canvas) at(col, row int) rune {
	if col < 0 || col >= c.w || row < 0 || row >= c.h {
		return 0
	}
	return c.cells[row*c.w+col].r
}

// Render draws one frame: grid, edges, devices, names and the per-service
// result lines that are flagged for on-device display.
func (c *Canvas) Render(store *topology.Store, selectedID, sourceID string, gs settings.Global) string {
	c.clear()
	devices := store.All()

	if len(devices) > 0 {
		c.drawGrid()
	}
	byID := make(map[string]*topology.Device, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
	}
	for _, d := range devices {
		for _, nid := range d.Connections {
			// Each edge appears once per endpoint, draw it once. Edges
			// to an already-removed neighbor are skipped, not an error.
			n, ok := byID[nid]
			if !ok || d.ID > nid {
				continue
			}
			c.drawEdge(d.Pos, n.Pos)
		}
	}
	for _, d := range devices {
		c.drawDevice(d, d.ID == selectedID, d.ID == sourceID, gs)
	}
	return c.flush()
}

func (c *Canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

func (c *Canvas) drawGrid() {
	colStep := GridStep / CellW
	rowStep := GridStep / CellH
	for row := 0; row < c.h; row += rowStep {
		for col := 0; col < c.w; col += colStep {
			c.set(col, row, '·', gridColor)
		}
	}
}

// drawEdge rasterizes a straight line between two surface points with a
// rune picked from the line's overall slope.
func (c *Canvas) drawEdge(a, b topology.Point) {
	x0, y0 := ToCell(a)
	x1, y1 := ToCell(b)

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	var r rune
	switch {
	case dy == 0:
		r = '─'
	case dx == 0 || dy > dx:
		r = '│'
	case dx > 3*dy:
		r = '─'
	case (x1-x0 > 0) == (y1-y0 > 0):
		r = '╲'
	default:
		r = '╱'
	}

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x0, y0, r, edgeColor)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) drawDevice(d *topology.Device, selected, source bool, gs settings.Global) {
	col, row := ToCell(d.Pos)
	color := DeviceColor(d)

	c.set(col, row, '●', color)
	switch {
	case source:
		c.set(col-1, row, '>', selectionColor)
		c.set(col+1, row, '<', selectionColor)
	case selected:
		c.set(col-1, row, '[', selectionColor)
		c.set(col+1, row, ']', selectionColor)
	}

	c.writeText(col, row+1, d.Name, nameColor)

	eff := monitor.Resolve(d, gs)
	line := row + 2
	for _, ct := range topology.CheckTypes {
		svc := eff.Service(ct)
		if !svc.DisplayOnDevice {
			continue
		}
		raw := d.ServiceState(ct).LastResult
		if raw == "" {
			continue
		}
		c.writeText(col, line, resultSummary(ct, raw), resultColor)
		line++
	}
}

// writeText centers a string on the given column, clipping at the edges.
func (c *Canvas) writeText(col, row int, s, color string) {
	runes := []rune(s)
	start := col - len(runes)/2
	for i, r := range runes {
		c.set(start+i, row, r, color)
	}
}

// resultSummary reduces a raw diagnostic payload to one short line.
func resultSummary(ct topology.CheckType, raw string) string {
	first := raw
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	first = strings.TrimSpace(first)
	s := fmt.Sprintf("%s: %s", ct, first)
	if r := []rune(s); len(r) > maxResultWidth {
		s = string(r[:maxResultWidth-1]) + "…"
	}
	return s
}

// flush turns the cell grid into a styled string, one lipgloss span per
// run of same-colored cells.
func (c *Canvas) flush() string {
	var b strings.Builder
	for row := 0; row < c.h; row++ {
		var run []rune
		runColor := ""
		emit := func() {
			if len(run) == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(string(run)))
			}
			run = run[:0]
		}
		for col := 0; col < c.w; col++ {
			cl := c.cells[row*c.w+col]
			r := cl.r
			if r == 0 {
				r = ' '
			}
			if cl.color != runColor {
				emit()
				runColor = cl.color
			}
			run = append(run, r)
		}
		emit()
		if row < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
