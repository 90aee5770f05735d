package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"netboard/internal/board"
	"netboard/internal/settings"
	"netboard/internal/topology"
	"netboard/tui/styles"
)

// BoardAction describes what the app should do after a board update.
type BoardAction int

const (
	// BoardNone means continue on the board.
	BoardNone BoardAction = iota
	// BoardOpenEditor means a double click asked for the device editor.
	BoardOpenEditor
)

// BoardView renders the drawing surface and feeds pointer events into the
// interaction machine. The view owns click synthesis: a press/release pair
// without motion in between is a click.
type BoardView struct {
	theme   styles.Theme
	store   *topology.Store
	machine *board.Machine
	canvas  *board.Canvas
	current func() settings.Global

	width   int
	height  int
	pressed bool
	moved   bool
	pointer topology.Point
}

// NewBoardView creates a board over the given store and machine.
func NewBoardView(theme styles.Theme, store *topology.Store, machine *board.Machine, current func() settings.Global) BoardView {
	return BoardView{
		theme:   theme,
		store:   store,
		machine: machine,
		canvas:  board.NewCanvas(1, 1),
		current: current,
		pointer: board.ToSurface(4, 2),
	}
}

// SetSize updates the drawing surface dimensions in terminal cells.
func (v *BoardView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.canvas.Resize(width, height)
}

// SetTheme applies a theme change.
func (v *BoardView) SetTheme(theme styles.Theme) {
	v.theme = theme
}

// Pointer returns the last observed pointer position in surface units.
// New devices are placed here.
func (v BoardView) Pointer() topology.Point {
	return v.pointer
}

// AddDevice places a new device of the given kind at the pointer, seeded
// from the current global settings, and selects it.
func (v *BoardView) AddDevice(kind topology.Kind) *topology.Device {
	gs := v.current()
	d := v.store.Add(gs.SeedDevice(kind, v.pointer, v.store.NextOrdinal()))
	v.machine.Click(d.Pos)
	return d
}

// Update consumes pointer events. Mouse coordinates must already be local
// to the board body (header rows subtracted by the caller).
func (v BoardView) Update(msg tea.Msg) (BoardView, BoardAction) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return v, BoardNone
	}
	p := board.ToSurface(mouse.X, mouse.Y)
	v.pointer = p

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button == tea.MouseButtonLeft {
			v.machine.Press(p)
			v.pressed = true
			v.moved = false
		}
	case tea.MouseActionMotion:
		if v.pressed {
			v.moved = true
			v.machine.Move(p)
		}
	case tea.MouseActionRelease:
		if !v.pressed {
			break
		}
		v.pressed = false
		v.machine.Release(p)
		if !v.moved {
			if v.machine.Click(p) == board.EffectOpenEditor {
				return v, BoardOpenEditor
			}
		}
	}
	return v, BoardNone
}

// View renders one frame of the surface.
func (v BoardView) View() string {
	source, _ := v.machine.ConnectSource()
	return v.canvas.Render(v.store, v.machine.SelectedID(), source, v.current())
}
