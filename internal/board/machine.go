package board

import (
	"time"

	"netboard/internal/topology"
)

// State identifies the interaction mode of the drawing surface.
type State int

const (
	StateIdle State = iota
	StateSelected
	StateDragging
	StateConnecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateDragging:
		return "dragging"
	case StateConnecting:
		return "connecting"
	}
	return "unknown"
}

// Effect is a side effect the machine asks its caller to perform. The
// machine itself only tracks selection, drag and connect state and issues
// topology mutations.
type Effect int

const (
	EffectNone Effect = iota
	EffectOpenEditor
)

// DoubleClickWindow is the wall-clock gap under which two consecutive
// clicks count as a double click.
const DoubleClickWindow = 300 * time.Millisecond

// Machine consumes pointer events on the drawing surface and drives
// selection, dragging and connect-mode linking against the topology store.
type Machine struct {
	store *topology.Store

	state      State
	selectedID string
	sourceID   string
	lastClick  time.Time

	now func() time.Time
}

func NewMachine(store *topology.Store) *Machine {
	return &Machine{store: store, now: time.Now}
}

func (m *Machine) State() State { return m.state }

// Selected returns the currently selected device, if any.
func (m *Machine) Selected() (*topology.Device, bool) {
	if m.selectedID == "" {
		return nil, false
	}
	return m.store.Get(m.selectedID)
}

func (m *Machine) SelectedID() string { return m.selectedID }

// ConnectSource returns the device the pending connect was armed from.
func (m *Machine) ConnectSource() (string, bool) {
	return m.sourceID, m.state == StateConnecting
}

// Press begins a drag on the device under the pointer, or deselects when
// the press lands on empty surface. Presses are ignored while a connect is
// pending; that flow resolves on the click.
func (m *Machine) Press(p topology.Point) {
	if m.state == StateConnecting {
		return
	}
	d, ok := m.store.HitTest(p)
	if !ok {
		m.state = StateIdle
		m.selectedID = ""
		return
	}
	m.selectedID = d.ID
	m.state = StateDragging
}

// Move drags the pressed device under the pointer. Every motion event
// writes the position through, no throttling.
func (m *Machine) Move(p topology.Point) {
	if m.state != StateDragging {
		return
	}
	m.store.Apply(m.selectedID, func(d *topology.Device) {
		d.Pos = p
	})
}

// Release ends a drag, keeping the device selected. Releases outside the
// surface count the same as releases on it.
func (m *Machine) Release(topology.Point) {
	if m.state == StateDragging {
		m.state = StateSelected
	}
}

// Click resolves a pending connect, or selects the device under the
// pointer and reports a double click as an editor-open request.
func (m *Machine) Click(p topology.Point) Effect {
	if m.state == StateConnecting {
		m.finishConnect(p)
		return EffectNone
	}
	d, ok := m.store.HitTest(p)
	if !ok {
		m.state = StateIdle
		m.selectedID = ""
		return EffectNone
	}
	m.selectedID = d.ID
	m.state = StateSelected

	now := m.now()
	// The window is measured between consecutive device clicks regardless
	// of which device was hit, so two quick clicks on different devices
	// also open the editor.
	double := !m.lastClick.IsZero() && now.Sub(m.lastClick) < DoubleClickWindow
	m.lastClick = now
	if double {
		return EffectOpenEditor
	}
	return EffectNone
}

func (m *Machine) finishConnect(p topology.Point) {
	source := m.sourceID
	m.sourceID = ""
	d, ok := m.store.HitTest(p)
	if !ok || d.ID == source {
		m.state = StateIdle
		m.selectedID = ""
		return
	}
	m.store.Connect(source, d.ID)
	m.selectedID = d.ID
	m.state = StateSelected
}

// StartConnect arms connect mode from the current selection.
func (m *Machine) StartConnect() {
	if m.state != StateSelected || m.selectedID == "" {
		return
	}
	m.sourceID = m.selectedID
	m.state = StateConnecting
}

// Cancel abandons a pending connect, keeping the source selected.
func (m *Machine) Cancel() {
	if m.state != StateConnecting {
		return
	}
	m.selectedID = m.sourceID
	m.sourceID = ""
	m.state = StateSelected
}

// Delete removes the selected device along with all of its edges.
func (m *Machine) Delete() {
	if m.state != StateSelected || m.selectedID == "" {
		return
	}
	id := m.selectedID
	m.store.Remove(id)
	m.DeviceRemoved(id)
}

// DeviceRemoved drops any selection or pending connect referencing a
// device that is no longer in the store.
func (m *Machine) DeviceRemoved(id string) {
	if m.selectedID == id || m.sourceID == id {
		m.selectedID = ""
		m.sourceID = ""
		m.state = StateIdle
	}
}
