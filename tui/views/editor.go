package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"netboard/internal/topology"
	"netboard/tui/keys"
	"netboard/tui/styles"
)

// EditorAction describes what the app should do after an editor update.
type EditorAction int

const (
	// EditorNone means continue editing.
	EditorNone EditorAction = iota
	// EditorClose means the user cancelled without saving.
	EditorClose
	// EditorSaved means the device was updated in the store.
	EditorSaved
)

// Editor field indices.
const (
	editorFieldName = iota
	editorFieldAddress
	editorFieldCommunity
	editorFieldNetwork
	editorFieldVendor
	editorFieldColor
	editorFieldStatus
	editorFieldPingInterval
	editorFieldPingAttempts
	editorFieldCount
)

var editorLabels = [editorFieldCount]string{
	"Name",
	"Address",
	"SNMP community",
	"Network",
	"Vendor",
	"Color (hex, empty = auto)",
	"Status",
	"Ping interval (s, empty = default)",
	"Ping attempts (empty = default)",
}

// editorStatuses is the cycle order for the manual status override. The
// scheduler keeps writing over a manual value on its next completed check;
// the override is for devices it cannot reach or does not monitor.
var editorStatuses = []topology.Status{
	topology.StatusUnknown,
	topology.StatusOnline,
	topology.StatusOffline,
	topology.StatusWarning,
}

// EditorView is a modal form for one device's identity and overrides.
type EditorView struct {
	theme styles.Theme
	sty   *styles.Styles
	store *topology.Store

	deviceID    string
	title       string
	cursor      int
	statusIndex int
	inputs      [editorFieldCount]textinput.Model

	width  int
	height int
	err    string
}

// NewEditorView creates an editor populated from the device's current
// record.
func NewEditorView(theme styles.Theme, store *topology.Store, d *topology.Device) EditorView {
	v := EditorView{
		theme:    theme,
		sty:      styles.NewStyles(theme),
		store:    store,
		deviceID: d.ID,
		title:    fmt.Sprintf("Edit %s (%s)", d.Name, d.Kind),
	}
	for i := range v.inputs {
		in := textinput.New()
		in.CharLimit = 64
		in.Width = 36
		v.inputs[i] = in
	}
	v.inputs[editorFieldName].SetValue(d.Name)
	v.inputs[editorFieldAddress].SetValue(d.Address)
	v.inputs[editorFieldAddress].Placeholder = "10.0.0.1"
	v.inputs[editorFieldCommunity].SetValue(d.SNMPCommunity)
	v.inputs[editorFieldCommunity].Placeholder = "public"
	v.inputs[editorFieldNetwork].SetValue(d.Network)
	v.inputs[editorFieldNetwork].Placeholder = "192.168.1.0/24"
	v.inputs[editorFieldVendor].SetValue(d.Vendor)
	v.inputs[editorFieldColor].SetValue(d.Color)
	v.inputs[editorFieldColor].Placeholder = "#2196f3"
	for i, st := range editorStatuses {
		if st == d.Status {
			v.statusIndex = i
			break
		}
	}
	if d.PingInterval != nil {
		v.inputs[editorFieldPingInterval].SetValue(strconv.Itoa(*d.PingInterval))
	}
	if d.PingAttempts != nil {
		v.inputs[editorFieldPingAttempts].SetValue(strconv.Itoa(*d.PingAttempts))
	}
	v.inputs[editorFieldName].Focus()
	return v
}

// SetSize updates the available dimensions.
func (v *EditorView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v *EditorView) focusInput() {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	if v.cursor != editorFieldStatus {
		v.inputs[v.cursor].Focus()
	}
}

// Update handles messages for the editor.
func (v EditorView) Update(msg tea.Msg) (EditorView, tea.Cmd, EditorAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil, EditorNone
	}

	switch {
	case key.Matches(keyMsg, keys.DefaultKeyMap.Escape):
		return v, nil, EditorClose

	case key.Matches(keyMsg, keys.DefaultKeyMap.Enter):
		return v.save()

	case key.Matches(keyMsg, keys.DefaultKeyMap.Up), keyMsg.String() == "shift+tab":
		v.cursor--
		if v.cursor < 0 {
			v.cursor = editorFieldCount - 1
		}
		v.focusInput()
		return v, nil, EditorNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.Down), key.Matches(keyMsg, keys.DefaultKeyMap.Tab):
		v.cursor++
		if v.cursor >= editorFieldCount {
			v.cursor = 0
		}
		v.focusInput()
		return v, nil, EditorNone

	case key.Matches(keyMsg, keys.DefaultKeyMap.Left):
		if v.cursor == editorFieldStatus {
			v.statusIndex--
			if v.statusIndex < 0 {
				v.statusIndex = len(editorStatuses) - 1
			}
			return v, nil, EditorNone
		}

	case key.Matches(keyMsg, keys.DefaultKeyMap.Right):
		if v.cursor == editorFieldStatus {
			v.statusIndex = (v.statusIndex + 1) % len(editorStatuses)
			return v, nil, EditorNone
		}
	}

	if v.cursor == editorFieldStatus {
		return v, nil, EditorNone
	}
	var cmd tea.Cmd
	v.inputs[v.cursor], cmd = v.inputs[v.cursor].Update(msg)
	return v, cmd, EditorNone
}

// save validates the numeric overrides and writes the device back as one
// atomic replacement.
func (v EditorView) save() (EditorView, tea.Cmd, EditorAction) {
	pingInterval, err := optionalPositiveInt(v.inputs[editorFieldPingInterval].Value())
	if err != nil {
		v.err = "Ping interval must be a positive integer"
		return v, nil, EditorNone
	}
	pingAttempts, err := optionalPositiveInt(v.inputs[editorFieldPingAttempts].Value())
	if err != nil {
		v.err = "Ping attempts must be a positive integer"
		return v, nil, EditorNone
	}

	name := strings.TrimSpace(v.inputs[editorFieldName].Value())
	if name == "" {
		v.err = "Name must not be empty"
		return v, nil, EditorNone
	}

	_, ok := v.store.Apply(v.deviceID, func(d *topology.Device) {
		d.Name = name
		d.Address = strings.TrimSpace(v.inputs[editorFieldAddress].Value())
		d.SNMPCommunity = strings.TrimSpace(v.inputs[editorFieldCommunity].Value())
		d.Network = strings.TrimSpace(v.inputs[editorFieldNetwork].Value())
		d.Vendor = strings.TrimSpace(v.inputs[editorFieldVendor].Value())
		d.Color = strings.TrimSpace(v.inputs[editorFieldColor].Value())
		d.Status = editorStatuses[v.statusIndex]
		d.PingInterval = pingInterval
		d.PingAttempts = pingAttempts
	})
	if !ok {
		// Device was deleted out from under the editor.
		return v, nil, EditorClose
	}
	v.err = ""
	return v, nil, EditorSaved
}

// optionalPositiveInt parses an override field: empty means "inherit".
func optionalPositiveInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid value %q", s)
	}
	return &n, nil
}

// View renders the editor as a centered modal.
func (v EditorView) View() string {
	activeLabel := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)

	var lines []string
	lines = append(lines, v.sty.ModalTitle.Render(v.title), "")
	for i := 0; i < editorFieldCount; i++ {
		label := v.sty.FormLabel.Render(editorLabels[i])
		if i == v.cursor {
			label = activeLabel.Render(editorLabels[i])
		}
		if i == editorFieldStatus {
			lines = append(lines, label, fmt.Sprintf("  < %s >", editorStatuses[v.statusIndex]))
			continue
		}
		lines = append(lines, label, "  "+v.inputs[i].View())
	}
	if v.err != "" {
		lines = append(lines, "", v.sty.ErrorText.Render(v.err))
	}
	lines = append(lines, "", v.sty.FooterDesc.Render("enter: save   esc: cancel   tab: next field   left/right: status"))

	modal := v.sty.ModalBorder.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}
