package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"netboard/internal/monitor"
	"netboard/internal/settings"
	"netboard/internal/topology"
	"netboard/tui/components"
	"netboard/tui/keys"
	"netboard/tui/styles"
)

// ServicesAction describes what the app should do after a services update.
type ServicesAction int

const (
	// ServicesNone means continue in the services view.
	ServicesNone ServicesAction = iota
	// ServicesClose means the user is done.
	ServicesClose
)

// ServicesView is a modal listing one device's recurring checks with
// their effective configuration, letting the user toggle and tune them.
type ServicesView struct {
	theme styles.Theme
	sty   *styles.Styles
	store *topology.Store

	deviceID string
	current  func() settings.Global
	window   func(id string) []bool

	cursor int
	width  int
	height int
}

// NewServicesView creates the services modal for a device. window supplies
// the recent ping outcomes for the history track.
func NewServicesView(theme styles.Theme, store *topology.Store, d *topology.Device, current func() settings.Global, window func(id string) []bool) ServicesView {
	return ServicesView{
		theme:    theme,
		sty:      styles.NewStyles(theme),
		store:    store,
		deviceID: d.ID,
		current:  current,
		window:   window,
	}
}

// SetSize updates the available dimensions.
func (v *ServicesView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

func (v ServicesView) checkType() topology.CheckType {
	return topology.CheckTypes[v.cursor]
}

// Update handles messages for the services view.
func (v ServicesView) Update(msg tea.Msg) (ServicesView, ServicesAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, ServicesNone
	}

	switch {
	case key.Matches(keyMsg, keys.DefaultKeyMap.Escape):
		return v, ServicesClose

	case key.Matches(keyMsg, keys.DefaultKeyMap.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, keys.DefaultKeyMap.Down):
		if v.cursor < len(topology.CheckTypes)-1 {
			v.cursor++
		}

	case keyMsg.String() == " ", key.Matches(keyMsg, keys.DefaultKeyMap.Enter):
		v.toggleEnabled()
	case keyMsg.String() == "d":
		v.toggleDisplay()
	case key.Matches(keyMsg, keys.DefaultKeyMap.Left):
		v.adjustInterval(-30)
	case key.Matches(keyMsg, keys.DefaultKeyMap.Right):
		v.adjustInterval(30)
	}
	return v, ServicesNone
}

// toggleEnabled flips the effective enabled flag into an explicit
// per-device override.
func (v *ServicesView) toggleEnabled() {
	ct := v.checkType()
	gs := v.current()
	v.store.Apply(v.deviceID, func(d *topology.Device) {
		next := !monitor.Resolve(d, gs).Service(ct).Enabled
		d.Service(ct).Enabled = &next
	})
}

func (v *ServicesView) toggleDisplay() {
	ct := v.checkType()
	gs := v.current()
	v.store.Apply(v.deviceID, func(d *topology.Device) {
		next := !monitor.Resolve(d, gs).Service(ct).DisplayOnDevice
		d.Service(ct).DisplayOnDevice = &next
	})
}

func (v *ServicesView) adjustInterval(delta int) {
	ct := v.checkType()
	gs := v.current()
	v.store.Apply(v.deviceID, func(d *topology.Device) {
		next := monitor.Resolve(d, gs).Service(ct).Interval + delta
		if next < 5 {
			next = 5
		}
		d.Service(ct).Interval = &next
	})
}

// View renders the services modal.
func (v ServicesView) View() string {
	d, ok := v.store.Get(v.deviceID)
	if !ok {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
			v.sty.ModalBorder.Render("device removed"))
	}
	cfg := monitor.Resolve(d, v.current())

	mark := func(b bool) string {
		if b {
			return "[x]"
		}
		return "[ ]"
	}

	var lines []string
	lines = append(lines,
		v.sty.ModalTitle.Render(fmt.Sprintf("Services: %s", d.Name)),
		"",
		v.sty.TableHeader.Render(fmt.Sprintf("  %-8s %-4s %-9s %-5s %-9s %s",
			"check", "on", "interval", "show", "last", "result")),
	)
	for i, ct := range topology.CheckTypes {
		svc := cfg.Service(ct)
		state := d.ServiceState(ct)

		last := "never"
		if !state.LastCheck.IsZero() {
			last = state.LastCheck.Format("15:04:05")
		}
		result := state.LastResult
		if j := strings.IndexByte(result, '\n'); j >= 0 {
			result = result[:j]
		}
		if r := []rune(result); len(r) > 24 {
			result = string(r[:23]) + "…"
		}

		row := fmt.Sprintf("  %-8s %-4s %-9s %-5s %-9s %s",
			ct, mark(svc.Enabled), fmt.Sprintf("%ds", svc.Interval),
			mark(svc.DisplayOnDevice), last, result)
		if i == v.cursor {
			lines = append(lines, v.sty.TableRowSel.Render(row))
		} else {
			lines = append(lines, v.sty.TableRow.Render(row))
		}
	}

	if v.window != nil {
		track := components.PingHistory(v.window(d.ID), cfg.PingAttempts)
		lines = append(lines, "",
			v.sty.FormLabel.Render("ping history ")+v.sty.SparklineStyle.Render(track))
	}
	lines = append(lines, "",
		v.sty.FooterDesc.Render("space: toggle   d: show on board   left/right: interval   esc: close"))

	modal := v.sty.ModalBorder.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}
