package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"netboard/internal/topology"
	"netboard/tui/styles"
)

// InfoView shows the outcome of a one-shot diagnostic as a modal overlay.
type InfoView struct {
	theme styles.Theme
	sty   *styles.Styles

	title   string
	body    string
	running bool

	width  int
	height int
}

// NewInfoView creates an empty info overlay.
func NewInfoView(theme styles.Theme) InfoView {
	return InfoView{theme: theme, sty: styles.NewStyles(theme)}
}

// SetSize updates the available dimensions.
func (v *InfoView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Start marks a diagnostic as in flight against the named device.
func (v *InfoView) Start(check topology.CheckType, deviceName string) {
	v.title = fmt.Sprintf("%s %s", check, deviceName)
	v.body = "running…"
	v.running = true
}

// SetResult records a completed diagnostic's output.
func (v *InfoView) SetResult(check topology.CheckType, output string, err error) {
	v.running = false
	if err != nil {
		v.body = fmt.Sprintf("Error executing %s; verify the collaborator is reachable.\n\n%v", check, err)
		return
	}
	v.body = output
}

// View renders the overlay.
func (v InfoView) View() string {
	maxWidth := v.width - 10
	if maxWidth < 30 {
		maxWidth = 30
	}
	if maxWidth > 78 {
		maxWidth = 78
	}

	body := wrapText(strings.TrimRight(v.body, "\n"), maxWidth)
	maxLines := v.height - 8
	if maxLines < 4 {
		maxLines = 4
	}
	lines := strings.Split(body, "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], v.sty.TableCellDim.Render("…"))
	}

	content := v.sty.ModalTitle.Render(v.title) + "\n\n" +
		v.sty.ResultText.Render(strings.Join(lines, "\n")) + "\n\n" +
		v.sty.FooterDesc.Render("esc: close")
	modal := v.sty.ModalBorder.Render(content)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}

// wrapText hard-wraps long lines; diagnostic tools emit arbitrary widths.
func wrapText(s string, width int) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		r := []rune(line)
		for len(r) > width {
			out = append(out, string(r[:width]))
			r = r[width:]
		}
		out = append(out, string(r))
	}
	return strings.Join(out, "\n")
}
