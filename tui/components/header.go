package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"netboard/tui/styles"
)

// RenderHeader renders the top header bar with app name, device count,
// scheduler liveness, and version.
func RenderHeader(theme styles.Theme, deviceCount, edgeCount int, schedulerUp bool, width int, ver, build string) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(theme.Base01).
		Bold(true).
		Render("netboard")

	center := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(theme.Base01).
		Render(fmt.Sprintf("%d devices, %d links", deviceCount, edgeCount))

	status := "STOPPED"
	statusColor := theme.Base08
	if schedulerUp {
		status = "MONITORING"
		statusColor = theme.Base0B
	}
	right := lipgloss.NewStyle().
		Foreground(statusColor).
		Background(theme.Base01).
		Render(status)

	versionStr := "v" + ver
	if build != "" {
		versionStr += "  " + build
	}
	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(theme.Base01).
		Render(versionStr)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s ", left, center, right, versionSeg)

	return lipgloss.NewStyle().
		Background(theme.Base01).
		Width(width).
		Render(content)
}
