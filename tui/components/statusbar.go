package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"netboard/tui/styles"
)

// RenderStatusBar renders the two-line status/footer bar showing the
// interaction mode, selection, scheduler activity, and key bindings.
func RenderStatusBar(theme styles.Theme, mode, selection string, lastTick time.Time, checks, errors, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")

	modeSeg := lipgloss.NewStyle().Foreground(theme.Base0E).Background(bg).Bold(true).
		Render(fmt.Sprintf("mode: %s", mode))

	if selection == "" {
		selection = "(none)"
	}
	selSeg := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg).
		Render(fmt.Sprintf("selected: %s", selection))

	lastStr := "never"
	if !lastTick.IsZero() {
		lastStr = lastTick.Format("15:04:05")
	}
	tickSeg := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg).
		Render(fmt.Sprintf("tick: %s", lastStr))

	checkColor := theme.Base0B
	if errors > 0 {
		checkColor = theme.Base0A
	}
	checkSeg := lipgloss.NewStyle().Foreground(checkColor).Background(bg).
		Render(fmt.Sprintf("%d checks, %d errors", checks, errors))

	topContent := bgStyle.Render(" ") + modeSeg + sep + selSeg + sep + tickSeg + sep + checkSeg
	topWidth := lipgloss.Width(topContent)
	if topWidth < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-topWidth))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keys := bgStyle.Render(" ") +
		keyStyle.Render("1-5") + descStyle.Render(":add") + spacer +
		keyStyle.Render("c") + descStyle.Render(":connect") + spacer +
		keyStyle.Render("e") + descStyle.Render(":edit") + spacer +
		keyStyle.Render("s") + descStyle.Render(":services") + spacer +
		keyStyle.Render("g") + descStyle.Render(":settings") + spacer +
		keyStyle.Render("x") + descStyle.Render(":delete") + spacer +
		keyStyle.Render("?") + descStyle.Render(":help") + spacer +
		keyStyle.Render("q") + descStyle.Render(":quit")

	keysWidth := lipgloss.Width(keys)
	if keysWidth < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-keysWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
