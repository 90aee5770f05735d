package components

import "strings"

// PingHistory renders a window of ping outcomes as a one-row track,
// oldest on the left. Successes draw tall, failures draw low, so a flap
// shows up as a jagged edge at a glance.
func PingHistory(window []bool, width int) string {
	if width < 1 {
		return ""
	}
	if len(window) > width {
		window = window[len(window)-width:]
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(window)))
	for _, ok := range window {
		if ok {
			sb.WriteRune('█')
		} else {
			sb.WriteRune('▁')
		}
	}
	return sb.String()
}
