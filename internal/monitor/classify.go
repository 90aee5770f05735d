package monitor

import "strings"

// Verdict is the status signal extracted from a diagnostic's textual output.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictOnline
	VerdictOffline
	VerdictWarning
)

// Marker substrings recognized in diagnostic output. The collaborator
// returns free-form human-readable text; the presence of these substrings is
// the only structured signal the scheduler consumes. Keeping them in one
// place lets the classifier be swapped for structured responses later
// without touching the scheduler.
var (
	onlineMarkers  = []string{"bytes from"}
	offlineMarkers = []string{"timeout", "timed out", "100% packet loss"}
	warningMarkers = []string{"unreachable"}
)

// Classify maps a raw diagnostic output to a Verdict. Offline markers take
// precedence over warning markers, which take precedence over the online
// marker, matching how ping output combines them.
func Classify(output string) Verdict {
	lower := strings.ToLower(output)
	for _, m := range offlineMarkers {
		if strings.Contains(lower, m) {
			return VerdictOffline
		}
	}
	for _, m := range warningMarkers {
		if strings.Contains(lower, m) {
			return VerdictWarning
		}
	}
	for _, m := range onlineMarkers {
		if strings.Contains(lower, m) {
			return VerdictOnline
		}
	}
	return VerdictNone
}

// PingSucceeded reports whether a ping output indicates at least one reply.
// This feeds the hysteresis window, independently of Classify.
func PingSucceeded(output string) bool {
	return strings.Contains(strings.ToLower(output), onlineMarkers[0])
}
