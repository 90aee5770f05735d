package monitor

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   Verdict
	}{
		{"ping reply", "64 bytes from 10.0.0.1: icmp_seq=1 ttl=64 time=0.3 ms", VerdictOnline},
		{"request timeout", "Request timeout for icmp_seq 1", VerdictOffline},
		{"timed out", "ping: connection timed out", VerdictOffline},
		{"total loss", "4 packets transmitted, 0 received, 100% packet loss", VerdictOffline},
		{"host unreachable", "From 10.0.0.254 icmp_seq=1 Destination Host Unreachable", VerdictWarning},
		{"no signal", "PING 10.0.0.1 (10.0.0.1) 56(84) bytes of data.", VerdictNone},
		{"empty", "", VerdictNone},
		{"offline beats warning", "Request timeout: destination unreachable", VerdictOffline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.output); got != tt.want {
				t.Errorf("Classify(%q) = %d, want %d", tt.output, got, tt.want)
			}
		})
	}
}

func TestPingSucceeded(t *testing.T) {
	if !PingSucceeded("64 bytes from 10.0.0.1") {
		t.Errorf("reply output should count as success")
	}
	if PingSucceeded("Request timeout for icmp_seq 1") {
		t.Errorf("timeout output should not count as success")
	}
}
