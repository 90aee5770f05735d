package probe

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestServer() *Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewServer(log)
}

func getResponse(t *testing.T, s *Server, path string) Response {
	t.Helper()
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("GET %s: status %d", path, resp.StatusCode)
	}
	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return r
}

func TestPingEndpointReportsCommandOutput(t *testing.T) {
	s := newTestServer()
	var gotArgs []string
	s.runCmd = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotArgs = append([]string{name}, args...)
		return []byte("64 bytes from 10.0.0.1: icmp_seq=1"), nil
	}

	r := getResponse(t, s, "/api/ping/10.0.0.1")
	if r.Status != statusSuccess {
		t.Errorf("status = %s", r.Status)
	}
	if !strings.Contains(r.Output, "64 bytes from") {
		t.Errorf("output = %q", r.Output)
	}
	if gotArgs[0] != "ping" || gotArgs[len(gotArgs)-1] != "10.0.0.1" {
		t.Errorf("command = %v", gotArgs)
	}
}

func TestPingEndpointKeepsOutputOnFailure(t *testing.T) {
	s := newTestServer()
	s.runCmd = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte("Request timeout for icmp_seq 1"), errors.New("exit status 1")
	}

	r := getResponse(t, s, "/api/ping/10.0.0.9")
	if r.Status != statusError {
		t.Errorf("status = %s, want error", r.Status)
	}
	if r.Output != "Request timeout for icmp_seq 1" {
		t.Errorf("failed command's output lost: %q", r.Output)
	}
}

func TestPingEndpointUsesErrorTextWhenCommandIsSilent(t *testing.T) {
	s := newTestServer()
	s.runCmd = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return nil, errors.New("exec: \"ping\": executable file not found")
	}

	r := getResponse(t, s, "/api/ping/10.0.0.9")
	if r.Status != statusError || !strings.Contains(r.Output, "not found") {
		t.Errorf("response = %+v", r)
	}
}

func TestSNMPTestEndpoint(t *testing.T) {
	s := newTestServer()
	s.sysDescr = func(host, community string, _ time.Duration) (string, error) {
		if host != "10.0.0.1" || community != "branch" {
			t.Errorf("queried %s/%s", host, community)
		}
		return "RouterOS RB4011", nil
	}

	r := getResponse(t, s, "/api/snmp-test/10.0.0.1/branch")
	if r.Status != statusSuccess || !strings.Contains(r.Output, "RouterOS RB4011") {
		t.Errorf("response = %+v", r)
	}
}

func TestUptimeEndpoint(t *testing.T) {
	s := newTestServer()
	s.uptime = func(_, _ string, _ time.Duration) (time.Duration, error) {
		return 49*time.Hour + 5*time.Minute, nil
	}

	r := getResponse(t, s, "/api/uptime/10.0.0.1/public")
	if r.Status != statusSuccess || r.Output != "up 2d 1h 5m" {
		t.Errorf("response = %+v", r)
	}
}

func TestLANTestEndpointReportsScanErrors(t *testing.T) {
	s := newTestServer()
	s.lanScan = func(_ context.Context, _ string) (string, error) {
		return "", errors.New("nmap binary not found")
	}

	r := getResponse(t, s, "/api/lan-test/192.168.1.0")
	if r.Status != statusError || !strings.Contains(r.Output, "nmap binary not found") {
		t.Errorf("response = %+v", r)
	}
}

func TestTracerouteArgs(t *testing.T) {
	if got := tracerouteArgs("10.0.0.1", 0); !reflect.DeepEqual(got, []string{"traceroute", "10.0.0.1"}) {
		t.Errorf("unbounded args = %v", got)
	}
	if got := tracerouteArgs("10.0.0.1", 8); !reflect.DeepEqual(got, []string{"traceroute", "-m", "8", "10.0.0.1"}) {
		t.Errorf("bounded args = %v", got)
	}
}

func TestPingArgs(t *testing.T) {
	got := pingArgs("10.0.0.1")
	if !reflect.DeepEqual(got, []string{"ping", "-c", "4", "10.0.0.1"}) {
		t.Errorf("args = %v", got)
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{90 * time.Second, "1m"},
		{3 * time.Hour, "3h 0m"},
		{26*time.Hour + 30*time.Minute, "1d 2h 30m"},
	}
	for _, tc := range cases {
		if got := formatUptime(tc.d); got != tc.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
