package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"netboard/internal/topology"
)

func TestClientRunDecodesOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ping/10.0.0.1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"success","output":"64 bytes from 10.0.0.1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.Run(context.Background(), topology.CheckPing, "10.0.0.1", "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "64 bytes from 10.0.0.1" {
		t.Errorf("output = %q", out)
	}
}

func TestClientRunErrorStatusIsStillACompletedCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","output":"Request timeout for icmp_seq 1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.Run(context.Background(), topology.CheckPing, "10.0.0.9", "")
	if err != nil {
		t.Fatalf("negative diagnostic must not be a transport error: %v", err)
	}
	if out != "Request timeout for icmp_seq 1" {
		t.Errorf("output = %q", out)
	}
}

func TestClientRunMalformedBodyFallsBackToRawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("upstream proxy timeout"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.Run(context.Background(), topology.CheckSNMP, "10.0.0.1", "public")
	if err != nil {
		t.Fatalf("malformed body must not be a transport error: %v", err)
	}
	if out != "upstream proxy timeout" {
		t.Errorf("output = %q", out)
	}
}

func TestClientRunTransportFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1") // nothing listens here
	if _, err := c.Run(context.Background(), topology.CheckPing, "10.0.0.1", ""); err == nil {
		t.Errorf("expected a transport error")
	}
}

func TestCheckPaths(t *testing.T) {
	cases := []struct {
		check topology.CheckType
		want  string
	}{
		{topology.CheckPing, "/api/ping/10.0.0.1"},
		{topology.CheckTraceroute, "/api/traceroute/10.0.0.1"},
		{topology.CheckSNMP, "/api/snmp-test/10.0.0.1/public"},
		{topology.CheckUptime, "/api/uptime/10.0.0.1/public"},
		{topology.CheckLAN, "/api/lan-test/10.0.0.1"},
		{topology.CheckVia, "/api/via-test/10.0.0.1"},
	}
	for _, tc := range cases {
		got, err := checkPath(tc.check, "10.0.0.1", "public")
		if err != nil {
			t.Errorf("%s: %v", tc.check, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: path = %s, want %s", tc.check, got, tc.want)
		}
	}

	if _, err := checkPath(topology.CheckType("bogus"), "10.0.0.1", ""); err == nil {
		t.Errorf("unknown check type must error")
	}
}
