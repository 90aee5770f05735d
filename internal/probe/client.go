package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"netboard/internal/topology"
)

// Response is the wire shape every diagnostic endpoint returns. Output is
// human-readable text; the substrings it happens to contain are the only
// structured signal the scheduler consumes.
type Response struct {
	Status string `json:"status"`
	Output string `json:"output"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

const maxBody = 1 << 20

// Client talks to the probe service over HTTP. Transport failures surface
// as errors; a completed-but-negative diagnostic comes back as plain
// output with a nil error, so it still counts as a check.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Run executes one diagnostic against the probe service.
func (c *Client) Run(ctx context.Context, check topology.CheckType, address, community string) (string, error) {
	path, err := checkPath(check, address, community)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("probe %s: %w", check, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("probe %s: read response: %w", check, err)
	}

	var r Response
	if err := json.Unmarshal(body, &r); err != nil {
		// A malformed payload is a negative diagnostic, not a transport
		// failure: hand the raw text to the classifier instead of
		// discarding the check.
		return string(body), nil
	}
	return r.Output, nil
}

func checkPath(check topology.CheckType, address, community string) (string, error) {
	ip := url.PathEscape(address)
	comm := url.PathEscape(community)
	switch check {
	case topology.CheckPing:
		return "/api/ping/" + ip, nil
	case topology.CheckTraceroute:
		return "/api/traceroute/" + ip, nil
	case topology.CheckSNMP:
		return "/api/snmp-test/" + ip + "/" + comm, nil
	case topology.CheckLAN:
		return "/api/lan-test/" + ip, nil
	case topology.CheckUptime:
		return "/api/uptime/" + ip + "/" + comm, nil
	case topology.CheckVia:
		return "/api/via-test/" + ip, nil
	}
	return "", fmt.Errorf("unsupported check type %q", check)
}
