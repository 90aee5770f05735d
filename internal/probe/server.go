package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"netboard/internal/topology"
)

// Server executes diagnostics on behalf of the board and serves them over
// the /api HTTP surface. Every endpoint answers with a Response; command
// failure is reported in-band as status "error", never as a non-200.
type Server struct {
	log         *logrus.Logger
	execTimeout time.Duration
	snmpTimeout time.Duration

	runCmd   func(ctx context.Context, name string, args ...string) ([]byte, error)
	sysDescr func(host, community string, timeout time.Duration) (string, error)
	uptime   func(host, community string, timeout time.Duration) (time.Duration, error)
	lanScan  func(ctx context.Context, target string) (string, error)
}

func NewServer(log *logrus.Logger) *Server {
	s := &Server{
		log:         log,
		execTimeout: 30 * time.Second,
		snmpTimeout: 5 * time.Second,
		runCmd: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
		sysDescr: querySysDescr,
		uptime:   queryUptime,
	}
	s.lanScan = func(ctx context.Context, target string) (string, error) {
		return pingScan(ctx, s.log, target)
	}
	return s
}

// Router wires the diagnostic endpoints plus /metrics and /healthz.
func (s *Server) Router() *httprouter.Router {
	r := httprouter.New()
	r.GET("/api/ping/:ip", s.timed("/api/ping", s.handlePing))
	r.GET("/api/traceroute/:ip", s.timed("/api/traceroute", s.handleTraceroute))
	r.GET("/api/via-test/:ip", s.timed("/api/via-test", s.handleVia))
	r.GET("/api/snmp-test/:ip/:community", s.timed("/api/snmp-test", s.handleSNMPTest))
	r.GET("/api/uptime/:ip/:community", s.timed("/api/uptime", s.handleUptime))
	r.GET("/api/lan-test/:ip", s.timed("/api/lan-test", s.handleLANTest))

	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	r.HandlerFunc(http.MethodGet, "/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	return r
}

func (s *Server) timed(path string, h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		t0 := time.Now()
		h(w, r, p)
		httpDuration.WithLabelValues(path).Observe(time.Since(t0).Seconds())
	}
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	s.command(w, r.Context(), topology.CheckPing, pingArgs(p.ByName("ip")))
}

func (s *Server) handleTraceroute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	s.command(w, r.Context(), topology.CheckTraceroute, tracerouteArgs(p.ByName("ip"), 0))
}

func (s *Server) handleVia(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	// Route checks only care about the first few hops, keep them short.
	s.command(w, r.Context(), topology.CheckVia, tracerouteArgs(p.ByName("ip"), 8))
}

func (s *Server) handleSNMPTest(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	descr, err := s.sysDescr(p.ByName("ip"), p.ByName("community"), s.snmpTimeout)
	if err != nil {
		s.writeResult(w, topology.CheckSNMP, statusError, "SNMP error: "+err.Error())
		return
	}
	s.writeResult(w, topology.CheckSNMP, statusSuccess, "System description: "+descr)
}

func (s *Server) handleUptime(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	up, err := s.uptime(p.ByName("ip"), p.ByName("community"), s.snmpTimeout)
	if err != nil {
		s.writeResult(w, topology.CheckUptime, statusError, "SNMP error: "+err.Error())
		return
	}
	s.writeResult(w, topology.CheckUptime, statusSuccess, "up "+formatUptime(up))
}

func (s *Server) handleLANTest(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), s.execTimeout)
	defer cancel()
	out, err := s.lanScan(ctx, p.ByName("ip"))
	if err != nil {
		s.writeResult(w, topology.CheckLAN, statusError, "LAN scan error: "+err.Error())
		return
	}
	s.writeResult(w, topology.CheckLAN, statusSuccess, out)
}

// command runs a local tool and maps its exit status onto the response
// status, keeping whatever the tool printed as the output either way.
func (s *Server) command(w http.ResponseWriter, ctx context.Context, check topology.CheckType, args []string) {
	ctx, cancel := context.WithTimeout(ctx, s.execTimeout)
	defer cancel()

	out, err := s.runCmd(ctx, args[0], args[1:]...)
	if err != nil {
		text := string(out)
		if text == "" {
			text = err.Error()
		}
		s.writeResult(w, check, statusError, text)
		return
	}
	s.writeResult(w, check, statusSuccess, string(out))
}

func (s *Server) writeResult(w http.ResponseWriter, check topology.CheckType, status, output string) {
	checksTotal.WithLabelValues(string(check), status).Inc()
	if status == statusError {
		s.log.WithFields(logrus.Fields{"check": check}).Warn(output)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Response{Status: status, Output: output}); err != nil {
		s.log.WithError(err).Error("write diagnostic response")
	}
}

func pingArgs(ip string) []string {
	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}
	return []string{"ping", countFlag, "4", ip}
}

// tracerouteArgs builds the platform traceroute invocation; maxHops <= 0
// means the tool default.
func tracerouteArgs(ip string, maxHops int) []string {
	if runtime.GOOS == "windows" {
		args := []string{"tracert"}
		if maxHops > 0 {
			args = append(args, "-h", strconv.Itoa(maxHops))
		}
		return append(args, ip)
	}
	args := []string{"traceroute"}
	if maxHops > 0 {
		args = append(args, "-m", strconv.Itoa(maxHops))
	}
	return append(args, ip)
}
