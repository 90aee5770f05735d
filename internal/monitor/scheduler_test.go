package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"netboard/internal/settings"
	"netboard/internal/topology"
)

type runnerCall struct {
	check     topology.CheckType
	address   string
	community string
}

// fakeRunner returns a canned output (or error) and records every call.
type fakeRunner struct {
	mu     sync.Mutex
	output string
	err    error
	calls  []runnerCall
}

func (r *fakeRunner) Run(_ context.Context, check topology.CheckType, address, community string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, runnerCall{check: check, address: address, community: community})
	return r.output, r.err
}

func (r *fakeRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// newTestScheduler builds a scheduler with an inline dispatcher and a
// controllable clock starting at base.
func newTestScheduler(store *topology.Store, runner Runner, gs settings.Global, base time.Time) (*Scheduler, *time.Time) {
	now := base
	s := NewScheduler(store, runner, func() settings.Global { return gs }, nil)
	s.now = func() time.Time { return now }
	s.dispatch = func(f func()) { f() }
	return s, &now
}

// pingOnlyDevice adds a device with only the ping service enabled at the
// given interval.
func pingOnlyDevice(s *topology.Store, intervalSec int) *topology.Device {
	d := topology.NewDevice(topology.KindRouter, topology.Point{}, s.NextOrdinal())
	d.Address = "10.0.0.1"
	for _, ct := range topology.CheckTypes {
		enabled := ct == topology.CheckPing
		svc := d.Service(ct)
		svc.Enabled = &enabled
	}
	iv := intervalSec
	d.Service(topology.CheckPing).Interval = &iv
	return s.Add(d)
}

func TestTickSkipsNotYetDueService(t *testing.T) {
	store := topology.NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dev := pingOnlyDevice(store, 300)
	store.Apply(dev.ID, func(d *topology.Device) {
		d.Service(topology.CheckPing).LastCheck = base.Add(-299 * time.Second)
	})

	runner := &fakeRunner{output: "64 bytes from 10.0.0.1"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), base)

	sched.Tick()
	if runner.callCount() != 0 {
		t.Errorf("service 1s short of due was invoked %d times", runner.callCount())
	}
}

func TestTickInvokesDueServiceOnceAndAdvancesLastCheck(t *testing.T) {
	store := topology.NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dev := pingOnlyDevice(store, 300)
	store.Apply(dev.ID, func(d *topology.Device) {
		d.Service(topology.CheckPing).LastCheck = base.Add(-300 * time.Second)
	})

	runner := &fakeRunner{output: "64 bytes from 10.0.0.1"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), base)

	sched.Tick()
	if runner.callCount() != 1 {
		t.Fatalf("due service invoked %d times, want exactly 1", runner.callCount())
	}

	got, _ := store.Get(dev.ID)
	if lc := got.Service(topology.CheckPing).LastCheck; !lc.Equal(base) {
		t.Errorf("lastCheck = %v, want the tick's now %v", lc, base)
	}
	if got.Service(topology.CheckPing).LastResult == "" {
		t.Errorf("lastResult not recorded")
	}
}

func TestTickTreatsAbsentLastCheckAsDue(t *testing.T) {
	store := topology.NewStore()
	pingOnlyDevice(store, 300)
	runner := &fakeRunner{output: "64 bytes from 10.0.0.1"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), time.Now())

	sched.Tick()
	if runner.callCount() != 1 {
		t.Errorf("never-checked service invoked %d times, want 1", runner.callCount())
	}
}

func TestTickSkipsDeviceWithoutAddress(t *testing.T) {
	store := topology.NewStore()
	dev := pingOnlyDevice(store, 60)
	store.Apply(dev.ID, func(d *topology.Device) { d.Address = "" })

	runner := &fakeRunner{output: "64 bytes from 10.0.0.1"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), time.Now())

	sched.Tick()
	if runner.callCount() != 0 {
		t.Errorf("address-less device was invoked")
	}
	got, _ := store.Get(dev.ID)
	if !got.Service(topology.CheckPing).LastCheck.IsZero() {
		t.Errorf("skipped check must not mark lastCheck")
	}
}

func TestCollaboratorFailureLeavesStateUntouched(t *testing.T) {
	store := topology.NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dev := pingOnlyDevice(store, 60)

	runner := &fakeRunner{err: errors.New("connection refused")}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), base)

	sched.Tick()

	got, _ := store.Get(dev.ID)
	svc := got.Service(topology.CheckPing)
	if !svc.LastCheck.IsZero() {
		t.Errorf("transport failure advanced lastCheck to %v", svc.LastCheck)
	}
	if svc.LastResult != "" {
		t.Errorf("transport failure overwrote lastResult with %q", svc.LastResult)
	}
	if got.Status != topology.StatusUnknown {
		t.Errorf("transport failure changed status to %s", got.Status)
	}
	if sched.Info().Errors != 1 {
		t.Errorf("error not counted: %+v", sched.Info())
	}
}

func TestCompletedNegativeResultAdvancesLastCheck(t *testing.T) {
	store := topology.NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dev := pingOnlyDevice(store, 60)

	runner := &fakeRunner{output: "Request timeout for icmp_seq 1"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), base)

	sched.Tick()

	got, _ := store.Get(dev.ID)
	if lc := got.Service(topology.CheckPing).LastCheck; !lc.Equal(base) {
		t.Errorf("completed negative result must still advance lastCheck, got %v", lc)
	}
}

func TestPingHysteresis(t *testing.T) {
	// pingAttempts=4, outcomes [true false false false false]: offline only
	// once the 4th false lands in the window, then one success restores
	// online. The failure output carries no marker substrings so only the
	// windowed evaluator drives status here.
	store := topology.NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dev := pingOnlyDevice(store, 1)

	runner := &fakeRunner{}
	sched, now := newTestScheduler(store, runner, settings.Defaults(), base)

	steps := []struct {
		output string
		want   topology.Status
	}{
		{"64 bytes from 10.0.0.1", topology.StatusOnline},
		{"no reply", topology.StatusOnline},
		{"no reply", topology.StatusOnline},
		{"no reply", topology.StatusOnline},
		{"no reply", topology.StatusOffline},
		{"64 bytes from 10.0.0.1", topology.StatusOnline},
	}
	for i, step := range steps {
		runner.mu.Lock()
		runner.output = step.output
		runner.mu.Unlock()
		*now = base.Add(time.Duration(i) * time.Second)
		sched.Tick()

		got, _ := store.Get(dev.ID)
		if got.Status != step.want {
			t.Fatalf("step %d (%q): status = %s, want %s", i, step.output, got.Status, step.want)
		}
	}
}

func TestRawTextEvaluatorOverridesWindowedVerdict(t *testing.T) {
	// Known inconsistency, preserved deliberately: the raw-text classifier
	// runs after the windowed ping evaluator and silently wins on the same
	// tick. Here the window is saturated with failures (verdict offline)
	// but the output's "unreachable" marker downgrades only to warning.
	store := topology.NewStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	dev := pingOnlyDevice(store, 1)

	runner := &fakeRunner{output: "no reply"}
	sched, now := newTestScheduler(store, runner, settings.Defaults(), base)

	for i := 0; i < 4; i++ {
		*now = base.Add(time.Duration(i) * time.Second)
		sched.Tick()
	}
	if got, _ := store.Get(dev.ID); got.Status != topology.StatusOffline {
		t.Fatalf("window not saturated: status = %s", got.Status)
	}

	runner.mu.Lock()
	runner.output = "From 10.0.0.254 icmp_seq=1 Destination Host Unreachable"
	runner.mu.Unlock()
	*now = base.Add(5 * time.Second)
	sched.Tick()

	got, _ := store.Get(dev.ID)
	if got.Status != topology.StatusWarning {
		t.Errorf("status = %s, want warning (text evaluator overrides the window)", got.Status)
	}
}

func TestNonPingFailureMarkerDowngradesStatus(t *testing.T) {
	store := topology.NewStore()
	d := topology.NewDevice(topology.KindServer, topology.Point{}, 1)
	d.Address = "10.0.0.9"
	d.Status = topology.StatusOnline
	for _, ct := range topology.CheckTypes {
		enabled := ct == topology.CheckSNMP
		d.Service(ct).Enabled = &enabled
	}
	store.Add(d)

	runner := &fakeRunner{output: "SNMP request timed out"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), time.Now())

	sched.Tick()
	got, _ := store.Get(d.ID)
	if got.Status != topology.StatusOffline {
		t.Errorf("status = %s, want offline from snmp failure markers", got.Status)
	}
}

func TestNonPingSuccessMarkerDoesNotSetOnline(t *testing.T) {
	store := topology.NewStore()
	d := topology.NewDevice(topology.KindServer, topology.Point{}, 1)
	d.Address = "10.0.0.9"
	d.Status = topology.StatusUnknown
	for _, ct := range topology.CheckTypes {
		enabled := ct == topology.CheckLAN
		d.Service(ct).Enabled = &enabled
	}
	store.Add(d)

	runner := &fakeRunner{output: "reply had 64 bytes from host"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), time.Now())

	sched.Tick()
	got, _ := store.Get(d.ID)
	if got.Status != topology.StatusUnknown {
		t.Errorf("status = %s, non-ping success marker must not set online", got.Status)
	}
}

func TestStaleCompletionForRemovedDeviceIsDiscarded(t *testing.T) {
	store := topology.NewStore()
	dev := pingOnlyDevice(store, 60)

	var pending []func()
	runner := &fakeRunner{output: "64 bytes from 10.0.0.1"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), time.Now())
	sched.dispatch = func(f func()) { pending = append(pending, f) }

	sched.Tick()
	store.Remove(dev.ID)
	for _, f := range pending {
		f() // must not resurrect the device
	}

	if store.Len() != 0 {
		t.Errorf("stale completion resurrected a removed device")
	}
}

func TestStaleCompletionForDisabledServiceIsDiscarded(t *testing.T) {
	store := topology.NewStore()
	dev := pingOnlyDevice(store, 60)

	var pending []func()
	runner := &fakeRunner{output: "64 bytes from 10.0.0.1"}
	sched, _ := newTestScheduler(store, runner, settings.Defaults(), time.Now())
	sched.dispatch = func(f func()) { pending = append(pending, f) }

	sched.Tick()
	disabled := false
	store.Apply(dev.ID, func(d *topology.Device) {
		d.Service(topology.CheckPing).Enabled = &disabled
	})
	for _, f := range pending {
		f()
	}

	got, _ := store.Get(dev.ID)
	svc := got.Service(topology.CheckPing)
	if !svc.LastCheck.IsZero() || svc.LastResult != "" {
		t.Errorf("stale completion folded into a disabled service: %+v", svc)
	}
	if en := svc.Enabled; en == nil || *en {
		t.Errorf("stale completion re-enabled a disabled service")
	}
}

func TestInFlightCheckIsNotRedispatched(t *testing.T) {
	store := topology.NewStore()
	pingOnlyDevice(store, 1)

	var pending []func()
	runner := &fakeRunner{output: "64 bytes from 10.0.0.1"}
	sched, now := newTestScheduler(store, runner, settings.Defaults(), time.Now())
	sched.dispatch = func(f func()) { pending = append(pending, f) }

	sched.Tick()
	*now = (*now).Add(5 * time.Second)
	sched.Tick() // still in flight, must not double-dispatch

	if len(pending) != 1 {
		t.Errorf("check dispatched %d times while in flight, want 1", len(pending))
	}
}

func TestSchedulerPassesEffectiveCommunity(t *testing.T) {
	store := topology.NewStore()
	d := topology.NewDevice(topology.KindRouter, topology.Point{}, 1)
	d.Address = "10.0.0.2"
	for _, ct := range topology.CheckTypes {
		enabled := ct == topology.CheckUptime
		d.Service(ct).Enabled = &enabled
	}
	store.Add(d)

	gs := settings.Defaults()
	gs.DefaultSNMPCommunity = "branch"
	runner := &fakeRunner{output: "uptime 5 days"}
	sched, _ := newTestScheduler(store, runner, gs, time.Now())

	sched.Tick()
	if runner.callCount() != 1 {
		t.Fatalf("uptime check not invoked")
	}
	runner.mu.Lock()
	call := runner.calls[0]
	runner.mu.Unlock()
	if call.community != "branch" {
		t.Errorf("community = %q, want effective global %q", call.community, "branch")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	store := topology.NewStore()
	sched, _ := newTestScheduler(store, &fakeRunner{output: "64 bytes"}, settings.Defaults(), time.Now())

	done := make(chan struct{})
	go func() {
		sched.Run()
		close(done)
	}()

	// The UI stops the scheduler on quit and main stops it again on the
	// way out; neither call may panic.
	sched.Stop()
	sched.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
