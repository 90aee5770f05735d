// Package monitor implements the health-monitoring scheduler: a fixed
// 1-second tick that decides, per device and per enabled effective service,
// when a check is due, dispatches it to the diagnostic collaborator, and
// folds the result back into the topology store.
package monitor

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"netboard/internal/settings"
	"netboard/internal/topology"
)

// Runner executes one diagnostic check against the external collaborator and
// returns its raw textual output. A non-nil error means the collaborator
// itself was unreachable, as opposed to a completed-but-negative diagnostic.
type Runner interface {
	Run(ctx context.Context, check topology.CheckType, address, community string) (string, error)
}

// Info is a point-in-time summary of scheduler activity.
type Info struct {
	LastTick time.Time
	Ticks    int
	Checks   int
	Errors   int
}

type flightKey struct {
	id    string
	check topology.CheckType
}

// Scheduler drives the recurring checks. Mutations reach the topology store
// exclusively through Store.Apply, one atomic device replacement per
// completed check, so concurrently completing checks for one device merge
// field-by-field instead of clobbering each other.
type Scheduler struct {
	store    *topology.Store
	runner   Runner
	current  func() settings.Global
	log      *logrus.Logger
	now      func() time.Time
	dispatch func(func())
	timeout  time.Duration

	mu       sync.Mutex
	windows  map[string]*RingBuffer[bool]
	inflight map[flightKey]bool
	info     Info

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewScheduler creates a Scheduler. current is called at every tick to pick
// up the latest saved global settings; checks do not start until Run.
func NewScheduler(store *topology.Store, runner Runner, current func() settings.Global, log *logrus.Logger) *Scheduler {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Scheduler{
		store:    store,
		runner:   runner,
		current:  current,
		log:      log,
		now:      time.Now,
		dispatch: func(f func()) { go f() },
		timeout:  10 * time.Second,
		windows:  make(map[string]*RingBuffer[bool]),
		inflight: make(map[flightKey]bool),
		stopCh:   make(chan struct{}),
	}
}

// Run starts the 1-second tick loop. It blocks until Stop is called. Checks
// are dispatched asynchronously, so a slow collaborator never stalls the
// tick itself.
func (s *Scheduler) Run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	s.Tick()
	for {
		select {
		case <-ticker.C:
			s.Tick()
		case <-s.stopCh:
			return
		}
	}
}

// Stop signals the tick loop to exit. Safe to call more than once; the UI
// and main both stop the scheduler on their own shutdown paths. In-flight
// checks are not cancelled; their results are folded if their device still
// exists.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Tick evaluates due-ness for every device and every enabled effective
// service, dispatching exactly one invocation per due service.
func (s *Scheduler) Tick() {
	gs := s.current()
	now := s.now()
	devices := s.store.All()

	s.mu.Lock()
	s.info.Ticks++
	s.info.LastTick = now
	// Drop hysteresis windows for devices that no longer exist.
	alive := make(map[string]bool, len(devices))
	for _, d := range devices {
		alive[d.ID] = true
	}
	for id := range s.windows {
		if !alive[id] {
			delete(s.windows, id)
		}
	}
	s.mu.Unlock()

	for _, dev := range devices {
		cfg := Resolve(dev, gs)
		for _, svc := range cfg.Services {
			if !svc.Enabled {
				continue
			}
			last := lastCheck(dev, svc.Type)
			if !last.IsZero() && now.Sub(last) < time.Duration(svc.Interval)*time.Second {
				continue
			}
			// A check is only runnable with an address; without one it
			// is silently skipped and lastCheck is not marked.
			if dev.Address == "" {
				continue
			}

			key := flightKey{id: dev.ID, check: svc.Type}
			s.mu.Lock()
			if s.inflight[key] {
				s.mu.Unlock()
				continue
			}
			s.inflight[key] = true
			s.mu.Unlock()

			id, check, addr, community := dev.ID, svc.Type, dev.Address, cfg.SNMPCommunity
			s.dispatch(func() {
				s.execute(id, check, addr, community, now)
			})
		}
	}
}

// execute runs one check to completion and folds the result. tickNow is the
// dispatching tick's clock reading; lastCheck advances to it on any
// completed call, successful or negative, so a permanently failing device is
// not retried in a tight loop.
func (s *Scheduler) execute(id string, check topology.CheckType, address, community string, tickNow time.Time) {
	defer func() {
		s.mu.Lock()
		delete(s.inflight, flightKey{id: id, check: check})
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	out, err := s.runner.Run(ctx, check, address, community)

	s.mu.Lock()
	s.info.Checks++
	if err != nil {
		s.info.Errors++
	}
	s.mu.Unlock()

	if err != nil {
		// Collaborator unreachable: lastCheck and lastResult stay put so
		// the check stays due; status is unaffected by this failure mode.
		s.log.WithFields(logrus.Fields{
			"device":  id,
			"check":   check,
			"address": address,
		}).WithError(err).Warn("diagnostic call failed")
		return
	}

	s.store.Apply(id, func(d *topology.Device) {
		// A service disabled while the call was in flight discards the
		// result; a deleted device never reaches this closure at all.
		cfg := Resolve(d, s.current())
		if !cfg.Service(check).Enabled {
			return
		}

		svc := d.Service(check)
		svc.LastCheck = tickNow
		svc.LastResult = out

		if check == topology.CheckPing {
			s.foldPingWindow(d, out, cfg.PingAttempts)
		}

		// The raw-text evaluation runs after the windowed ping evaluator
		// and overwrites its verdict on the same tick. Inherited
		// behavior; see the known-inconsistency test before changing.
		switch Classify(out) {
		case VerdictOffline:
			d.Status = topology.StatusOffline
		case VerdictWarning:
			d.Status = topology.StatusWarning
		case VerdictOnline:
			if check == topology.CheckPing {
				d.Status = topology.StatusOnline
			}
		}
	})
}

// foldPingWindow pushes one ping outcome into the device's sliding window
// and applies the asymmetric hysteresis: attempts windowed failures take the
// device offline, a single success brings it back online.
func (s *Scheduler) foldPingWindow(d *topology.Device, out string, attempts int) {
	ok := PingSucceeded(out)

	s.mu.Lock()
	w := s.windows[d.ID]
	if w == nil || w.Cap() != attempts {
		nw := NewRingBuffer[bool](attempts)
		if w != nil {
			for _, v := range w.All() {
				nw.Add(v)
			}
		}
		w = nw
		s.windows[d.ID] = w
	}
	w.Add(ok)
	failures := 0
	for _, v := range w.All() {
		if !v {
			failures++
		}
	}
	s.mu.Unlock()

	if ok {
		d.Status = topology.StatusOnline
	} else if failures >= attempts {
		d.Status = topology.StatusOffline
	}
}

// Window returns a copy of the recent ping outcomes recorded for a device,
// oldest first. Used by the UI to draw flap history.
func (s *Scheduler) Window(id string) []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows[id]; ok {
		return w.All()
	}
	return nil
}

// Info returns summary activity counters.
func (s *Scheduler) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

func lastCheck(d *topology.Device, ct topology.CheckType) time.Time {
	for _, svc := range d.Services {
		if svc.Type == ct {
			return svc.LastCheck
		}
	}
	return time.Time{}
}
