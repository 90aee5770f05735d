package topology

import "sync"

// Store owns the set of devices and their connection edges. Devices held by
// the store are immutable: every mutation replaces the whole device record,
// so a concurrent reader sees either the pre- or post-mutation device, never
// a partially written one. Connection lists stay symmetric at all times;
// both endpoints of an edge are replaced under the same lock acquisition.
type Store struct {
	mu      sync.RWMutex
	devices []*Device // insertion order
	index   map[string]int
	added   int // total devices ever added, for default names
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Add inserts d and returns it. The store takes ownership of d; callers must
// not mutate it afterwards.
func (s *Store) Add(d *Device) *Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index[d.ID] = len(s.devices)
	s.devices = append(s.devices, d)
	s.added++
	return d
}

// NextOrdinal returns the 1-based ordinal for the next device's default name.
func (s *Store) NextOrdinal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.added + 1
}

// Remove deletes the device with the given id and severs every edge incident
// to it. Removing an unknown id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return
	}

	s.devices = append(s.devices[:i], s.devices[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.devices); j++ {
		s.index[s.devices[j].ID] = j
	}

	// Sever the removed device from every neighbor's connection list.
	for j, d := range s.devices {
		if !d.Connected(id) {
			continue
		}
		c := d.Clone()
		c.Connections = removeString(c.Connections, id)
		s.devices[j] = c
	}
}

// Apply replaces the device with the given id by a clone mutated by fn. The
// clone is built from the freshest stored record under the store lock, so
// concurrent Apply calls for one device merge field-by-field rather than
// overwriting each other from stale snapshots. Returns false if the id is
// not present; fn is not called in that case.
func (s *Store) Apply(id string, fn func(*Device)) (*Device, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	c := s.devices[i].Clone()
	fn(c)
	c.ID = id // the id is immutable
	s.devices[i] = c
	return c, true
}

// Connect adds the symmetric edge a↔b. A self-edge or an already existing
// edge is a no-op, as is an unknown endpoint.
func (s *Store) Connect(a, b string) {
	if a == b {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ia, oka := s.index[a]
	ib, okb := s.index[b]
	if !oka || !okb {
		return
	}
	if s.devices[ia].Connected(b) {
		return
	}
	ca := s.devices[ia].Clone()
	cb := s.devices[ib].Clone()
	ca.Connections = append(ca.Connections, b)
	cb.Connections = append(cb.Connections, a)
	s.devices[ia] = ca
	s.devices[ib] = cb
}

// Disconnect removes the edge a↔b. A missing edge or endpoint is a no-op.
func (s *Store) Disconnect(a, b string) {
	if a == b {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ia, oka := s.index[a]
	ib, okb := s.index[b]
	if !oka || !okb {
		return
	}
	if !s.devices[ia].Connected(b) {
		return
	}
	ca := s.devices[ia].Clone()
	cb := s.devices[ib].Clone()
	ca.Connections = removeString(ca.Connections, b)
	cb.Connections = removeString(cb.Connections, a)
	s.devices[ia] = ca
	s.devices[ib] = cb
}

// Get returns the current record for id.
func (s *Store) Get(id string) (*Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.devices[i], true
}

// All returns a snapshot of all devices in insertion order. The returned
// slice is owned by the caller; the devices themselves are shared immutable
// records.
func (s *Store) All() []*Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// Len returns the number of devices.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.devices)
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}
