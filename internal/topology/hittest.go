package topology

import "math"

// HitRadius is the radius, in surface units, of the disc each device
// occupies for hit-testing.
const HitRadius = 20

// HitTest returns the first device, in store iteration order, whose center
// lies within HitRadius of p. The first match wins even when a later device
// is closer; callers depend on that ordering. Positions are read live on
// every call, so a hit immediately reflects an in-progress drag.
func (s *Store) HitTest(p Point) (*Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.devices {
		dx := d.Pos.X - p.X
		dy := d.Pos.Y - p.Y
		if math.Sqrt(dx*dx+dy*dy) <= HitRadius {
			return d, true
		}
	}
	return nil, false
}
