package topology

import "testing"

func TestHitTestFirstMatchWins(t *testing.T) {
	// Two devices both within HitRadius of the query point. The earlier
	// device in iteration order wins even though the later one is closer.
	s := NewStore()
	far := addTestDevice(t, s, KindRouter, 15, 0)
	near := addTestDevice(t, s, KindSwitch, 2, 0)

	got, ok := s.HitTest(Point{X: 0, Y: 0})
	if !ok {
		t.Fatalf("HitTest missed both devices")
	}
	if got.ID != far.ID {
		t.Errorf("HitTest returned %s (nearer), want %s (first in order)", got.Name, far.Name)
	}
	_ = near
}

func TestHitTestRadiusBoundary(t *testing.T) {
	s := NewStore()
	addTestDevice(t, s, KindRouter, 0, 0)

	if _, ok := s.HitTest(Point{X: HitRadius, Y: 0}); !ok {
		t.Errorf("point exactly on the radius should hit")
	}
	if _, ok := s.HitTest(Point{X: HitRadius + 0.5, Y: 0}); ok {
		t.Errorf("point outside the radius should miss")
	}
}

func TestHitTestEmptyStore(t *testing.T) {
	s := NewStore()
	if _, ok := s.HitTest(Point{X: 0, Y: 0}); ok {
		t.Errorf("HitTest on empty store should miss")
	}
}

func TestHitTestTracksDraggedPosition(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)

	s.Apply(a.ID, func(d *Device) { d.Pos = Point{X: 500, Y: 500} })

	if _, ok := s.HitTest(Point{X: 0, Y: 0}); ok {
		t.Errorf("HitTest hit the stale position after a move")
	}
	if got, ok := s.HitTest(Point{X: 500, Y: 500}); !ok || got.ID != a.ID {
		t.Errorf("HitTest missed the current position after a move")
	}
}
