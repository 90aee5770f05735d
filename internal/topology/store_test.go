package topology

import "testing"

func addTestDevice(t *testing.T, s *Store, kind Kind, x, y float64) *Device {
	t.Helper()
	return s.Add(NewDevice(kind, Point{X: x, Y: y}, s.NextOrdinal()))
}

func TestConnectIsSymmetric(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)
	b := addTestDevice(t, s, KindSwitch, 100, 0)

	s.Connect(a.ID, b.ID)

	ga, _ := s.Get(a.ID)
	gb, _ := s.Get(b.ID)
	if !ga.Connected(b.ID) {
		t.Errorf("a should list b after Connect")
	}
	if !gb.Connected(a.ID) {
		t.Errorf("b should list a after Connect")
	}

	s.Disconnect(a.ID, b.ID)
	ga, _ = s.Get(a.ID)
	gb, _ = s.Get(b.ID)
	if ga.Connected(b.ID) || gb.Connected(a.ID) {
		t.Errorf("neither endpoint should list the other after Disconnect")
	}
}

func TestConnectSelfIsNoop(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)

	s.Connect(a.ID, a.ID)

	got, _ := s.Get(a.ID)
	if len(got.Connections) != 0 {
		t.Errorf("self-connect should leave the graph unchanged, got %v", got.Connections)
	}
}

func TestConnectDuplicateIsNoop(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)
	b := addTestDevice(t, s, KindSwitch, 100, 0)

	s.Connect(a.ID, b.ID)
	s.Connect(a.ID, b.ID)
	s.Connect(b.ID, a.ID)

	got, _ := s.Get(a.ID)
	if len(got.Connections) != 1 {
		t.Errorf("duplicate Connect should not add edges, got %v", got.Connections)
	}
}

func TestDisconnectMissingEdgeIsNoop(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)
	b := addTestDevice(t, s, KindSwitch, 100, 0)

	s.Disconnect(a.ID, b.ID)
	s.Disconnect(a.ID, "no-such-id")
}

func TestRemoveSeversAllEdges(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)
	b := addTestDevice(t, s, KindSwitch, 100, 0)
	c := addTestDevice(t, s, KindServer, 200, 0)
	s.Connect(a.ID, b.ID)
	s.Connect(a.ID, c.ID)

	s.Remove(a.ID)

	if _, ok := s.Get(a.ID); ok {
		t.Fatalf("removed device still present")
	}
	gb, _ := s.Get(b.ID)
	gc, _ := s.Get(c.ID)
	if gb.Connected(a.ID) {
		t.Errorf("b still lists removed device: %v", gb.Connections)
	}
	if gc.Connected(a.ID) {
		t.Errorf("c still lists removed device: %v", gc.Connections)
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	s := NewStore()
	addTestDevice(t, s, KindRouter, 0, 0)
	s.Remove("no-such-id")
	if s.Len() != 1 {
		t.Errorf("Remove of unknown id changed the store")
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)
	b := addTestDevice(t, s, KindSwitch, 0, 0)
	c := addTestDevice(t, s, KindClient, 0, 0)

	got := s.All()
	want := []string{a.ID, b.ID, c.ID}
	if len(got) != len(want) {
		t.Fatalf("All() returned %d devices, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("All()[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestApplyReplacesWholeDevice(t *testing.T) {
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 10, 20)
	before, _ := s.Get(a.ID)

	updated, ok := s.Apply(a.ID, func(d *Device) {
		d.Pos = Point{X: 100, Y: 200}
		d.Name = "core"
	})
	if !ok {
		t.Fatalf("Apply returned ok=false for existing device")
	}
	if updated.Pos != (Point{X: 100, Y: 200}) || updated.Name != "core" {
		t.Errorf("Apply did not mutate the clone: %+v", updated)
	}
	// The pre-mutation snapshot must be untouched.
	if before.Pos != (Point{X: 10, Y: 20}) {
		t.Errorf("earlier snapshot was mutated in place: %+v", before.Pos)
	}
}

func TestApplyUnknownIsNoop(t *testing.T) {
	s := NewStore()
	called := false
	if _, ok := s.Apply("no-such-id", func(d *Device) { called = true }); ok {
		t.Errorf("Apply on unknown id returned ok=true")
	}
	if called {
		t.Errorf("Apply on unknown id invoked the mutation")
	}
}

func TestApplyMergesConcurrentFields(t *testing.T) {
	// Two completions fold different fields of the same device; neither
	// update may be lost regardless of order.
	s := NewStore()
	a := addTestDevice(t, s, KindRouter, 0, 0)

	s.Apply(a.ID, func(d *Device) {
		d.Service(CheckPing).LastResult = "64 bytes from 10.0.0.1"
	})
	s.Apply(a.ID, func(d *Device) {
		d.Service(CheckSNMP).LastResult = "System description: router"
	})

	got, _ := s.Get(a.ID)
	if got.Service(CheckPing).LastResult == "" {
		t.Errorf("ping result lost by later Apply")
	}
	if got.Service(CheckSNMP).LastResult == "" {
		t.Errorf("snmp result missing after Apply")
	}
}

func TestServiceSynthesizesMissingRow(t *testing.T) {
	d := &Device{ID: "x", Kind: KindRouter}
	svc := d.Service(CheckUptime)
	if svc == nil || svc.Type != CheckUptime {
		t.Fatalf("Service did not synthesize a row for uptime")
	}
	if len(d.Services) != 1 {
		t.Errorf("synthesized row not retained, services=%v", d.Services)
	}
}

func TestServiceStateLeavesDeviceUntouched(t *testing.T) {
	d := &Device{ID: "d1", Kind: KindRouter}

	got := d.ServiceState(CheckPing)
	if got.Type != CheckPing {
		t.Fatalf("ServiceState type = %q, want %q", got.Type, CheckPing)
	}
	if len(d.Services) != 0 {
		t.Errorf("read-only lookup synthesized %d service rows", len(d.Services))
	}
}
