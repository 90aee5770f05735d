package topology

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a device node. It only affects the default icon color.
type Kind string

const (
	KindRouter      Kind = "router"
	KindSwitch      Kind = "switch"
	KindAccessPoint Kind = "access-point"
	KindServer      Kind = "server"
	KindClient      Kind = "client"
)

// Kinds lists all device kinds in palette order.
var Kinds = []Kind{KindRouter, KindSwitch, KindAccessPoint, KindServer, KindClient}

// Status is the monitored health state of a device.
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
	StatusWarning Status = "warning"
)

// CheckType identifies one recurring diagnostic check.
type CheckType string

const (
	CheckPing   CheckType = "ping"
	CheckSNMP   CheckType = "snmp"
	CheckLAN    CheckType = "lan"
	CheckUptime CheckType = "uptime"
	CheckVia    CheckType = "via"

	// CheckTraceroute is only available as a one-shot diagnostic; it is
	// never scheduled.
	CheckTraceroute CheckType = "traceroute"
)

// CheckTypes lists the schedulable check types. Every device carries exactly
// one ServiceConfig per entry, in this order.
var CheckTypes = []CheckType{CheckPing, CheckSNMP, CheckLAN, CheckUptime, CheckVia}

// Point is a position in drawing-surface coordinates.
type Point struct {
	X float64
	Y float64
}

// ServiceConfig is the per-device configuration and last-run state of one
// check type. The override fields are pointers: nil means "inherit from the
// global default".
type ServiceConfig struct {
	Type            CheckType
	Enabled         *bool
	Interval        *int // seconds
	DisplayOnDevice *bool
	LastCheck       time.Time
	LastResult      string
}

// Device is a node in the topology graph.
type Device struct {
	ID          string
	Kind        Kind
	Name        string
	Pos         Point
	Connections []string // neighbor device ids, symmetric with each neighbor

	Address       string
	SNMPCommunity string
	Network       string

	Status Status
	Vendor string
	Color  string // explicit color override, empty for none

	Services []ServiceConfig

	// Per-device overrides of the global ping cadence and hysteresis
	// threshold. nil means "inherit".
	PingInterval *int
	PingAttempts *int
}

// NewDevice creates an unconnected device of the given kind at pos. The
// caller is expected to seed services and defaults before adding it to a
// Store; n is used for the default display name.
func NewDevice(kind Kind, pos Point, n int) *Device {
	return &Device{
		ID:       uuid.NewString(),
		Kind:     kind,
		Name:     fmt.Sprintf("%s %d", kind, n),
		Pos:      pos,
		Status:   StatusUnknown,
		Services: DefaultServices(),
	}
}

// DefaultServices returns one zero-value ServiceConfig per schedulable check
// type, all fields inheriting.
func DefaultServices() []ServiceConfig {
	svcs := make([]ServiceConfig, 0, len(CheckTypes))
	for _, ct := range CheckTypes {
		svcs = append(svcs, ServiceConfig{Type: ct})
	}
	return svcs
}

// Service returns a pointer to the ServiceConfig row for the given check
// type, synthesizing a missing row so callers never observe an absent entry.
func (d *Device) Service(ct CheckType) *ServiceConfig {
	for i := range d.Services {
		if d.Services[i].Type == ct {
			return &d.Services[i]
		}
	}
	d.Services = append(d.Services, ServiceConfig{Type: ct})
	return &d.Services[len(d.Services)-1]
}

// ServiceState returns the row for the given check type without modifying
// the device; a missing row reads as the zero value. Render paths use this
// so shared store snapshots are never written.
func (d *Device) ServiceState(ct CheckType) ServiceConfig {
	for _, s := range d.Services {
		if s.Type == ct {
			return s
		}
	}
	return ServiceConfig{Type: ct}
}

// Connected reports whether id is a neighbor of d.
func (d *Device) Connected(id string) bool {
	for _, c := range d.Connections {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of d. Stores hand out immutable snapshots, so
// every mutation goes through a clone.
func (d *Device) Clone() *Device {
	c := *d
	c.Connections = append([]string(nil), d.Connections...)
	c.Services = append([]ServiceConfig(nil), d.Services...)
	for i := range c.Services {
		c.Services[i].Enabled = cloneBoolPtr(d.Services[i].Enabled)
		c.Services[i].Interval = cloneIntPtr(d.Services[i].Interval)
		c.Services[i].DisplayOnDevice = cloneBoolPtr(d.Services[i].DisplayOnDevice)
	}
	c.PingInterval = cloneIntPtr(d.PingInterval)
	c.PingAttempts = cloneIntPtr(d.PingAttempts)
	return &c
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBoolPtr(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
