// Package settings holds the process-wide configuration defaults consulted
// by the config resolver and the monitoring scheduler. The record is loaded
// once at startup and replaced as a whole on explicit save, never mutated
// mid-tick.
package settings

import "netboard/internal/topology"

// ServiceDefault is the global default row for one check type.
type ServiceDefault struct {
	Type            topology.CheckType `json:"type"`
	Enabled         bool               `json:"enabled"`
	Interval        int                `json:"interval"` // seconds
	DisplayOnDevice bool               `json:"displayOnDevice"`
}

// Global is the process-wide settings record.
type Global struct {
	DefaultServices      []ServiceDefault `json:"defaultServices"`
	DefaultPingInterval  int              `json:"defaultPingInterval"`  // seconds
	DefaultPingAttempts  int              `json:"defaultPingAttempts"`  // failures before offline
	DefaultSNMPInterval  int              `json:"defaultSNMPInterval"`  // seconds
	DefaultSNMPCommunity string           `json:"defaultSNMPCommunity"`
	DefaultVendor        string           `json:"defaultVendor"`
	AutoStartServices    bool             `json:"autoStartServices"`
}

// Defaults returns the built-in settings used when no record has been saved.
func Defaults() Global {
	return Global{
		DefaultServices: []ServiceDefault{
			{Type: topology.CheckPing, Enabled: true, Interval: 60, DisplayOnDevice: true},
			{Type: topology.CheckSNMP, Enabled: false, Interval: 300},
			{Type: topology.CheckLAN, Enabled: false, Interval: 300},
			{Type: topology.CheckUptime, Enabled: false, Interval: 300},
			{Type: topology.CheckVia, Enabled: false, Interval: 300},
		},
		DefaultPingInterval:  5,
		DefaultPingAttempts:  4,
		DefaultSNMPInterval:  300,
		DefaultSNMPCommunity: "public",
		DefaultVendor:        "unknown",
		AutoStartServices:    true,
	}
}

// Service returns the default row for ct, or false when the record carries
// none.
func (g Global) Service(ct topology.CheckType) (ServiceDefault, bool) {
	for _, s := range g.DefaultServices {
		if s.Type == ct {
			return s, true
		}
	}
	return ServiceDefault{}, false
}

// SeedDevice builds a new device of the given kind at pos, seeded from the
// global defaults: vendor, SNMP community, and one service row per default
// service. When AutoStartServices is off, every seeded service starts
// disabled regardless of its default.
func (g Global) SeedDevice(kind topology.Kind, pos topology.Point, ordinal int) *topology.Device {
	d := topology.NewDevice(kind, pos, ordinal)
	d.Vendor = g.DefaultVendor
	d.SNMPCommunity = g.DefaultSNMPCommunity
	for _, def := range g.DefaultServices {
		svc := d.Service(def.Type)
		enabled := def.Enabled && g.AutoStartServices
		interval := def.Interval
		display := def.DisplayOnDevice
		svc.Enabled = &enabled
		svc.Interval = &interval
		svc.DisplayOnDevice = &display
	}
	return d
}
