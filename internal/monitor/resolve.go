package monitor

import (
	"netboard/internal/settings"
	"netboard/internal/topology"
)

// Hard-coded fallbacks used when neither the device nor the global settings
// specify a value.
const (
	fallbackInterval     = 300 // seconds
	fallbackPingInterval = 60  // seconds, for the ping service row
	fallbackPingCadence  = 5   // seconds
	fallbackPingAttempts = 4
	fallbackCommunity    = "public"
	fallbackVendor       = "unknown"
)

// ServiceSetting is the effective configuration of one check type after
// merging the device override with the global default.
type ServiceSetting struct {
	Type            topology.CheckType
	Enabled         bool
	Interval        int // seconds
	DisplayOnDevice bool
}

// Config is the effective configuration of a device: every value the
// scheduler needs, with the override precedence already applied.
type Config struct {
	Services      []ServiceSetting // one per schedulable check type, in order
	PingInterval  int              // seconds
	PingAttempts  int
	Vendor        string
	SNMPCommunity string
}

// Service returns the effective setting for ct. Every schedulable check type
// is always present.
func (c Config) Service(ct topology.CheckType) ServiceSetting {
	for _, s := range c.Services {
		if s.Type == ct {
			return s
		}
	}
	return ServiceSetting{Type: ct, Interval: fallbackInterval}
}

// Resolve merges the device's overrides with the global defaults into an
// effective configuration. Precedence per field: device value if explicitly
// set, else the global default, else a hard-coded fallback. Resolve is pure
// and total: it never fails and yields identical output for identical input.
func Resolve(d *topology.Device, gs settings.Global) Config {
	cfg := Config{
		PingInterval:  resolveInt(d.PingInterval, gs.DefaultPingInterval, fallbackPingCadence),
		PingAttempts:  resolveInt(d.PingAttempts, gs.DefaultPingAttempts, fallbackPingAttempts),
		Vendor:        resolveString(d.Vendor, gs.DefaultVendor, fallbackVendor),
		SNMPCommunity: resolveString(d.SNMPCommunity, gs.DefaultSNMPCommunity, fallbackCommunity),
	}

	for _, ct := range topology.CheckTypes {
		var dev topology.ServiceConfig
		for _, svc := range d.Services {
			if svc.Type == ct {
				dev = svc
				break
			}
		}
		def, hasDef := gs.Service(ct)

		s := ServiceSetting{Type: ct}

		switch {
		case dev.Enabled != nil:
			s.Enabled = *dev.Enabled
		case hasDef:
			s.Enabled = def.Enabled
		}

		switch {
		case dev.Interval != nil && *dev.Interval > 0:
			s.Interval = *dev.Interval
		case ct == topology.CheckPing && d.PingInterval != nil && *d.PingInterval > 0:
			// The device-level ping cadence override also governs the
			// ping service row.
			s.Interval = *d.PingInterval
		case hasDef && def.Interval > 0:
			s.Interval = def.Interval
		case ct == topology.CheckPing:
			s.Interval = fallbackPingInterval
		default:
			s.Interval = fallbackInterval
		}

		switch {
		case dev.DisplayOnDevice != nil:
			s.DisplayOnDevice = *dev.DisplayOnDevice
		case hasDef:
			s.DisplayOnDevice = def.DisplayOnDevice
		}

		cfg.Services = append(cfg.Services, s)
	}
	return cfg
}

func resolveInt(dev *int, def, fallback int) int {
	if dev != nil && *dev > 0 {
		return *dev
	}
	if def > 0 {
		return def
	}
	return fallback
}

func resolveString(dev, def, fallback string) string {
	if dev != "" {
		return dev
	}
	if def != "" {
		return def
	}
	return fallback
}
