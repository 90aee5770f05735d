package probe

import (
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
)

const (
	oidSysDescr  = "1.3.6.1.2.1.1.1.0"
	oidSysUptime = "1.3.6.1.2.1.1.3.0"
)

// newSNMPClient builds a v2c client. The probe surface is keyed by a bare
// community string, so v3 credentials have no place to come from here.
func newSNMPClient(host, community string, timeout time.Duration) *gosnmp.GoSNMP {
	return &gosnmp.GoSNMP{
		Target:    host,
		Port:      161,
		Version:   gosnmp.Version2c,
		Community: community,
		Timeout:   timeout,
		Retries:   2,
	}
}

func snmpGet(host, community string, timeout time.Duration, oid string) (*gosnmp.SnmpPDU, error) {
	client := newSNMPClient(host, community, timeout)
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("snmp connect %s: %w", host, err)
	}
	defer client.Conn.Close()

	res, err := client.Get([]string{oid})
	if err != nil {
		return nil, err
	}
	if len(res.Variables) == 0 {
		return nil, fmt.Errorf("snmp get %s: empty response", oid)
	}
	pdu := res.Variables[0]
	if pdu.Type == gosnmp.NoSuchObject || pdu.Type == gosnmp.NoSuchInstance {
		return nil, fmt.Errorf("snmp get %s: no such object", oid)
	}
	return &pdu, nil
}

func querySysDescr(host, community string, timeout time.Duration) (string, error) {
	pdu, err := snmpGet(host, community, timeout, oidSysDescr)
	if err != nil {
		return "", err
	}
	switch v := pdu.Value.(type) {
	case []byte:
		return string(v), nil
	case string:
		return v, nil
	}
	return fmt.Sprintf("%v", pdu.Value), nil
}

func queryUptime(host, community string, timeout time.Duration) (time.Duration, error) {
	pdu, err := snmpGet(host, community, timeout, oidSysUptime)
	if err != nil {
		return 0, err
	}
	// sysUpTime is TimeTicks, hundredths of a second.
	ticks := gosnmp.ToBigInt(pdu.Value).Int64()
	return time.Duration(ticks) * 10 * time.Millisecond, nil
}

// formatUptime renders a duration the way network operators read it.
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
