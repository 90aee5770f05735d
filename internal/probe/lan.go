package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ullaakut/nmap/v3"
	"github.com/sirupsen/logrus"
)

// pingScan sweeps a target (single host or CIDR) with an nmap ping scan
// and summarizes which hosts answered. A sweep with no hosts up reads as
// a timeout so the result text classifies as a failure.
func pingScan(ctx context.Context, log *logrus.Logger, target string) (string, error) {
	scanner, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(target),
		nmap.WithPingScan(),
	)
	if err != nil {
		return "", fmt.Errorf("create scanner: %w", err)
	}

	result, warnings, err := scanner.Run()
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", target, err)
	}
	if warnings != nil && len(*warnings) > 0 {
		log.WithField("target", target).Warnf("nmap warnings: %s", strings.Join(*warnings, "; "))
	}

	var b strings.Builder
	up := 0
	for _, host := range result.Hosts {
		if host.Status.State != "up" || len(host.Addresses) == 0 {
			continue
		}
		up++
		fmt.Fprintf(&b, "host %s is up\n", host.Addresses[0].Addr)
	}
	if up == 0 {
		return fmt.Sprintf("lan scan of %s timed out: no hosts up", target), nil
	}
	return fmt.Sprintf("%d host(s) up\n%s", up, b.String()), nil
}
