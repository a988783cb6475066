package tlsscan

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/catalog"
)

// AssessLocalLibrary reports what the local library can do: its version,
// the protocol versions it completes against the reference endpoint and
// which catalog ciphers it was compiled with.
func (s *Scanner) AssessLocalLibrary(ctx context.Context) (tlsprobe.LocalCapabilityReport, error) {
	report := tlsprobe.LocalCapabilityReport{
		Protocols: tlsprobe.SupportLists{Supported: []string{}, Unsupported: []string{}},
		Ciphers:   tlsprobe.SupportLists{Supported: []string{}, Unsupported: []string{}},
	}

	version, err := s.tool.Version(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to determine the library version: %w", err)
	}
	report.LibraryVersion = version

	reference := tlsprobe.Endpoint{
		Host: s.config.ReferenceHost,
		Port: s.config.ReferencePort,
	}
	logger := s.logger.With("host", reference.Host, "port", reference.Port)

	sem := semaphore.NewWeighted(s.config.MaxInFlight)
	outcomes, err := s.probeProtocols(ctx, logger, sem, reference)
	if err != nil {
		return report, err
	}

	for _, outcome := range outcomes {
		if outcome.Enabled {
			report.Protocols.Supported = append(report.Protocols.Supported, outcome.Name)
		} else {
			report.Protocols.Unsupported = append(report.Protocols.Unsupported, outcome.Name)
		}
	}

	compiled, err := s.tool.Ciphers(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list the compiled ciphers: %w", err)
	}

	seen := map[string]bool{}
	for _, name := range compiled {
		if seen[name] {
			continue
		}
		seen[name] = true
		report.Ciphers.Supported = append(report.Ciphers.Supported, name)
	}

	for _, name := range catalog.CipherNames() {
		if !seen[name] {
			report.Ciphers.Unsupported = append(report.Ciphers.Unsupported, name)
		}
	}

	return report, nil
}
