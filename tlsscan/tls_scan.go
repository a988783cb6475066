package tlsscan

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/catalog"
	"github.com/pivotal-cf/tlsprobe/scanlog"
)

type cipherJob struct {
	method catalog.ProtocolMethod
	suite  catalog.CipherSuite
}

type cipherResult struct {
	outcome tlsprobe.ProbeOutcome
	err     error
}

func acquire(ctx context.Context, logger scanlog.Logger, sem *semaphore.Weighted) error {
	if err := sem.Acquire(ctx, 1); err != nil {
		logger.Errorf("Failed to acquire lock: %q", err)
		return err
	}
	logger.Debugf("Acquired lock")
	return nil
}

func release(logger scanlog.Logger, sem *semaphore.Weighted) {
	logger.Debugf("Releasing lock")
	sem.Release(1)
}

// AssessServer retrieves the certificate, finds the enabled protocols and
// then probes every catalog cipher under each of them.
func (s *Scanner) AssessServer(ctx context.Context, endpoint tlsprobe.Endpoint, chain bool) (tlsprobe.ServerReport, error) {
	report := tlsprobe.ServerReport{
		Host:      endpoint.Host,
		Port:      endpoint.Port,
		Protocols: []tlsprobe.ProbeOutcome{},
		Ciphers:   tlsprobe.CapabilityMatrix{},
	}

	if err := endpoint.Validate(); err != nil {
		return report, err
	}

	logger := s.logger.With("host", endpoint.Host, "port", endpoint.Port)
	logger.Infof("About to assess %s", endpoint)

	cert, err := s.FetchCertificate(ctx, endpoint, chain)
	if err != nil {
		return report, err
	}
	report.Certificate = cert.Certificate
	if chain {
		report.CertificateChain = cert.Chain
	}

	sem := semaphore.NewWeighted(s.config.MaxInFlight)

	protocols, err := s.probeProtocols(ctx, logger, sem, endpoint)
	if err != nil {
		return report, err
	}
	report.Protocols = protocols

	enabled := []catalog.ProtocolMethod{}
	for i, outcome := range protocols {
		if outcome.Enabled {
			enabled = append(enabled, catalog.ProtocolMethods[i])
		}
	}

	if len(enabled) == 0 {
		logger.Infof("Skipping cipher scan for %s (no enabled protocols)", endpoint)
		return report, nil
	}

	logger.Infof("Starting cipher scan for %s", endpoint)

	jobs := []cipherJob{}
	for _, method := range enabled {
		report.Ciphers.Ensure(method.ID)
		for _, suite := range catalog.CipherSuites() {
			jobs = append(jobs, cipherJob{method: method, suite: suite})
		}
	}

	results, err := s.probeCiphers(ctx, logger, sem, endpoint, jobs)
	if err != nil {
		return report, err
	}

	var errs error
	for i, result := range results {
		if result.err != nil {
			errs = multierr.Append(errs, result.err)
			report.Errors = append(report.Errors, tlsprobe.ProbeFailure{
				Protocol: jobs[i].method.ID,
				Cipher:   jobs[i].suite.Name,
				Error:    result.err.Error(),
			})
			continue
		}
		report.Ciphers.Add(result.outcome)
	}

	if errs != nil {
		logger.Warnf("%d cipher probes against %s failed: %s", len(multierr.Errors(errs)), endpoint, errs)
	}

	logger.Infof("Finished cipher scan for %s", endpoint)
	return report, nil
}

// probeProtocols runs every protocol probe and returns the outcomes in
// catalog order. The first hard failure cancels the rest.
func (s *Scanner) probeProtocols(ctx context.Context, logger scanlog.Logger, sem *semaphore.Weighted, endpoint tlsprobe.Endpoint) ([]tlsprobe.ProbeOutcome, error) {
	outcomes := make([]tlsprobe.ProbeOutcome, len(catalog.ProtocolMethods))

	g, gctx := errgroup.WithContext(ctx)
	for i, method := range catalog.ProtocolMethods {
		i, method := i, method
		probeLogger := logger.With("version", method.Name)

		g.Go(func() error {
			if err := acquire(gctx, probeLogger, sem); err != nil {
				return err
			}
			defer release(probeLogger, sem)

			outcome, err := s.ProbeProtocol(gctx, endpoint, method)
			if err != nil {
				probeLogger.Errorf("Protocol probe failed: %s", err)
				return err
			}

			probeLogger.Debugf("Protocol enabled: %t", outcome.Enabled)
			outcomes[i] = outcome
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// probeCiphers runs one probe per job and returns results indexed like
// jobs, so folding them is independent of completion order. Unless the
// scanner is configured to fail fast, hard failures are kept in the result
// slots and the remaining probes carry on.
func (s *Scanner) probeCiphers(ctx context.Context, logger scanlog.Logger, sem *semaphore.Weighted, endpoint tlsprobe.Endpoint, jobs []cipherJob) ([]cipherResult, error) {
	results := make([]cipherResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		probeLogger := logger.With("version", job.method.Name, "suite", job.suite.Name)

		g.Go(func() error {
			if err := acquire(gctx, probeLogger, sem); err != nil {
				return err
			}
			defer release(probeLogger, sem)

			outcome, err := s.ProbeCipher(gctx, endpoint, job.method, job.suite)
			if err != nil {
				probeLogger.Debugf("Cipher probe failed: %s", err)
				if s.config.FailFastCiphers {
					return err
				}
			}

			results[i] = cipherResult{outcome: outcome, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cipher scan of %s aborted: %w", endpoint, err)
	}

	return results, nil
}
