package tlsscan

import (
	"context"
	"fmt"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/certparse"
	"github.com/pivotal-cf/tlsprobe/transport"
)

const certificateProbe = "certificate"

type CertificateResult struct {
	Certificate *tlsprobe.CertificateRecord
	Chain       []tlsprobe.ChainLink
}

// FetchCertificate handshakes without pinning anything and parses what the
// peer presents. A peer that refuses every handshake presents nothing, which
// is an empty result rather than an error.
func (s *Scanner) FetchCertificate(ctx context.Context, endpoint tlsprobe.Endpoint, chain bool) (CertificateResult, error) {
	result := CertificateResult{}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	session, err := s.transport.Handshake(ctx, transport.Request{
		Endpoint:         endpoint,
		WantCertificates: true,
	})
	if err != nil {
		switch transport.SignalOf(err) {
		case transport.ConnectionReset, transport.VersionMismatch, transport.HandshakeFailure:
			s.logger.Infof("%s presented no certificate: %s", endpoint, err)
			return result, nil
		}

		return result, &tlsprobe.ProbeError{
			Host:     endpoint.Host,
			Port:     endpoint.Port,
			Protocol: certificateProbe,
			Err:      err,
		}
	}

	if len(session.PeerCertificates) == 0 {
		return result, nil
	}

	if !chain {
		record, err := s.parser.Parse(certparse.EncodePEM(session.PeerCertificates[0]))
		if err != nil {
			return result, fmt.Errorf("failed to parse certificate from %s: %w", endpoint, err)
		}

		result.Certificate = &record
		return result, nil
	}

	result.Chain = []tlsprobe.ChainLink{}
	for i, der := range session.PeerCertificates {
		record, err := s.parser.Parse(certparse.EncodePEM(der))
		if err != nil {
			s.logger.Warnf("failed to parse certificate %d in the chain from %s: %s", i+1, endpoint, err)
			result.Chain = append(result.Chain, tlsprobe.ChainLink{Error: err.Error()})
		} else {
			result.Chain = append(result.Chain, tlsprobe.ChainLink{Certificate: &record})
			if result.Certificate == nil {
				result.Certificate = &record
			}
		}

		if certparse.SelfIssued(der) {
			break
		}
	}

	return result, nil
}
