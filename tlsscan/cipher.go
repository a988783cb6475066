package tlsscan

import (
	"context"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/catalog"
	"github.com/pivotal-cf/tlsprobe/transport"
)

// ProbeCipher attempts one handshake pinned to method offering only suite.
func (s *Scanner) ProbeCipher(ctx context.Context, endpoint tlsprobe.Endpoint, method catalog.ProtocolMethod, suite catalog.CipherSuite) (tlsprobe.ProbeOutcome, error) {
	outcome := tlsprobe.ProbeOutcome{
		Protocol: method.ID,
		Name:     method.Name,
		Cipher:   suite.Name,
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	_, err := s.transport.Handshake(ctx, transport.Request{
		Endpoint: endpoint,
		Version:  method.Version,
		Cipher:   &suite,
	})
	if err == nil {
		outcome.Enabled = true
		return outcome, nil
	}

	switch transport.SignalOf(err) {
	case transport.HandshakeFailure, transport.NoCipherAvailable, transport.DHGroupTooSmall:
		return outcome, nil
	case transport.NoCipherMatch, transport.MethodUnavailable:
		outcome.UnsupportedLocally = true
		return outcome, nil
	}

	return outcome, &tlsprobe.ProbeError{
		Host:     endpoint.Host,
		Port:     endpoint.Port,
		Protocol: method.ID,
		Cipher:   suite.Name,
		Err:      err,
	}
}
