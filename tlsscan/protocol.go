package tlsscan

import (
	"context"
	"fmt"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/catalog"
	"github.com/pivotal-cf/tlsprobe/transport"
)

// ProbeProtocol attempts one handshake pinned to method and classifies the
// result. Only signals that say nothing about the peer become errors.
func (s *Scanner) ProbeProtocol(ctx context.Context, endpoint tlsprobe.Endpoint, method catalog.ProtocolMethod) (tlsprobe.ProbeOutcome, error) {
	outcome := tlsprobe.ProbeOutcome{
		Protocol: method.ID,
		Name:     method.Name,
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	_, err := s.transport.Handshake(ctx, transport.Request{
		Endpoint: endpoint,
		Version:  method.Version,
	})
	if err == nil {
		outcome.Enabled = true
		return outcome, nil
	}

	switch transport.SignalOf(err) {
	case transport.ConnectionReset, transport.VersionMismatch, transport.HandshakeFailure:
		return outcome, nil
	case transport.NoCipherAvailable, transport.MethodUnavailable:
		outcome.UnsupportedLocally = true
		outcome.Diagnostic = fmt.Sprintf("the local TLS library does not support %q", method.Name)
		return outcome, nil
	}

	return outcome, &tlsprobe.ProbeError{
		Host:     endpoint.Host,
		Port:     endpoint.Port,
		Protocol: method.ID,
		Err:      err,
	}
}
