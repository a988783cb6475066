// Package transport performs single pinned handshakes against an endpoint
// and reports every failure as a typed Signal.
package transport

import (
	"context"
	"fmt"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/catalog"
)

//go:generate counterfeiter . Transport

type Transport interface {
	Handshake(ctx context.Context, req Request) (Session, error)
}

// Request describes one handshake. A zero Version leaves the version to
// negotiation and a nil Cipher offers every suite the transport can speak.
type Request struct {
	Endpoint         tlsprobe.Endpoint
	Version          uint16
	Cipher           *catalog.CipherSuite
	WantCertificates bool
}

func (r Request) Pinned() bool {
	return r.Version != 0
}

func (r Request) serverName() string {
	if r.Endpoint.ServerName != "" {
		return r.Endpoint.ServerName
	}
	return r.Endpoint.Host
}

func (r Request) versionName() string {
	if name := catalog.ProtocolName(r.Version); name != "" {
		return name
	}
	return fmt.Sprintf("0x%04x", r.Version)
}

// Session is what survives of a completed handshake. PeerCertificates are
// raw DER in the order the peer presented them, leaf first.
type Session struct {
	Version          uint16
	CipherSuite      uint16
	PeerCertificates [][]byte
}

type HandshakeError struct {
	Signal Signal
	Err    error
}

func (e *HandshakeError) Error() string {
	if e.Err == nil {
		return e.Signal.String()
	}
	return fmt.Sprintf("%s: %s", e.Signal, e.Err)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}

func newHandshakeError(signal Signal, format string, args ...interface{}) *HandshakeError {
	return &HandshakeError{Signal: signal, Err: fmt.Errorf(format, args...)}
}
