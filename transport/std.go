package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"strings"

	"github.com/pivotal-cf/tlsprobe/catalog"
)

// StdTransport handshakes with crypto/tls. It can only speak the versions
// and suites Go implements; anything else is reported as locally
// unsupported before a connection is opened.
type StdTransport struct {
	Dialer *net.Dialer
}

func NewStdTransport() *StdTransport {
	return &StdTransport{Dialer: &net.Dialer{}}
}

func (t *StdTransport) Handshake(ctx context.Context, req Request) (Session, error) {
	config, err := t.config(req)
	if err != nil {
		return Session{}, err
	}

	// The peer has accepted our version and suite once it sends its
	// certificate, even if the handshake fails later (e.g. a demand for a
	// client certificate we do not have).
	var presented [][]byte
	config.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		presented = rawCerts
		return nil
	}

	dialer := t.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}

	rawConn, err := dialer.DialContext(ctx, "tcp", req.Endpoint.Address())
	if err != nil {
		return Session{}, wrap(err)
	}
	defer rawConn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = rawConn.SetDeadline(deadline)
	}

	conn := tls.Client(rawConn, config)
	err = conn.HandshakeContext(ctx)
	if err != nil {
		if presented != nil && (req.Pinned() || req.WantCertificates) {
			session := Session{Version: req.Version, PeerCertificates: copyCertificates(presented)}
			if req.Cipher != nil {
				session.CipherSuite = req.Cipher.ID
			}
			return session, nil
		}
		if isCertificateParseError(err) {
			return t.unparsedCertificates(ctx, req, err)
		}
		return Session{}, wrap(err)
	}
	defer conn.Close()

	state := conn.ConnectionState()
	session := Session{
		Version:     state.Version,
		CipherSuite: state.CipherSuite,
	}
	if req.WantCertificates {
		for _, cert := range state.PeerCertificates {
			session.PeerCertificates = append(session.PeerCertificates, cert.Raw)
		}
	}

	return session, nil
}

// crypto/tls rejects a Certificate message holding anything it cannot parse
// before VerifyPeerCertificate runs. The peer has agreed to the version and
// suite by then, so pinned requests still count as accepted, and the raw
// reader recovers the certificates exactly as presented.
func (t *StdTransport) unparsedCertificates(ctx context.Context, req Request, cause error) (Session, error) {
	if !req.WantCertificates {
		if !req.Pinned() {
			return Session{}, wrap(cause)
		}
		session := Session{Version: req.Version}
		if req.Cipher != nil {
			session.CipherSuite = req.Cipher.ID
		}
		return session, nil
	}

	raw := &RawTransport{Dialer: t.Dialer}
	session, err := raw.Handshake(ctx, req)
	if err != nil {
		return Session{}, wrap(cause)
	}

	return session, nil
}

func isCertificateParseError(err error) bool {
	return strings.Contains(err.Error(), "tls: failed to parse certificate from server")
}

func (t *StdTransport) config(req Request) (*tls.Config, error) {
	config := &tls.Config{
		// Probes never send secret information; they only observe what the
		// peer is willing to negotiate.
		InsecureSkipVerify: true,
		ServerName:         hostnameInSNI(req.serverName()),
	}

	if !req.Pinned() {
		config.MinVersion = catalog.VersionTLS10
		config.CipherSuites = implementedSuites(0)
		return config, nil
	}

	switch req.Version {
	case catalog.VersionTLS10, catalog.VersionTLS11, catalog.VersionTLS12:
	default:
		return nil, newHandshakeError(MethodUnavailable, "crypto/tls cannot negotiate %s", req.versionName())
	}

	config.MinVersion = req.Version
	config.MaxVersion = req.Version

	if req.Cipher != nil {
		suite, ok := implementedSuite(req.Cipher.ID)
		if !ok || !supportsVersion(suite, req.Version) {
			return nil, newHandshakeError(NoCipherMatch, "crypto/tls has no %s suite for %s", req.Cipher.Name, req.versionName())
		}
		config.CipherSuites = []uint16{suite.ID}
		return config, nil
	}

	suites := implementedSuites(req.Version)
	if len(suites) == 0 {
		return nil, newHandshakeError(NoCipherAvailable, "crypto/tls has no suites for %s", req.versionName())
	}
	config.CipherSuites = suites

	return config, nil
}

func allImplementedSuites() []*tls.CipherSuite {
	return append(tls.CipherSuites(), tls.InsecureCipherSuites()...)
}

func implementedSuite(id uint16) (*tls.CipherSuite, bool) {
	for _, suite := range allImplementedSuites() {
		if suite.ID == id {
			return suite, true
		}
	}
	return nil, false
}

// implementedSuites lists the suite ids usable at version, or at any
// version when version is zero.
func implementedSuites(version uint16) []uint16 {
	ids := []uint16{}
	for _, suite := range allImplementedSuites() {
		if version == 0 || supportsVersion(suite, version) {
			ids = append(ids, suite.ID)
		}
	}
	return ids
}

func supportsVersion(suite *tls.CipherSuite, version uint16) bool {
	for _, v := range suite.SupportedVersions {
		if v == version {
			return true
		}
	}
	return false
}

func copyCertificates(certs [][]byte) [][]byte {
	out := make([][]byte, len(certs))
	for i, cert := range certs {
		out[i] = append([]byte(nil), cert...)
	}
	return out
}
