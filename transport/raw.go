package transport

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math/big"
	"net"
	"time"

	"golang.org/x/crypto/cryptobyte"

	"github.com/pivotal-cf/tlsprobe/catalog"
)

const (
	recordTypeChangeCipherSpec = 20
	recordTypeAlert            = 21
	recordTypeHandshake        = 22
	recordTypeApplicationData  = 23

	handshakeTypeClientHello     = 1
	handshakeTypeServerHello     = 2
	handshakeTypeCertificate       = 11
	handshakeTypeServerKeyExchange = 12
	handshakeTypeServerHelloDone   = 14

	extensionServerName          = 0x0000
	extensionSupportedGroups     = 0x000a
	extensionECPointFormats      = 0x000b
	extensionSignatureAlgorithms = 0x000d
	extensionRenegotiationInfo   = 0xff01

	maxPlaintext       = 16384
	maxRecordExpansion = 2048
)

var supportedGroups = []uint16{
	0x0017, // secp256r1
	0x0018, // secp384r1
	0x001d, // x25519
}

var signatureAlgorithms = []uint16{
	0x0401, 0x0501, 0x0601, // rsa_pkcs1 sha256/384/512
	0x0403, 0x0503, 0x0603, // ecdsa sha256/384/512
	0x0201, 0x0203, // sha1 rsa/ecdsa
	0x0402, 0x0202, // dsa sha256/sha1
}

// RawTransport writes its own ClientHello and reads the server's first
// flight, so it can offer any suite id at SSLv3 through TLS 1.2 whether or
// not Go implements the suite. The handshake is abandoned once the server
// has answered; success means the peer chose the offered version and one of
// the offered suites. A handshake pinned to a finite-field DHE suite also
// reads ServerKeyExchange and holds the group to the endpoint's MinDHSize.
type RawTransport struct {
	Dialer *net.Dialer
}

func NewRawTransport() *RawTransport {
	return &RawTransport{Dialer: &net.Dialer{}}
}

func (t *RawTransport) Handshake(ctx context.Context, req Request) (Session, error) {
	version := req.Version
	if !req.Pinned() {
		version = catalog.VersionTLS12
	}
	if version < catalog.VersionSSL30 || version > catalog.VersionTLS12 {
		return Session{}, newHandshakeError(MethodUnavailable, "raw handshakes cannot negotiate %s", req.versionName())
	}

	offered := offeredSuites(req)
	if len(offered) == 0 {
		return Session{}, newHandshakeError(NoCipherAvailable, "no suites to offer for %s", req.versionName())
	}

	hello, err := buildClientHello(version, hostnameInSNI(req.serverName()), offered)
	if err != nil {
		return Session{}, &HandshakeError{Signal: Other, Err: err}
	}

	dialer := t.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}

	conn, err := dialer.DialContext(ctx, "tcp", req.Endpoint.Address())
	if err != nil {
		return Session{}, wrap(err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	if _, err := conn.Write(hello); err != nil {
		return Session{}, wrapContext(ctx, err)
	}

	session, err := readServerFlight(newHandshakeReader(conn), req, version, offered)
	if err != nil {
		return Session{}, wrapContext(ctx, err)
	}

	return session, nil
}

// wrapContext prefers the context's own error when it ended the exchange.
func wrapContext(ctx context.Context, err error) *HandshakeError {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return wrap(ctxErr)
	}
	return wrap(err)
}

func offeredSuites(req Request) []uint16 {
	if req.Cipher != nil {
		return []uint16{req.Cipher.ID}
	}

	suites := catalog.CipherSuites()
	ids := make([]uint16, len(suites))
	for i, suite := range suites {
		ids[i] = suite.ID
	}
	return ids
}

func buildClientHello(version uint16, serverName string, suites []uint16) ([]byte, error) {
	random := make([]byte, 32)
	binary.BigEndian.PutUint32(random[0:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(random[4:]); err != nil {
		return nil, err
	}

	recordVersion := uint16(catalog.VersionTLS10)
	if version == catalog.VersionSSL30 {
		recordVersion = catalog.VersionSSL30
	}

	var b cryptobyte.Builder
	b.AddUint8(recordTypeHandshake)
	b.AddUint16(recordVersion)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddUint8(handshakeTypeClientHello)
		b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddUint16(version)
			b.AddBytes(random)
			b.AddUint8(0) // empty session id
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
				for _, suite := range suites {
					b.AddUint16(suite)
				}
			})
			b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddUint8(0) // null compression
			})
			if version == catalog.VersionSSL30 {
				return
			}
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
				addExtensions(b, version, serverName)
			})
		})
	})

	return b.Bytes()
}

func addExtensions(b *cryptobyte.Builder, version uint16, serverName string) {
	if serverName != "" {
		b.AddUint16(extensionServerName)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddUint8(0) // host_name
				b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
					b.AddBytes([]byte(serverName))
				})
			})
		})
	}

	b.AddUint16(extensionSupportedGroups)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			for _, group := range supportedGroups {
				b.AddUint16(group)
			}
		})
	})

	b.AddUint16(extensionECPointFormats)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddUint8(0) // uncompressed
		})
	})

	if version >= catalog.VersionTLS12 {
		b.AddUint16(extensionSignatureAlgorithms)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
				for _, alg := range signatureAlgorithms {
					b.AddUint16(alg)
				}
			})
		})
	}

	b.AddUint16(extensionRenegotiationInfo)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddUint8(0) // empty renegotiated_connection
	})
}

type serverHello struct {
	version     uint16
	cipherSuite uint16
}

func parseServerHello(body []byte) (serverHello, error) {
	var hello serverHello
	var sessionID cryptobyte.String
	var compression uint8

	s := cryptobyte.String(body)
	if !s.ReadUint16(&hello.version) ||
		!s.Skip(32) ||
		!s.ReadUint8LengthPrefixed(&sessionID) ||
		!s.ReadUint16(&hello.cipherSuite) ||
		!s.ReadUint8(&compression) {
		return hello, errors.New("malformed server hello")
	}

	return hello, nil
}

func parseCertificateMessage(body []byte) ([][]byte, error) {
	var list cryptobyte.String
	s := cryptobyte.String(body)
	if !s.ReadUint24LengthPrefixed(&list) || !s.Empty() {
		return nil, errors.New("malformed certificate message")
	}

	certs := [][]byte{}
	for !list.Empty() {
		var cert cryptobyte.String
		if !list.ReadUint24LengthPrefixed(&cert) {
			return nil, errors.New("malformed certificate entry")
		}
		certs = append(certs, append([]byte(nil), cert...))
	}

	return certs, nil
}

func readServerFlight(r *handshakeReader, req Request, version uint16, offered []uint16) (Session, error) {
	msgType, body, err := r.next()
	if err != nil {
		return Session{}, err
	}
	if msgType != handshakeTypeServerHello {
		return Session{}, newHandshakeError(Other, "expected server hello, got handshake message %d", msgType)
	}

	hello, err := parseServerHello(body)
	if err != nil {
		return Session{}, &HandshakeError{Signal: Other, Err: err}
	}

	if req.Pinned() && hello.version != version {
		return Session{}, newHandshakeError(VersionMismatch, "server selected version 0x%04x instead of 0x%04x", hello.version, version)
	}
	if hello.version < catalog.VersionSSL30 || hello.version > version {
		return Session{}, newHandshakeError(VersionMismatch, "server selected unsupported version 0x%04x", hello.version)
	}
	if !containsSuite(offered, hello.cipherSuite) {
		return Session{}, newHandshakeError(Other, "server selected suite 0x%04x which was not offered", hello.cipherSuite)
	}

	session := Session{Version: hello.version, CipherSuite: hello.cipherSuite}
	wantCerts := req.WantCertificates
	checkDH := req.Pinned() && req.Cipher != nil && req.Endpoint.MinDHSize > 0 && finiteFieldDHE(hello.cipherSuite)

	for wantCerts || checkDH {
		msgType, body, err := r.next()
		if err != nil {
			return Session{}, err
		}

		switch msgType {
		case handshakeTypeCertificate:
			certs, err := parseCertificateMessage(body)
			if err != nil {
				return Session{}, &HandshakeError{Signal: Other, Err: err}
			}
			session.PeerCertificates = certs
			wantCerts = false
		case handshakeTypeServerKeyExchange:
			if checkDH {
				bits, err := dhPrimeBits(body)
				if err != nil {
					return Session{}, &HandshakeError{Signal: Other, Err: err}
				}
				if bits < req.Endpoint.MinDHSize {
					return Session{}, newHandshakeError(DHGroupTooSmall, "server offered a %d-bit DH group, minimum is %d", bits, req.Endpoint.MinDHSize)
				}
				checkDH = false
			}
		case handshakeTypeServerHelloDone:
			if checkDH {
				return Session{}, newHandshakeError(Other, "server sent no key exchange for suite 0x%04x", hello.cipherSuite)
			}
			return session, nil
		}
	}

	return session, nil
}

func finiteFieldDHE(id uint16) bool {
	suite, ok := catalog.LookupCipherID(id)
	return ok && suite.FiniteFieldDHE()
}

// dhPrimeBits reads the size of dh_p, the first field of a DHE
// ServerKeyExchange.
func dhPrimeBits(body []byte) (int, error) {
	var p cryptobyte.String
	s := cryptobyte.String(body)
	if !s.ReadUint16LengthPrefixed(&p) || len(p) == 0 {
		return 0, errors.New("malformed server key exchange")
	}
	return new(big.Int).SetBytes(p).BitLen(), nil
}

func containsSuite(suites []uint16, id uint16) bool {
	for _, suite := range suites {
		if suite == id {
			return true
		}
	}
	return false
}

// handshakeReader reassembles handshake messages from records, which may
// carry several messages or a fragment of one.
type handshakeReader struct {
	conn    io.Reader
	pending []byte
	records int
}

func newHandshakeReader(conn io.Reader) *handshakeReader {
	return &handshakeReader{conn: conn}
}

func (r *handshakeReader) next() (uint8, []byte, error) {
	for {
		if len(r.pending) >= 4 {
			length := int(r.pending[1])<<16 | int(r.pending[2])<<8 | int(r.pending[3])
			if len(r.pending) >= 4+length {
				msgType := r.pending[0]
				body := r.pending[4 : 4+length]
				r.pending = r.pending[4+length:]
				return msgType, body, nil
			}
		}

		recordType, payload, err := r.readRecord()
		if err != nil {
			return 0, nil, err
		}

		switch recordType {
		case recordTypeHandshake:
			r.pending = append(r.pending, payload...)
		case recordTypeAlert:
			if len(payload) < 2 {
				return 0, nil, newHandshakeError(Other, "truncated alert")
			}
			return 0, nil, alertError(payload[1])
		default:
			return 0, nil, newHandshakeError(Other, "unexpected record type %d during handshake", recordType)
		}
	}
}

func (r *handshakeReader) readRecord() (uint8, []byte, error) {
	header := make([]byte, 5)
	if _, err := io.ReadFull(r.conn, header); err != nil {
		return 0, nil, err
	}

	recordType := header[0]
	if recordType < recordTypeChangeCipherSpec || recordType > recordTypeApplicationData || header[1] != 3 {
		if r.records == 0 {
			return 0, nil, newHandshakeError(VersionMismatch, "first record does not look like a TLS handshake")
		}
		return 0, nil, newHandshakeError(Other, "malformed record header after %d records", r.records)
	}
	r.records++

	length := int(binary.BigEndian.Uint16(header[3:5]))
	if length > maxPlaintext+maxRecordExpansion {
		return 0, nil, newHandshakeError(Other, "oversized record of %d bytes", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r.conn, payload); err != nil {
		return 0, nil, err
	}

	return recordType, payload, nil
}

func alertError(code uint8) *HandshakeError {
	description, ok := alertDescriptions[code]
	if !ok {
		return newHandshakeError(alertSignal(code), "remote error: alert %d", code)
	}
	return newHandshakeError(alertSignal(code), "remote error: %s", description)
}
