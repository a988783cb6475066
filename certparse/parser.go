// Package certparse turns certificates presented during a handshake into
// CertificateRecords.
package certparse

import (
	"bytes"
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	zx509 "github.com/zmap/zcrypto/x509"
	"github.com/zmap/zcrypto/x509/pkix"

	"github.com/pivotal-cf/tlsprobe"
)

const pemType = "CERTIFICATE"

// EncodePEM renders raw DER as a canonical PEM block.
func EncodePEM(der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: pemType, Bytes: der}))
}

//go:generate counterfeiter . Parser

type Parser interface {
	Parse(pemText string) (tlsprobe.CertificateRecord, error)
}

type X509Parser struct{}

func NewParser() *X509Parser {
	return &X509Parser{}
}

func (p *X509Parser) Parse(pemText string) (tlsprobe.CertificateRecord, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return tlsprobe.CertificateRecord{}, errors.New("certificate is not PEM encoded")
	}
	if block.Type != pemType {
		return tlsprobe.CertificateRecord{}, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}

	cert, err := zx509.ParseCertificate(block.Bytes)
	if err != nil {
		return tlsprobe.CertificateRecord{}, fmt.Errorf("failed to parse certificate: %w", err)
	}

	return tlsprobe.CertificateRecord{
		Serial:             fmt.Sprintf("%X", cert.SerialNumber),
		Subject:            distinguishedName(cert.Subject),
		Issuer:             distinguishedName(cert.Issuer),
		NotBefore:          cert.NotBefore.UTC(),
		NotAfter:           cert.NotAfter.UTC(),
		SubjectAltNames:    subjectAltNames(cert),
		PublicKey:          publicKey(cert),
		SignatureAlgorithm: cert.SignatureAlgorithm.String(),
		Version:            cert.Version,
		Fingerprint:        fingerprint(sha1Sum(cert.Raw)),
		FingerprintSHA256:  fingerprint(sha256Sum(cert.Raw)),
		Extensions:         extensions(cert),
		PEM:                EncodePEM(cert.Raw),
	}, nil
}

// SelfIssued reports whether der is a certificate whose issuer is its own
// subject. Unparseable input is not self-issued.
func SelfIssued(der []byte) bool {
	cert, err := zx509.ParseCertificate(der)
	if err != nil {
		return false
	}
	return bytes.Equal(cert.RawIssuer, cert.RawSubject)
}

func distinguishedName(name pkix.Name) tlsprobe.DistinguishedName {
	return tlsprobe.DistinguishedName{
		Country:            singleton(name.Country),
		Province:           singleton(name.Province),
		Locality:           singleton(name.Locality),
		Organization:       singleton(name.Organization),
		OrganizationalUnit: singleton(name.OrganizationalUnit),
		CommonName:         name.CommonName,
	}
}

func singleton(array []string) string {
	if len(array) > 0 {
		return array[0]
	}

	return ""
}

func subjectAltNames(cert *zx509.Certificate) []string {
	names := []string{}
	names = append(names, cert.DNSNames...)
	for _, ip := range cert.IPAddresses {
		names = append(names, ip.String())
	}
	names = append(names, cert.EmailAddresses...)
	return names
}

func publicKey(cert *zx509.Certificate) tlsprobe.PublicKey {
	key := tlsprobe.PublicKey{Algorithm: cert.PublicKeyAlgorithm.String()}

	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		key.Bits = pub.N.BitLen()
	case *zx509.AugmentedECDSA:
		// zcrypto wraps ECDSA keys
		if pub.Pub != nil {
			key.Bits = pub.Pub.Params().BitSize
		}
	case *ecdsa.PublicKey:
		key.Bits = pub.Params().BitSize
	case ed25519.PublicKey:
		key.Bits = 256
	case *dsa.PublicKey:
		key.Bits = pub.P.BitLen()
	}

	return key
}

func extensions(cert *zx509.Certificate) []tlsprobe.Extension {
	exts := make([]tlsprobe.Extension, 0, len(cert.Extensions))
	for _, ext := range cert.Extensions {
		exts = append(exts, tlsprobe.Extension{
			OID:      ext.Id.String(),
			Critical: ext.Critical,
		})
	}
	return exts
}

func sha1Sum(raw []byte) []byte {
	sum := sha1.Sum(raw)
	return sum[:]
}

func sha256Sum(raw []byte) []byte {
	sum := sha256.Sum256(raw)
	return sum[:]
}

// fingerprint formats a digest as colon separated upper case hex pairs.
func fingerprint(sum []byte) string {
	parts := make([]string, len(sum))
	for i, b := range sum {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}
