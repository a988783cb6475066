package tlsprobe

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

type Endpoint struct {
	Host       string `json:"host" yaml:"host"`
	Port       int    `json:"port" yaml:"port"`
	ServerName string `json:"server_name,omitempty" yaml:"server_name"`

	// VerifyPeer is carried through inventories and reports for consumers.
	// Handshakes never verify the peer whatever its value.
	VerifyPeer bool `json:"verify_peer,omitempty" yaml:"verify_peer"`

	// MinDHSize is the smallest finite-field Diffie-Hellman group, in bits,
	// accepted from the peer on a cipher handshake. Zero means no minimum.
	// Only the raw transport can negotiate such groups.
	MinDHSize int `json:"min_dh_size,omitempty" yaml:"min_dh_size"`
}

func (e Endpoint) Validate() error {
	if e.Host == "" {
		return errors.New("endpoint host is required")
	}

	if e.Port < 1 || e.Port > 65535 {
		return fmt.Errorf("endpoint port %d is out of range", e.Port)
	}

	if e.MinDHSize < 0 {
		return fmt.Errorf("endpoint minimum DH group size %d is negative", e.MinDHSize)
	}

	return nil
}

func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e Endpoint) String() string {
	return e.Address()
}

type ProbeOutcome struct {
	Protocol           string `json:"protocol"`
	Name               string `json:"name"`
	Cipher             string `json:"cipher,omitempty"`
	Enabled            bool   `json:"enabled"`
	UnsupportedLocally bool   `json:"unsupported_locally,omitempty"`
	Diagnostic         string `json:"error,omitempty"`
}

type CipherLists struct {
	Enabled            []string `json:"enabled"`
	Disabled           []string `json:"disabled"`
	UnsupportedLocally []string `json:"unsupported"`
}

// CapabilityMatrix is keyed by protocol method identifier.
type CapabilityMatrix map[string]CipherLists

// Ensure gives protocol an entry even if no cipher outcome is ever added.
func (m CapabilityMatrix) Ensure(protocol string) {
	if _, ok := m[protocol]; ok {
		return
	}

	m[protocol] = CipherLists{
		Enabled:            []string{},
		Disabled:           []string{},
		UnsupportedLocally: []string{},
	}
}

func (m CapabilityMatrix) Add(outcome ProbeOutcome) {
	m.Ensure(outcome.Protocol)
	lists := m[outcome.Protocol]

	switch {
	case outcome.Enabled:
		lists.Enabled = append(lists.Enabled, outcome.Cipher)
	case outcome.UnsupportedLocally:
		lists.UnsupportedLocally = append(lists.UnsupportedLocally, outcome.Cipher)
	default:
		lists.Disabled = append(lists.Disabled, outcome.Cipher)
	}

	m[outcome.Protocol] = lists
}

type DistinguishedName struct {
	Country            string `json:"country,omitempty"`
	Province           string `json:"province,omitempty"`
	Locality           string `json:"locality,omitempty"`
	Organization       string `json:"organization,omitempty"`
	OrganizationalUnit string `json:"organizational_unit,omitempty"`
	CommonName         string `json:"common_name,omitempty"`
}

func (n DistinguishedName) String() string {
	var s string

	for _, part := range []struct{ key, value string }{
		{"C", n.Country},
		{"ST", n.Province},
		{"L", n.Locality},
		{"O", n.Organization},
		{"OU", n.OrganizationalUnit},
		{"CN", n.CommonName},
	} {
		if part.value == "" {
			continue
		}
		s += "/" + part.key + "=" + part.value
	}

	return s
}

type PublicKey struct {
	Algorithm string `json:"algorithm"`
	Bits      int    `json:"bits"`
}

type Extension struct {
	OID      string `json:"oid"`
	Critical bool   `json:"critical"`
}

type CertificateRecord struct {
	Serial             string            `json:"serial"`
	Subject            DistinguishedName `json:"subject"`
	Issuer             DistinguishedName `json:"issuer"`
	NotBefore          time.Time         `json:"not_before"`
	NotAfter           time.Time         `json:"not_after"`
	SubjectAltNames    []string          `json:"subject_alt_names"`
	PublicKey          PublicKey         `json:"public_key"`
	SignatureAlgorithm string            `json:"signature_algorithm"`
	Version            int               `json:"version"`
	Fingerprint        string            `json:"fingerprint"`
	FingerprintSHA256  string            `json:"fingerprint_sha256"`
	Extensions         []Extension       `json:"extensions"`

	PEM string `json:"pem"`
}

// ChainLink holds either a parsed certificate or the reason it could not be
// parsed.
type ChainLink struct {
	Certificate *CertificateRecord `json:"certificate,omitempty"`
	Error       string             `json:"error,omitempty"`
}

func (l ChainLink) IsError() bool {
	return l.Certificate == nil
}

type ProbeFailure struct {
	Protocol string `json:"protocol"`
	Cipher   string `json:"cipher,omitempty"`
	Error    string `json:"error"`
}

type ServerReport struct {
	Host             string             `json:"host"`
	Port             int                `json:"port"`
	Certificate      *CertificateRecord `json:"certificate"`
	CertificateChain []ChainLink        `json:"certificate_chain,omitempty"`
	Protocols        []ProbeOutcome     `json:"protocols"`
	Ciphers          CapabilityMatrix   `json:"ciphers"`
	Errors           []ProbeFailure     `json:"errors,omitempty"`
}

func (r ServerReport) HasTLS() bool {
	return len(r.Ciphers) > 0
}

type SupportLists struct {
	Supported   []string `json:"supported"`
	Unsupported []string `json:"unsupported"`
}

type LocalCapabilityReport struct {
	LibraryVersion string       `json:"version"`
	Protocols      SupportLists `json:"protocols"`
	Ciphers        SupportLists `json:"ciphers"`
}

// ProbeError is a hard failure: the probe produced a signal that does not
// classify as enabled, disabled or unsupported.
type ProbeError struct {
	Host     string
	Port     int
	Protocol string
	Cipher   string
	Err      error
}

func (e *ProbeError) Error() string {
	if e.Cipher == "" {
		return fmt.Sprintf("probe %s:%d %s: %s", e.Host, e.Port, e.Protocol, e.Err)
	}

	return fmt.Sprintf("probe %s:%d %s %s: %s", e.Host, e.Port, e.Protocol, e.Cipher, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
