package tlsscan_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/tlsprobe/catalog"
	"github.com/pivotal-cf/tlsprobe/certparse"
	"github.com/pivotal-cf/tlsprobe/openssl/opensslfakes"
	"github.com/pivotal-cf/tlsprobe/scanlog"
	"github.com/pivotal-cf/tlsprobe/tlsscan"
	"github.com/pivotal-cf/tlsprobe/transport"
	"github.com/pivotal-cf/tlsprobe/transport/transportfakes"
)

var _ = Describe("Local Capability Reporter", func() {
	var (
		fakeTransport *transportfakes.FakeTransport
		fakeTool      *opensslfakes.FakeTool
		scanner       *tlsscan.Scanner
	)

	BeforeEach(func() {
		fakeTransport = &transportfakes.FakeTransport{}
		fakeTool = &opensslfakes.FakeTool{}
		scanner = tlsscan.New(scanlog.NewNopLogger(), fakeTransport, certparse.NewParser(), fakeTool, tlsscan.DefaultConfig())

		fakeTool.VersionReturns("OpenSSL 1.0.2k-fips  26 Jan 2017", nil)
		fakeTool.CiphersReturns([]string{"ECDHE-RSA-AES256-GCM-SHA384", "AES128-SHA", "AES128-SHA", "TLS_AES_128_GCM_SHA256"}, nil)

		fakeTransport.HandshakeCalls(func(ctx context.Context, req transport.Request) (transport.Session, error) {
			switch req.Version {
			case catalog.VersionSSL20, catalog.VersionSSL30:
				return transport.Session{}, signalError(transport.MethodUnavailable)
			}
			return transport.Session{}, nil
		})
	})

	It("probes the reference endpoint", func() {
		_, err := scanner.AssessLocalLibrary(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(fakeTransport.HandshakeCallCount()).To(Equal(len(catalog.ProtocolMethods)))
		_, req := fakeTransport.HandshakeArgsForCall(0)
		Expect(req.Endpoint.Host).To(Equal("www.google.com"))
		Expect(req.Endpoint.Port).To(Equal(443))
	})

	It("reports the version and supported protocols in catalog order", func() {
		report, err := scanner.AssessLocalLibrary(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(report.LibraryVersion).To(Equal("OpenSSL 1.0.2k-fips  26 Jan 2017"))
		Expect(report.Protocols.Supported).To(Equal([]string{"TLSv1", "TLSv1.1", "TLSv1.2"}))
		Expect(report.Protocols.Unsupported).To(Equal([]string{"SSLv2", "SSLv3"}))
	})

	It("splits the catalog into compiled and missing ciphers", func() {
		report, err := scanner.AssessLocalLibrary(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(report.Ciphers.Supported).To(Equal([]string{"ECDHE-RSA-AES256-GCM-SHA384", "AES128-SHA", "TLS_AES_128_GCM_SHA256"}))
		Expect(report.Ciphers.Unsupported).To(HaveLen(len(catalog.CipherSuites()) - 2))
		Expect(report.Ciphers.Unsupported).NotTo(ContainElement("AES128-SHA"))
		Expect(report.Ciphers.Unsupported[0]).To(Equal("ECDHE-ECDSA-AES256-GCM-SHA384"))

		covered := map[string]bool{}
		for _, name := range append(report.Ciphers.Supported, report.Ciphers.Unsupported...) {
			covered[name] = true
		}
		for _, name := range catalog.CipherNames() {
			Expect(covered).To(HaveKey(name))
		}
	})

	It("fails when the version cannot be read", func() {
		fakeTool.VersionReturns("", errors.New("no openssl"))

		_, err := scanner.AssessLocalLibrary(context.Background())
		Expect(err).To(MatchError("failed to determine the library version: no openssl"))
		Expect(fakeTransport.HandshakeCallCount()).To(Equal(0))
	})

	It("fails fast on a hard protocol failure", func() {
		fakeTransport.HandshakeReturns(transport.Session{}, signalError(transport.Timeout))

		_, err := scanner.AssessLocalLibrary(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(fakeTool.CiphersCallCount()).To(Equal(0))
	})

	It("fails when the cipher list cannot be read", func() {
		fakeTool.CiphersReturns(nil, errors.New("exit status 1"))

		_, err := scanner.AssessLocalLibrary(context.Background())
		Expect(err).To(MatchError("failed to list the compiled ciphers: exit status 1"))
	})
})
