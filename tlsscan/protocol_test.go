package tlsscan_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/catalog"
	"github.com/pivotal-cf/tlsprobe/certparse"
	"github.com/pivotal-cf/tlsprobe/openssl/opensslfakes"
	"github.com/pivotal-cf/tlsprobe/scanlog"
	"github.com/pivotal-cf/tlsprobe/tlsscan"
	"github.com/pivotal-cf/tlsprobe/transport"
	"github.com/pivotal-cf/tlsprobe/transport/transportfakes"
)

var _ = Describe("Protocol Prober", func() {
	var (
		fakeTransport *transportfakes.FakeTransport
		scanner       *tlsscan.Scanner
		endpoint      tlsprobe.Endpoint
		method        catalog.ProtocolMethod
	)

	BeforeEach(func() {
		fakeTransport = &transportfakes.FakeTransport{}
		scanner = tlsscan.New(scanlog.NewNopLogger(), fakeTransport, certparse.NewParser(), &opensslfakes.FakeTool{}, tlsscan.DefaultConfig())
		endpoint = tlsprobe.Endpoint{Host: "example.com", Port: 443}
		method, _ = catalog.LookupProtocol("TLSv1_1_method")
	})

	It("pins the handshake to the method's version", func() {
		_, err := scanner.ProbeProtocol(context.Background(), endpoint, method)
		Expect(err).NotTo(HaveOccurred())

		Expect(fakeTransport.HandshakeCallCount()).To(Equal(1))
		ctx, req := fakeTransport.HandshakeArgsForCall(0)
		Expect(req.Endpoint).To(Equal(endpoint))
		Expect(req.Version).To(Equal(uint16(catalog.VersionTLS11)))
		Expect(req.Cipher).To(BeNil())

		_, hasDeadline := ctx.Deadline()
		Expect(hasDeadline).To(BeTrue())
	})

	DescribeTable("classifying signals",
		func(err error, enabled, unsupported bool, diagnostic string) {
			fakeTransport.HandshakeReturns(transport.Session{}, err)

			outcome, probeErr := scanner.ProbeProtocol(context.Background(), endpoint, method)
			Expect(probeErr).NotTo(HaveOccurred())

			Expect(outcome).To(Equal(tlsprobe.ProbeOutcome{
				Protocol:           "TLSv1_1_method",
				Name:               "TLSv1.1",
				Enabled:            enabled,
				UnsupportedLocally: unsupported,
				Diagnostic:         diagnostic,
			}))
		},
		Entry("success", nil, true, false, ""),
		Entry("connection reset", signalError(transport.ConnectionReset), false, false, ""),
		Entry("version mismatch", signalError(transport.VersionMismatch), false, false, ""),
		Entry("handshake failure", signalError(transport.HandshakeFailure), false, false, ""),
		Entry("no cipher available", signalError(transport.NoCipherAvailable), false, true, `the local TLS library does not support "TLSv1.1"`),
		Entry("method unavailable", signalError(transport.MethodUnavailable), false, true, `the local TLS library does not support "TLSv1.1"`),
	)

	DescribeTable("hard failures",
		func(err error) {
			fakeTransport.HandshakeReturns(transport.Session{}, err)

			_, probeErr := scanner.ProbeProtocol(context.Background(), endpoint, method)
			Expect(probeErr).To(HaveOccurred())

			var pe *tlsprobe.ProbeError
			Expect(errors.As(probeErr, &pe)).To(BeTrue())
			Expect(pe.Host).To(Equal("example.com"))
			Expect(pe.Port).To(Equal(443))
			Expect(pe.Protocol).To(Equal("TLSv1_1_method"))
			Expect(pe.Cipher).To(BeEmpty())
			Expect(errors.Unwrap(probeErr)).To(Equal(err))
		},
		Entry("timeout", signalError(transport.Timeout)),
		Entry("no cipher match", signalError(transport.NoCipherMatch)),
		Entry("other", signalError(transport.Other)),
		Entry("untyped error", errors.New("boom")),
	)

	It("never reports a protocol both enabled and unsupported", func() {
		signals := []transport.Signal{
			transport.Other, transport.ConnectionReset, transport.VersionMismatch, transport.NoCipherAvailable,
			transport.NoCipherMatch, transport.HandshakeFailure, transport.MethodUnavailable, transport.Timeout,
		}

		for _, signal := range signals {
			fakeTransport.HandshakeReturns(transport.Session{}, signalError(signal))
			for _, m := range catalog.ProtocolMethods {
				outcome, err := scanner.ProbeProtocol(context.Background(), endpoint, m)
				if err != nil {
					continue
				}
				Expect(outcome.Enabled && outcome.UnsupportedLocally).To(BeFalse())
			}
		}
	})
})
