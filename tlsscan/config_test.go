package tlsscan_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/tlsprobe/tlsscan"
)

var _ = Describe("Config", func() {
	It("has usable defaults", func() {
		config := tlsscan.DefaultConfig()

		Expect(config.Validate()).To(Succeed())
		Expect(config.Timeout).To(Equal(10 * time.Second))
		Expect(config.MaxInFlight).To(Equal(int64(20)))
		Expect(config.ReferenceHost).To(Equal("www.google.com"))
		Expect(config.ReferencePort).To(Equal(443))
		Expect(config.FailFastCiphers).To(BeFalse())
	})

	It("rejects nonsense", func() {
		config := tlsscan.DefaultConfig()
		config.Timeout = 0
		Expect(config.Validate()).To(MatchError("probe timeout must be positive"))

		config = tlsscan.DefaultConfig()
		config.MaxInFlight = 0
		Expect(config.Validate()).To(MatchError("max in flight must be at least 1, got 0"))

		config = tlsscan.DefaultConfig()
		config.ReferenceHost = ""
		Expect(config.Validate()).To(MatchError("reference host is required"))

		config = tlsscan.DefaultConfig()
		config.ReferencePort = 70000
		Expect(config.Validate()).To(HaveOccurred())
	})
})
