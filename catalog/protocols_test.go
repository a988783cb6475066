package catalog_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/tlsprobe/catalog"
)

var _ = Describe("Protocols", func() {
	It("lists the five methods oldest first", func() {
		ids := []string{}
		for _, method := range catalog.ProtocolMethods {
			ids = append(ids, method.ID)
		}

		Expect(ids).To(Equal([]string{
			"SSLv2_method", "SSLv3_method", "TLSv1_method", "TLSv1_1_method", "TLSv1_2_method",
		}))
	})

	It("looks up methods by id", func() {
		method, ok := catalog.LookupProtocol("TLSv1_1_method")
		Expect(ok).To(BeTrue())
		Expect(method.Name).To(Equal("TLSv1.1"))
		Expect(method.Version).To(Equal(uint16(catalog.VersionTLS11)))

		_, ok = catalog.LookupProtocol("TLSv1_3_method")
		Expect(ok).To(BeFalse())
	})

	It("names wire versions", func() {
		Expect(catalog.ProtocolName(0x0303)).To(Equal("TLSv1.2"))
		Expect(catalog.ProtocolName(0x0304)).To(Equal(""))
	})
})
