package inventory_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/inventory"
)

var _ = Describe("Parser", func() {
	It("parses the file", func() {
		inv, err := inventory.Parse("testdata/example.yml")
		Expect(err).NotTo(HaveOccurred())

		Expect(inv).To(Equal(tlsprobe.Inventory{
			Targets: []tlsprobe.Target{
				{
					Name: "web",
					Endpoint: tlsprobe.Endpoint{
						Host:       "web.example.com",
						Port:       8443,
						ServerName: "www.example.com",
					},
					Chain: true,
				},
				{
					Name:     "10.0.0.7",
					Endpoint: tlsprobe.Endpoint{Host: "10.0.0.7", Port: 443},
				},
				{
					Name: "strict",
					Endpoint: tlsprobe.Endpoint{
						Host:       "api.example.com",
						Port:       443,
						VerifyPeer: true,
						MinDHSize:  2048,
					},
				},
			},
		}))
	})

	Context("when the file does not exist", func() {
		It("returns an error", func() {
			_, err := inventory.Parse("this/does/not/exist")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("when the file is mangled", func() {
		It("returns an error", func() {
			_, err := inventory.Parse("testdata/broken.yml")
			Expect(err).To(MatchError("incorrect yaml format"))
		})
	})

	Context("when the file has unknown keys", func() {
		It("returns an error", func() {
			_, err := inventory.ParseBytes([]byte("targets:\n- host: a\n  prot: 1\n"))
			Expect(err).To(MatchError("incorrect yaml format"))
		})
	})

	Context("when there are no targets", func() {
		It("returns an error", func() {
			_, err := inventory.ParseBytes([]byte("targets: []\n"))
			Expect(err).To(MatchError("file is empty"))
		})
	})

	Context("when a target is invalid", func() {
		It("names the target", func() {
			_, err := inventory.ParseBytes([]byte("targets:\n- host: a\n- port: 22\n"))
			Expect(err).To(MatchError("target 2: endpoint host is required"))
		})

		It("rejects out of range ports", func() {
			_, err := inventory.ParseBytes([]byte("targets:\n- host: a\n  port: 70000\n"))
			Expect(err).To(MatchError("target 1: endpoint port 70000 is out of range"))
		})
	})
})
