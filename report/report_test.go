package report_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/tlsprobe/db"
	"github.com/pivotal-cf/tlsprobe/report"
)

var _ = Describe("Report", func() {
	var (
		tmpdir   string
		database *db.Database
	)

	BeforeEach(func() {
		var err error

		tmpdir, err = os.MkdirTemp("", "tlsprobe_report")
		Expect(err).NotTo(HaveOccurred())

		database, err = createTestDatabase(filepath.Join(tmpdir, "database.db"))
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(database.Close()).To(Succeed())
		Expect(os.RemoveAll(tmpdir)).To(Succeed())
	})

	Describe("IsEmpty", func() {
		It("is empty without rows", func() {
			Expect(report.Report{Header: []string{"Identity"}}.IsEmpty()).To(BeTrue())
			Expect(report.Report{Rows: [][]string{{"a"}}}.IsEmpty()).To(BeFalse())
		})
	})

	Describe("BuildDeprecatedProtocolsReport", func() {
		It("shows servers of the latest assessment accepting old protocol versions", func() {
			r, err := report.BuildDeprecatedProtocolsReport(database)
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Header).To(Equal([]string{"Identity", "Address", "Deprecated Protocol(s)"}))
			Expect(r.Rows).To(Equal([][]string{
				{"alpha", "10.0.0.1:443", "SSLv3 TLSv1"},
			}))
		})
	})

	Describe("BuildWeakCiphersReport", func() {
		It("shows enabled weak cipher suites per protocol", func() {
			r, err := report.BuildWeakCiphersReport(database)
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Header).To(Equal([]string{"Identity", "Address", "Protocol", "Weak Cipher(s)"}))
			Expect(r.Rows).To(Equal([][]string{
				{"alpha", "10.0.0.1:443", "TLSv1", "RC4-SHA DES-CBC3-SHA"},
			}))
		})
	})

	Describe("BuildCertificatesReport", func() {
		It("shows expired, expiring and short-key certificates", func() {
			r, err := report.BuildCertificatesReport(database, now)
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Rows).To(Equal([][]string{
				{"alpha", "10.0.0.1:443", "0", "alpha.example.com", "2026-03-11T12:00:00Z", "expiring soon, 1024-bit RSA key"},
				{"beta", "10.0.0.2:8443", "2", "Beta Intermediate", "2026-02-28T12:00:00Z", "expired"},
			}))
		})
	})

	Context("when nothing has been saved", func() {
		BeforeEach(func() {
			Expect(database.Close()).To(Succeed())

			var err error
			database, err = db.CreateDatabase(filepath.Join(tmpdir, "empty.db"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("builds empty reports", func() {
			r, err := report.BuildDeprecatedProtocolsReport(database)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.IsEmpty()).To(BeTrue())

			r, err = report.BuildWeakCiphersReport(database)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.IsEmpty()).To(BeTrue())

			r, err = report.BuildCertificatesReport(database, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.IsEmpty()).To(BeTrue())
		})
	})
})
