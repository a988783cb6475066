package commands_test

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
	. "github.com/onsi/gomega/gexec"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/db"
)

func startTLS12Server() *httptest.Server {
	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "hello?")
	}))
	server.TLS = &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS12,
	}
	server.StartTLS()

	return server
}

func hostAndPort(server *httptest.Server) (string, string) {
	u, err := url.Parse(server.URL)
	Expect(err).NotTo(HaveOccurred())

	host, port, err := net.SplitHostPort(u.Host)
	Expect(err).NotTo(HaveOccurred())

	return host, port
}

var _ = Describe("Assess", func() {
	var (
		server     *httptest.Server
		host, port string
		tmpdir     string
	)

	BeforeEach(func() {
		server = startTLS12Server()
		host, port = hostAndPort(server)

		var err error
		tmpdir, err = os.MkdirTemp("", "tlsprobe_commands")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
		os.RemoveAll(tmpdir)
	})

	decode := func(session *Session) []tlsprobe.TargetReport {
		var results []tlsprobe.TargetReport
		Expect(json.Unmarshal(session.Out.Contents(), &results)).To(Succeed())
		return results
	}

	It("requires exactly one target source", func() {
		session := runCommand("assess")

		Expect(session).To(Exit(1))
		Expect(session.Err).To(Say("exactly one of --host, --inventory or --nmap-results is required"))
	})

	It("rejects an invalid probe configuration", func() {
		session := runCommand("assess", "--host", host, "--port", port, "--max-in-flight", "0")

		Expect(session).To(Exit(1))
		Expect(session.Err).To(Say("max in flight must be at least 1, got 0"))
	})

	It("assesses a single host", func() {
		session := runCommand("assess", "--host", host, "--port", port, "--json", "--timeout", "5s")
		Expect(session).To(Exit(0))

		results := decode(session)
		Expect(results).To(HaveLen(1))

		report := results[0].Report
		Expect(results[0].Name).To(Equal(host))
		Expect(report.Certificate).NotTo(BeNil())
		Expect(report.Certificate.Subject.Organization).To(Equal("Acme Co"))

		Expect(report.Protocols).To(HaveLen(5))
		for _, outcome := range report.Protocols {
			Expect(outcome.Enabled).To(Equal(outcome.Protocol == "TLSv1_2_method"), outcome.Protocol)
		}

		Expect(report.Ciphers).To(HaveLen(1))
		Expect(report.Ciphers["TLSv1_2_method"].Enabled).To(ContainElement("ECDHE-RSA-AES128-GCM-SHA256"))
		Expect(report.Ciphers["TLSv1_2_method"].Enabled).NotTo(ContainElement("RC4-SHA"))
	})

	It("prints a table by default", func() {
		session := runCommand("assess", "--host", host, "--port", port)
		Expect(session).To(Exit(0))

		Expect(session.Out).To(Say("Name"))
		Expect(session.Out).To(Say(host))
		Expect(session.Out).To(Say("TLSv1.2 ciphers: .*ECDHE-RSA-AES128-GCM-SHA256"))
	})

	It("assesses the targets of an inventory", func() {
		inventoryPath := filepath.Join(tmpdir, "inventory.yml")
		inventoryYAML := fmt.Sprintf("targets:\n- name: local\n  host: %s\n  port: %s\n  chain: true\n", host, port)
		Expect(os.WriteFile(inventoryPath, []byte(inventoryYAML), 0644)).To(Succeed())

		session := runCommand("assess", "--inventory", inventoryPath, "--json")
		Expect(session).To(Exit(0))

		results := decode(session)
		Expect(results).To(HaveLen(1))
		Expect(results[0].Name).To(Equal("local"))
		Expect(results[0].Report.CertificateChain).To(HaveLen(1))
	})

	It("fails on a broken inventory", func() {
		inventoryPath := filepath.Join(tmpdir, "inventory.yml")
		Expect(os.WriteFile(inventoryPath, []byte("targets: [[["), 0644)).To(Succeed())

		session := runCommand("assess", "--inventory", inventoryPath)

		Expect(session).To(Exit(1))
		Expect(session.Err).To(Say("failed to parse inventory"))
	})

	It("saves the assessment to a database", func() {
		databasePath := filepath.Join(tmpdir, "database.db")

		session := runCommand("assess", "--host", host, "--port", port, "--database", databasePath)
		Expect(session).To(Exit(0))
		Expect(session.Err).To(Say("saved in SQLite3 database"))

		database, err := db.OpenDatabase(databasePath)
		Expect(err).NotTo(HaveOccurred())
		defer database.Close()

		var count int
		err = database.DB().QueryRow("SELECT COUNT(*) FROM ciphers WHERE protocol = 'TLSv1_2_method' AND state = ?", db.CipherEnabled).Scan(&count)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeNumerically(">", 0))
	})

	It("reports an endpoint that cannot be reached", func() {
		addr := server.Listener.Addr().String()
		server.Close()

		closedHost, closedPort, err := net.SplitHostPort(addr)
		Expect(err).NotTo(HaveOccurred())

		session := runCommand("assess", "--host", closedHost, "--port", closedPort, "--timeout", "2s")

		Expect(session).To(Exit(1))
		Expect(session.Err).To(Say(closedHost))
	})
})
