package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/catalog"
)

const asciiCross = "\u2717"
const asciiCheckmark = "\u2713"

func showReport(w io.Writer, results []tlsprobe.TargetReport) error {
	wr := tabwriter.NewWriter(w, 0, 8, 2, '\t', 0)

	fmt.Fprintln(wr, strings.Join([]string{"Name", "Address", "TLS", "Protocols", "Certificate"}, "\t"))

	for _, result := range results {
		server := result.Report

		fmt.Fprintf(wr, "%s\t%s:%d\t%s\t%s\t%s\n",
			result.Name,
			server.Host,
			server.Port,
			tlsMark(server),
			protocolSummary(server),
			certificateSummary(server.Certificate),
		)

		for _, method := range catalog.ProtocolMethods {
			lists, ok := server.Ciphers[method.ID]
			if !ok {
				continue
			}

			fmt.Fprintf(wr, "  %s ciphers: %s\n", method.Name, strings.Join(lists.Enabled, " "))
		}

		for _, failure := range server.Errors {
			fmt.Fprintf(wr, "  error: %s %s: %s\n", failure.Protocol, failure.Cipher, failure.Error)
		}
	}

	return wr.Flush()
}

func tlsMark(server tlsprobe.ServerReport) string {
	if server.HasTLS() {
		return asciiCheckmark
	}
	return asciiCross
}

func protocolSummary(server tlsprobe.ServerReport) string {
	var enabled []string
	for _, outcome := range server.Protocols {
		if outcome.Enabled {
			enabled = append(enabled, outcome.Name)
		}
	}

	if len(enabled) == 0 {
		return "-"
	}
	return strings.Join(enabled, " ")
}

func certificateSummary(cert *tlsprobe.CertificateRecord) string {
	if cert == nil {
		return "(no certificate information found)"
	}

	return fmt.Sprintf(
		"(%s %d, expires: %s, subject: %s)",
		cert.PublicKey.Algorithm,
		cert.PublicKey.Bits,
		cert.NotAfter.UTC().Format("2006-01-02"),
		cert.Subject,
	)
}
