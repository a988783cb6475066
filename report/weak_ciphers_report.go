package report

import (
	"fmt"
	"strings"

	"github.com/pivotal-cf/tlsprobe/catalog"
	"github.com/pivotal-cf/tlsprobe/db"
)

func weakCipherNames() []string {
	var names []string
	for _, suite := range catalog.WeakCipherSuites() {
		names = append(names, suite.Name)
	}
	return names
}

func BuildWeakCiphersReport(database *db.Database) (Report, error) {
	query := fmt.Sprintf(`SELECT s.name, s.host, s.port, c.protocol, c.cipher
	FROM servers s
	JOIN ciphers c
	ON c.server_id = s.id
	WHERE %s AND c.state = ? AND c.cipher IN(%s)
	ORDER BY s.name, s.port, c.protocol, c.id`, latestReport, quoteList(weakCipherNames()))

	rows, err := database.DB().Query(query, db.CipherEnabled)
	if err != nil {
		return Report{}, err
	}
	defer rows.Close()

	report := Report{
		Title: "Servers accepting weak cipher suites:",
		Header: []string{
			"Identity",
			"Address",
			"Protocol",
			"Weak Cipher(s)",
		},
		Footnote: "Weak suites use export-grade keys, anonymous key exchange, NULL encryption, RC4, DES or 3DES.",
	}

	type key struct {
		name     string
		host     string
		port     int
		protocol string
	}

	var (
		order   []key
		ciphers = map[key][]string{}
	)

	for rows.Next() {
		var (
			k      key
			cipher string
		)

		if err := rows.Scan(&k.name, &k.host, &k.port, &k.protocol, &cipher); err != nil {
			return Report{}, err
		}

		if _, ok := ciphers[k]; !ok {
			order = append(order, k)
		}
		ciphers[k] = append(ciphers[k], cipher)
	}

	if err := rows.Err(); err != nil {
		return Report{}, err
	}

	for _, k := range order {
		protocol := k.protocol
		if method, ok := catalog.LookupProtocol(protocol); ok {
			protocol = method.Name
		}

		row := append(identity(k.name, k.host, k.port), protocol, strings.Join(ciphers[k], " "))
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
