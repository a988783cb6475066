package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pivotal-cf/tlsprobe/db"
)

const (
	ExpiryWindow   = 30 * 24 * time.Hour
	MinimumRSABits = 2048
)

// BuildCertificatesReport lists certificates that have expired, expire
// within ExpiryWindow of now, or carry an RSA or DSA key shorter than
// MinimumRSABits.
func BuildCertificatesReport(database *db.Database, now time.Time) (Report, error) {
	rows, err := database.DB().Query(`SELECT s.name, s.host, s.port, c.position, c.common_name, c.not_after, c.key_algorithm, c.key_bits
	FROM servers s
	JOIN certificates c
	ON c.server_id = s.id
	WHERE `+latestReport+` AND c.parse_error IS NULL
	ORDER BY s.name, s.port, c.position`)
	if err != nil {
		return Report{}, err
	}
	defer rows.Close()

	report := Report{
		Title: "Certificates needing attention:",
		Header: []string{
			"Identity",
			"Address",
			"Position",
			"Common Name",
			"Expires",
			"Problem(s)",
		},
		Footnote: fmt.Sprintf("Certificates expiring within %d days are included.", int(ExpiryWindow.Hours()/24)),
	}

	for rows.Next() {
		var (
			name         string
			host         string
			port         int
			position     int
			commonName   string
			notAfter     time.Time
			keyAlgorithm string
			keyBits      int
		)

		err := rows.Scan(&name, &host, &port, &position, &commonName, &notAfter, &keyAlgorithm, &keyBits)
		if err != nil {
			return Report{}, err
		}

		var problems []string

		switch {
		case notAfter.Before(now):
			problems = append(problems, "expired")
		case notAfter.Before(now.Add(ExpiryWindow)):
			problems = append(problems, "expiring soon")
		}

		if (keyAlgorithm == "RSA" || keyAlgorithm == "DSA") && keyBits < MinimumRSABits {
			problems = append(problems, fmt.Sprintf("%d-bit %s key", keyBits, keyAlgorithm))
		}

		if len(problems) == 0 {
			continue
		}

		row := append(identity(name, host, port),
			fmt.Sprintf("%d", position),
			commonName,
			notAfter.UTC().Format(time.RFC3339),
			strings.Join(problems, ", "),
		)
		report.Rows = append(report.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return Report{}, err
	}

	return report, nil
}
