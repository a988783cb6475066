package report

import (
	"fmt"
	"strings"

	"github.com/pivotal-cf/tlsprobe/catalog"
	"github.com/pivotal-cf/tlsprobe/db"
)

var goodProtocols = []string{
	"TLSv1_2_method",
}

func BuildDeprecatedProtocolsReport(database *db.Database) (Report, error) {
	query := fmt.Sprintf(`SELECT s.id, s.name, s.host, s.port, p.protocol
	FROM servers s
	JOIN protocols p
	ON p.server_id = s.id
	WHERE %s AND p.enabled AND p.protocol NOT IN(%s)
	ORDER BY s.name, s.port, p.id`, latestReport, quoteList(goodProtocols)) // sql binding doesn't play nice with array args

	rows, err := database.DB().Query(query)
	if err != nil {
		return Report{}, err
	}
	defer rows.Close()

	report := Report{
		Title: "Servers accepting deprecated protocol versions:",
		Header: []string{
			"Identity",
			"Address",
			"Deprecated Protocol(s)",
		},
		Footnote: "Only TLSv1.2 should be enabled. Disabling older versions may break legacy clients.",
	}

	var (
		order     []int64
		servers   = map[int64][]string{}
		protocols = map[int64][]string{}
	)

	for rows.Next() {
		var (
			id       int64
			name     string
			host     string
			port     int
			protocol string
		)

		if err := rows.Scan(&id, &name, &host, &port, &protocol); err != nil {
			return Report{}, err
		}

		if _, ok := servers[id]; !ok {
			order = append(order, id)
			servers[id] = identity(name, host, port)
		}

		if method, ok := catalog.LookupProtocol(protocol); ok {
			protocol = method.Name
		}
		protocols[id] = append(protocols[id], protocol)
	}

	if err := rows.Err(); err != nil {
		return Report{}, err
	}

	for _, id := range order {
		report.Rows = append(report.Rows, append(servers[id], strings.Join(protocols[id], " ")))
	}

	return report, nil
}
