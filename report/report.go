package report

import (
	"fmt"
	"strings"
)

type Report struct {
	Title    string
	Header   []string
	Rows     [][]string
	Footnote string
}

func (r Report) IsEmpty() bool {
	return len(r.Rows) == 0
}

// latestReport restricts a query on servers aliased as s to the most
// recently saved assessment.
const latestReport = `s.report_id = (SELECT MAX(id) FROM reports)`

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(quoted, ",")
}

func identity(name, host string, port int) []string {
	return []string{name, fmt.Sprintf("%s:%d", host, port)}
}
