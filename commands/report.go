package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pivotal-cf/tlsprobe/db"
	"github.com/pivotal-cf/tlsprobe/report"
)

type ReportCommand struct {
	Database string `long:"database" description:"path to report database" required:"true" value-name:"PATH" env:"TLSPROBE_DATABASE"`
}

func (command *ReportCommand) Execute(args []string) error {
	database, err := db.OpenDatabase(command.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	builders := []func(*db.Database) (report.Report, error){
		report.BuildDeprecatedProtocolsReport,
		report.BuildWeakCiphersReport,
		func(database *db.Database) (report.Report, error) {
			return report.BuildCertificatesReport(database, time.Now())
		},
	}

	empty := true

	for _, build := range builders {
		r, err := build(database)
		if err != nil {
			return err
		}

		if r.IsEmpty() {
			continue
		}
		empty = false

		if err := printReport(os.Stdout, r); err != nil {
			return err
		}
	}

	if empty {
		fmt.Println("No findings.")
	}

	return nil
}

func printReport(w io.Writer, r report.Report) error {
	fmt.Fprintln(w, r.Title)
	fmt.Fprintln(w)

	wr := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(wr, strings.Join(r.Header, "\t"))
	for _, row := range r.Rows {
		fmt.Fprintln(wr, strings.Join(row, "\t"))
	}

	if err := wr.Flush(); err != nil {
		return err
	}

	if r.Footnote != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Footnote)
	}

	fmt.Fprintln(w)

	return nil
}
