package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	nmap "github.com/lair-framework/go-nmap"
	"go.uber.org/multierr"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/db"
	"github.com/pivotal-cf/tlsprobe/inventory"
	"github.com/pivotal-cf/tlsprobe/scanlog"
)

type AssessCommand struct {
	Host       string `long:"host" description:"Host to assess" value-name:"HOST"`
	Port       int    `long:"port" description:"Port to assess" value-name:"PORT" default:"443"`
	ServerName string `long:"server-name" description:"Server name to send in the handshake" value-name:"NAME"`
	MinDHSize  int    `long:"min-dh-size" description:"Smallest accepted finite-field DH group in bits" value-name:"BITS"`
	Chain      bool   `long:"chain" description:"Retrieve the full certificate chain"`

	Inventory   string `long:"inventory" description:"Path to inventory YAML" value-name:"PATH"`
	NmapResults string `long:"nmap-results" description:"Path to nmap results XML" value-name:"PATH"`

	Database string `long:"database" description:"Location of database where assessments will be stored" value-name:"PATH" env:"TLSPROBE_DATABASE"`
	JSON     bool   `long:"json" description:"Print assessments as JSON"`

	Probe ProbeOptions `group:"Probe Options"`
}

func (command *AssessCommand) Execute(args []string) error {
	logger, err := scanlog.NewLogger(TLSProbe.Debug)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	targets, err := command.targets()
	if err != nil {
		return err
	}

	scanner, err := command.Probe.scanner(logger)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()

	var (
		results []tlsprobe.TargetReport
		errs    error
	)

	for _, target := range targets {
		logger.Infof("assessing %s (%s)", target.Name, target.Endpoint)

		report, err := scanner.AssessServer(ctx, target.Endpoint, target.Chain)
		if err != nil {
			logger.Errorf("failed to assess %s: %s", target.Name, err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", target.Name, err))

			if ctx.Err() != nil {
				break
			}
			continue
		}

		results = append(results, tlsprobe.TargetReport{Name: target.Name, Report: report})
	}

	if command.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		if err := showReport(os.Stdout, results); err != nil {
			return err
		}
	}

	if command.Database != "" && len(results) > 0 {
		database, err := db.OpenOrCreateDatabase(command.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		id, err := database.SaveReport(results)
		if err != nil {
			return fmt.Errorf("failed to save to database: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Report %s saved in SQLite3 database: %s\n", id, command.Database)
	}

	return errs
}

func (command *AssessCommand) targets() ([]tlsprobe.Target, error) {
	sources := 0
	for _, set := range []bool{command.Host != "", command.Inventory != "", command.NmapResults != ""} {
		if set {
			sources++
		}
	}

	if sources != 1 {
		return nil, errors.New("exactly one of --host, --inventory or --nmap-results is required")
	}

	switch {
	case command.Inventory != "":
		inv, err := inventory.Parse(command.Inventory)
		if err != nil {
			return nil, fmt.Errorf("failed to parse inventory: %w", err)
		}
		return inv.Targets, nil

	case command.NmapResults != "":
		bs, err := ioutil.ReadFile(command.NmapResults)
		if err != nil {
			return nil, fmt.Errorf("failed to read nmap results: %w", err)
		}

		run, err := nmap.Parse(bs)
		if err != nil {
			return nil, fmt.Errorf("failed to parse nmap results: %w", err)
		}

		targets := tlsprobe.BuildTargets(run)
		if len(targets) == 0 {
			return nil, errors.New("nmap results contain no open ssl ports")
		}
		for i := range targets {
			targets[i].Chain = command.Chain
		}
		return targets, nil
	}

	target := tlsprobe.Target{
		Name: command.Host,
		Endpoint: tlsprobe.Endpoint{
			Host:       command.Host,
			Port:       command.Port,
			ServerName: command.ServerName,
			MinDHSize:  command.MinDHSize,
		},
		Chain: command.Chain,
	}

	if err := target.Endpoint.Validate(); err != nil {
		return nil, err
	}

	return []tlsprobe.Target{target}, nil
}
