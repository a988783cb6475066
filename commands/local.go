package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pivotal-cf/tlsprobe/scanlog"
)

type LocalCommand struct {
	JSON bool `long:"json" description:"Print the report as JSON"`

	Probe ProbeOptions `group:"Probe Options"`
}

func (command *LocalCommand) Execute(args []string) error {
	logger, err := scanlog.NewLogger(TLSProbe.Debug)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	scanner, err := command.Probe.scanner(logger)
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()

	report, err := scanner.AssessLocalLibrary(ctx)
	if err != nil {
		return err
	}

	if command.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("Version: %s\n", report.LibraryVersion)
	fmt.Printf("Supported protocols: %s\n", strings.Join(report.Protocols.Supported, " "))
	fmt.Printf("Unsupported protocols: %s\n", strings.Join(report.Protocols.Unsupported, " "))
	fmt.Printf("Supported ciphers (%d): %s\n", len(report.Ciphers.Supported), strings.Join(report.Ciphers.Supported, " "))
	fmt.Printf("Unsupported ciphers (%d): %s\n", len(report.Ciphers.Unsupported), strings.Join(report.Ciphers.Unsupported, " "))

	return nil
}
