package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/tlsprobe/commands"
)

func main() {
	parser := flags.NewParser(&commands.TLSProbe, flags.Default)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
