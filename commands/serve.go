package commands

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pivotal-cf/tlsprobe/api"
	"github.com/pivotal-cf/tlsprobe/db"
	"github.com/pivotal-cf/tlsprobe/scanlog"
)

type ServeCommand struct {
	Address  string `long:"address" description:"Address to listen on" value-name:"ADDRESS" default:":8080" env:"TLSPROBE_ADDRESS"`
	Database string `long:"database" description:"Location of database where assessments will be stored" value-name:"PATH" env:"TLSPROBE_DATABASE"`

	Probe ProbeOptions `group:"Probe Options"`
}

func (command *ServeCommand) Execute(args []string) error {
	logger, err := scanlog.NewLogger(TLSProbe.Debug)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	scanner, err := command.Probe.scanner(logger)
	if err != nil {
		return err
	}

	if !TLSProbe.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	var database *db.Database
	if command.Database != "" {
		database, err = db.OpenOrCreateDatabase(command.Database)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()
	}

	return api.New(logger, scanner, database).Run(command.Address)
}
