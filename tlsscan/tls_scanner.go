package tlsscan

import (
	"context"

	"github.com/pivotal-cf/tlsprobe"
	"github.com/pivotal-cf/tlsprobe/certparse"
	"github.com/pivotal-cf/tlsprobe/openssl"
	"github.com/pivotal-cf/tlsprobe/scanlog"
	"github.com/pivotal-cf/tlsprobe/transport"
)

//go:generate counterfeiter . TLSScanner

type TLSScanner interface {
	AssessServer(ctx context.Context, endpoint tlsprobe.Endpoint, chain bool) (tlsprobe.ServerReport, error)
	AssessLocalLibrary(ctx context.Context) (tlsprobe.LocalCapabilityReport, error)
}

type Scanner struct {
	logger    scanlog.Logger
	transport transport.Transport
	parser    certparse.Parser
	tool      openssl.Tool
	config    Config
}

func New(
	logger scanlog.Logger,
	transport transport.Transport,
	parser certparse.Parser,
	tool openssl.Tool,
	config Config,
) *Scanner {
	return &Scanner{
		logger:    logger,
		transport: transport,
		parser:    parser,
		tool:      tool,
		config:    config,
	}
}

var _ TLSScanner = &Scanner{}
