package commands

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/pivotal-cf/tlsprobe/certparse"
	"github.com/pivotal-cf/tlsprobe/openssl"
	"github.com/pivotal-cf/tlsprobe/scanlog"
	"github.com/pivotal-cf/tlsprobe/tlsscan"
	"github.com/pivotal-cf/tlsprobe/transport"
)

type ProbeOptions struct {
	Transport       string        `long:"transport" description:"Handshake implementation" choice:"std" choice:"raw" default:"std" env:"TLSPROBE_TRANSPORT"`
	Timeout         time.Duration `long:"timeout" description:"Dial and handshake timeout of each probe" default:"10s" env:"TLSPROBE_TIMEOUT"`
	MaxInFlight     int64         `long:"max-in-flight" description:"Maximum concurrent probes per endpoint" default:"20" env:"TLSPROBE_MAX_IN_FLIGHT"`
	FailFastCiphers bool          `long:"fail-fast-ciphers" description:"Abort an assessment on the first cipher probe failure" env:"TLSPROBE_FAIL_FAST_CIPHERS"`
	OpenSSLPath     string        `long:"openssl-path" description:"Path to the openssl binary" value-name:"PATH" default:"openssl" env:"TLSPROBE_OPENSSL_PATH"`
	ReferenceHost   string        `long:"reference-host" description:"Endpoint used to test the local library" default:"www.google.com" env:"TLSPROBE_REFERENCE_HOST"`
	ReferencePort   int           `long:"reference-port" description:"Port of the reference endpoint" default:"443" env:"TLSPROBE_REFERENCE_PORT"`
}

func (o ProbeOptions) config() tlsscan.Config {
	config := tlsscan.DefaultConfig()

	config.Timeout = o.Timeout
	config.MaxInFlight = o.MaxInFlight
	config.FailFastCiphers = o.FailFastCiphers
	config.ReferenceHost = o.ReferenceHost
	config.ReferencePort = o.ReferencePort

	return config
}

func (o ProbeOptions) transport() transport.Transport {
	if o.Transport == "raw" {
		return transport.NewRawTransport()
	}

	return transport.NewStdTransport()
}

func (o ProbeOptions) scanner(logger scanlog.Logger) (*tlsscan.Scanner, error) {
	config := o.config()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return tlsscan.New(
		logger,
		o.transport(),
		certparse.NewParser(),
		openssl.NewCLI(o.OpenSSLPath),
		config,
	), nil
}

func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
