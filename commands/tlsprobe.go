package commands

type TLSProbeCommand struct {
	Debug bool `long:"debug" description:"Show probe-by-probe detail" env:"TLSPROBE_DEBUG"`

	Assess AssessCommand `command:"assess" description:"Assess the protocols, ciphers and certificate of TLS endpoints"`
	Local  LocalCommand  `command:"local" description:"Report the protocols and ciphers the local TLS library supports"`
	Report ReportCommand `command:"report" description:"Print advisory reports from an assessment database"`
	Serve  ServeCommand  `command:"serve" description:"Serve assessments over HTTP"`
}

var TLSProbe TLSProbeCommand
