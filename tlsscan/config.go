package tlsscan

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTimeout       = 10 * time.Second
	DefaultMaxInFlight   = 20
	DefaultReferenceHost = "www.google.com"
	DefaultReferencePort = 443
)

type Config struct {
	// Timeout bounds the dial and the handshake of every probe.
	Timeout time.Duration

	// MaxInFlight bounds the number of probes, and so connections, open at
	// once during one assessment.
	MaxInFlight int64

	// ReferenceHost and ReferencePort name a well-behaved public endpoint
	// used to learn which protocol versions the local library can speak.
	ReferenceHost string
	ReferencePort int

	// FailFastCiphers aborts an assessment on the first hard cipher probe
	// failure instead of recording it and carrying on.
	FailFastCiphers bool
}

func DefaultConfig() Config {
	return Config{
		Timeout:       DefaultTimeout,
		MaxInFlight:   DefaultMaxInFlight,
		ReferenceHost: DefaultReferenceHost,
		ReferencePort: DefaultReferencePort,
	}
}

func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("probe timeout must be positive")
	}

	if c.MaxInFlight < 1 {
		return fmt.Errorf("max in flight must be at least 1, got %d", c.MaxInFlight)
	}

	if c.ReferenceHost == "" {
		return errors.New("reference host is required")
	}

	if c.ReferencePort < 1 || c.ReferencePort > 65535 {
		return fmt.Errorf("reference port %d is out of range", c.ReferencePort)
	}

	return nil
}
