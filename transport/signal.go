package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
)

type Signal int

const (
	Other Signal = iota
	ConnectionReset
	VersionMismatch
	NoCipherAvailable
	NoCipherMatch
	HandshakeFailure
	MethodUnavailable
	Timeout
	DHGroupTooSmall
)

var signalNames = map[Signal]string{
	Other:             "other",
	ConnectionReset:   "connection reset",
	VersionMismatch:   "version mismatch",
	NoCipherAvailable: "no cipher available",
	NoCipherMatch:     "no cipher match",
	HandshakeFailure:  "handshake failure",
	MethodUnavailable: "method unavailable",
	Timeout:           "timeout",
	DHGroupTooSmall:   "dh group too small",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "unknown"
}

// SignalOf extracts the signal carried by err. Errors that did not come from
// a transport are Other.
func SignalOf(err error) Signal {
	var hsErr *HandshakeError
	if errors.As(err, &hsErr) {
		return hsErr.Signal
	}
	return Other
}

const (
	alertCloseNotify          = 0
	alertHandshakeFailure     = 40
	alertIllegalParameter     = 47
	alertDecodeError          = 50
	alertProtocolVersion      = 70
	alertInsufficientSecurity = 71
	alertInternalError        = 80
)

var alertDescriptions = map[uint8]string{
	alertCloseNotify:          "close notify",
	alertHandshakeFailure:     "handshake failure",
	alertIllegalParameter:     "illegal parameter",
	alertDecodeError:          "error decoding message",
	alertProtocolVersion:      "protocol version not supported",
	alertInsufficientSecurity: "insufficient security level",
	alertInternalError:        "internal error",
}

var alertSignals = map[uint8]Signal{
	alertHandshakeFailure:     HandshakeFailure,
	alertInsufficientSecurity: HandshakeFailure,
	alertProtocolVersion:      VersionMismatch,
}

func alertSignal(code uint8) Signal {
	if signal, ok := alertSignals[code]; ok {
		return signal
	}
	return Other
}

// alertSignalByDescription maps the text crypto/tls renders for a received
// alert back onto its signal.
func alertSignalByDescription(description string) Signal {
	description = strings.TrimPrefix(description, "tls: ")
	for code, text := range alertDescriptions {
		if text == description {
			return alertSignal(code)
		}
	}
	return Other
}

const errUnsupportedVersion = "tls: server selected unsupported protocol version"

func classify(err error) Signal {
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "remote error" && opErr.Err != nil {
		return alertSignalByDescription(opErr.Err.Error())
	}

	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return VersionMismatch
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ConnectionReset
	}

	if strings.HasPrefix(err.Error(), errUnsupportedVersion) {
		return VersionMismatch
	}

	return Other
}

func wrap(err error) *HandshakeError {
	var hsErr *HandshakeError
	if errors.As(err, &hsErr) {
		return hsErr
	}
	return &HandshakeError{Signal: classify(err), Err: err}
}
