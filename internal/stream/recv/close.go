package recv

import quic "github.com/quic-go/quic-go"

// ConnectionClose is the peer-visible closure signal mapped from a fault.
// The outer framing layer serializes it onto the wire.
type ConnectionClose struct {
	// Code is the transport-level closure category.
	Code quic.TransportErrorCode

	// AppCode is the peer-supplied code, meaningful when Application is
	// set.
	AppCode quic.ApplicationErrorCode

	// Application marks an application-level closure.
	Application bool

	// Reason is a human-readable explanation.
	Reason string
}

// Category names the closure category for logging and metrics.
func (c ConnectionClose) Category() string {
	if c.Application {
		return "application"
	}
	return c.Code.String()
}

// ConnectionClose maps f to the closure signal to send to the peer, if
// any. Idle timeouts produce nothing: the peer is presumed unreachable.
// The two key replay faults produce nothing as a hard security rule: with
// the working key suspect the closure could not be authenticated, and
// sending one anyway would act as a replay-detection oracle for an
// attacker.
func (f Fault) ConnectionClose() (ConnectionClose, bool) {
	switch f.Kind {
	case KindDecode, KindDecrypt, KindDuplicate, KindStreamMismatch, KindUnexpectedRetransmission:
		// protocol violation for the faults that are only fatal on
		// reliable transports
		return ConnectionClose{Code: quic.ProtocolViolation, Reason: f.Error()}, true
	case KindMaxDataExceeded:
		return ConnectionClose{Code: quic.FlowControlError, Reason: f.Error()}, true
	case KindInvalidFin, KindTruncatedTransport:
		return ConnectionClose{Code: quic.FinalSizeError, Reason: f.Error()}, true
	case KindOutOfOrder:
		return ConnectionClose{Code: quic.StreamStateError, Reason: f.Error()}, true
	case KindOutOfRange:
		return ConnectionClose{Code: quic.StreamLimitError, Reason: f.Error()}, true
	case KindApplicationError:
		// the peer's code passes through unchanged
		return ConnectionClose{AppCode: quic.ApplicationErrorCode(f.AppCode), Application: true, Reason: f.Error()}, true
	default:
		// IdleTimeout, KeyReplayPrevented, KeyReplayMaybePrevented
		return ConnectionClose{}, false
	}
}
