// Package recv classifies receive-path anomalies and decides how a
// connection reacts to them. Classification is total: every detectable
// anomaly maps to exactly one fault kind.
package recv

import (
	"fmt"

	"dclink/internal/metrics"
	"dclink/internal/security/replay"
)

// FaultKind identifies one receive-path anomaly.
type FaultKind uint8

const (
	// KindDecode marks a record that could not be decoded.
	KindDecode FaultKind = iota + 1

	// KindDecrypt marks a record that could not be decrypted.
	KindDecrypt

	// KindDuplicate marks a record that was already processed.
	KindDuplicate

	// KindStreamMismatch marks a record delivered to the wrong stream.
	KindStreamMismatch

	// KindOutOfOrder marks data that violated in-order delivery.
	KindOutOfOrder

	// KindMaxDataExceeded marks a peer exceeding the max data window.
	KindMaxDataExceeded

	// KindInvalidFin marks an invalid stream fin.
	KindInvalidFin

	// KindOutOfRange marks data outside the allowed receive range.
	KindOutOfRange

	// KindUnexpectedRetransmission marks a retransmission that should not
	// have happened.
	KindUnexpectedRetransmission

	// KindTruncatedTransport marks a transport cut short without
	// authentication.
	KindTruncatedTransport

	// KindIdleTimeout marks an expired receive idle timer.
	KindIdleTimeout

	// KindKeyReplayPrevented marks a confirmed key replay.
	KindKeyReplayPrevented

	// KindKeyReplayMaybePrevented marks a possible key replay.
	KindKeyReplayMaybePrevented

	// KindApplicationError carries a peer's application error code.
	KindApplicationError
)

// String returns the fault kind name.
func (k FaultKind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindDecrypt:
		return "decrypt"
	case KindDuplicate:
		return "duplicate"
	case KindStreamMismatch:
		return "stream-mismatch"
	case KindOutOfOrder:
		return "out-of-order"
	case KindMaxDataExceeded:
		return "max-data-exceeded"
	case KindInvalidFin:
		return "invalid-fin"
	case KindOutOfRange:
		return "out-of-range"
	case KindUnexpectedRetransmission:
		return "unexpected-retransmission"
	case KindTruncatedTransport:
		return "truncated-transport"
	case KindIdleTimeout:
		return "idle-timeout"
	case KindKeyReplayPrevented:
		return "key-replay-prevented"
	case KindKeyReplayMaybePrevented:
		return "key-replay-maybe-prevented"
	case KindApplicationError:
		return "application-error"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(k))
	}
}

// Fault is one classified receive-path anomaly. Exactly one kind is
// active; the payload fields are meaningful only for the kinds that carry
// them. Faults are plain comparable values: constructed at detection,
// consumed by the policy and mapper, then discarded.
type Fault struct {
	Kind FaultKind

	// Expected and Actual carry the stream IDs for StreamMismatch and the
	// byte offsets for OutOfOrder.
	Expected uint64
	Actual   uint64

	// Gap carries the replay window distance for KeyReplayMaybePrevented
	// when HasGap is set.
	Gap    uint64
	HasGap bool

	// AppCode carries the peer's code for ApplicationError.
	AppCode uint64
}

// Faults without payloads.
var (
	Decode                   = Fault{Kind: KindDecode}
	Decrypt                  = Fault{Kind: KindDecrypt}
	Duplicate                = Fault{Kind: KindDuplicate}
	MaxDataExceeded          = Fault{Kind: KindMaxDataExceeded}
	InvalidFin               = Fault{Kind: KindInvalidFin}
	OutOfRange               = Fault{Kind: KindOutOfRange}
	UnexpectedRetransmission = Fault{Kind: KindUnexpectedRetransmission}
	TruncatedTransport       = Fault{Kind: KindTruncatedTransport}
	IdleTimeout              = Fault{Kind: KindIdleTimeout}
	KeyReplayPrevented       = Fault{Kind: KindKeyReplayPrevented}
)

// StreamMismatch reports a record for stream actual handled by expected.
func StreamMismatch(expected, actual uint64) Fault {
	return Fault{Kind: KindStreamMismatch, Expected: expected, Actual: actual}
}

// OutOfOrder reports data at offset actual where expected was required.
func OutOfOrder(expected, actual uint64) Fault {
	return Fault{Kind: KindOutOfOrder, Expected: expected, Actual: actual}
}

// KeyReplayMaybePrevented reports a possible key replay with a known gap.
func KeyReplayMaybePrevented(gap uint64) Fault {
	return Fault{Kind: KindKeyReplayMaybePrevented, Gap: gap, HasGap: true}
}

// KeyReplayMaybePreventedNoGap reports a possible key replay whose gap is
// unknown.
func KeyReplayMaybePreventedNoGap() Fault {
	return Fault{Kind: KindKeyReplayMaybePrevented}
}

// ApplicationError reports a peer's application error code.
func ApplicationError(code uint64) Fault {
	return Fault{Kind: KindApplicationError, AppCode: code}
}

func (f Fault) Error() string {
	switch f.Kind {
	case KindDecode:
		return "could not decode packet"
	case KindDecrypt:
		return "could not decrypt packet"
	case KindDuplicate:
		return "packet has already been processed"
	case KindStreamMismatch:
		return fmt.Sprintf("the packet was for another stream (%d) but was handled by %d", f.Actual, f.Expected)
	case KindOutOfOrder:
		return fmt.Sprintf("the stream expected in-order delivery of %d but got %d", f.Expected, f.Actual)
	case KindMaxDataExceeded:
		return "the peer exceeded the max data window"
	case KindInvalidFin:
		return "invalid fin"
	case KindOutOfRange:
		return "out of range"
	case KindUnexpectedRetransmission:
		return "unexpected retransmission packet"
	case KindTruncatedTransport:
		return "the transport has been truncated without authentication"
	case KindIdleTimeout:
		return "the receiver idle timer expired"
	case KindKeyReplayPrevented:
		return "the crypto key has been replayed and is invalid"
	case KindKeyReplayMaybePrevented:
		if f.HasGap {
			return fmt.Sprintf("the crypto key has been potentially replayed (gap: %d) and is invalid", f.Gap)
		}
		return "the crypto key has been potentially replayed and is invalid"
	case KindApplicationError:
		return fmt.Sprintf("application error: %d", f.AppCode)
	default:
		return fmt.Sprintf("unknown fault kind %d", uint8(f.Kind))
	}
}

// FromReplaySignal converts a decrypt-side replay signal into a fault.
// Definite and potential replay stay distinct for diagnostics (the gap
// aids investigation) but every downstream policy treats them identically:
// both mean the key can no longer be trusted.
func FromReplaySignal(sig *replay.Signal) Fault {
	switch sig.Kind {
	case replay.SignalDefinitelyDetected:
		return KeyReplayPrevented
	case replay.SignalPotentiallyDetected:
		if sig.HasGap {
			return KeyReplayMaybePrevented(sig.Gap)
		}
		return KeyReplayMaybePreventedNoGap()
	default:
		return Decrypt
	}
}

// Record counts a classified fault. The receive loop calls it once per
// fault surfaced.
func Record(f Fault) {
	metrics.IncFault(f.Kind.String())
}
