package recv

import (
	"fmt"
	"io"
	"os"
)

// Category is the coarse classification exposed to callers that do not
// understand faults. The mapping is lossy and one-directional; the full
// fault stays recoverable through IOError.
type Category uint8

const (
	// CategoryInvalidData covers malformed or misdelivered units.
	CategoryInvalidData Category = iota + 1

	// CategoryLimitExceeded covers flow and range limit violations.
	CategoryLimitExceeded

	// CategoryUnexpectedEOF covers unauthenticated truncation.
	CategoryUnexpectedEOF

	// CategoryTimedOut covers idle expiry.
	CategoryTimedOut

	// CategoryPermissionDenied covers key replay faults.
	CategoryPermissionDenied

	// CategoryConnectionReset covers peer application errors.
	CategoryConnectionReset
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInvalidData:
		return "invalid data"
	case CategoryLimitExceeded:
		return "limit exceeded"
	case CategoryUnexpectedEOF:
		return "unexpected end of input"
	case CategoryTimedOut:
		return "timed out"
	case CategoryPermissionDenied:
		return "permission denied"
	case CategoryConnectionReset:
		return "connection reset"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(c))
	}
}

// Category maps f to its coarse category. Every kind maps to exactly one
// category.
func (f Fault) Category() Category {
	switch f.Kind {
	case KindMaxDataExceeded, KindOutOfRange:
		return CategoryLimitExceeded
	case KindTruncatedTransport:
		return CategoryUnexpectedEOF
	case KindIdleTimeout:
		return CategoryTimedOut
	case KindKeyReplayPrevented, KindKeyReplayMaybePrevented:
		return CategoryPermissionDenied
	case KindApplicationError:
		return CategoryConnectionReset
	default:
		// Decode, Decrypt, Duplicate, StreamMismatch, OutOfOrder,
		// InvalidFin, UnexpectedRetransmission
		return CategoryInvalidData
	}
}

// IOError presents a fault as a generic error for protocol-unaware
// callers. The original fault stays recoverable through errors.As.
type IOError struct {
	Fault Fault
}

// AsIOError wraps f.
func AsIOError(f Fault) *IOError {
	return &IOError{Fault: f}
}

func (e *IOError) Error() string {
	return e.Fault.Category().String() + ": " + e.Fault.Error()
}

// Unwrap exposes the fault as the cause.
func (e *IOError) Unwrap() error {
	return e.Fault
}

// Timeout satisfies the net.Error convention.
func (e *IOError) Timeout() bool {
	return e.Fault.Category() == CategoryTimedOut
}

// Is lets errors.Is match the stdlib sentinel closest to the category.
func (e *IOError) Is(target error) bool {
	switch e.Fault.Category() {
	case CategoryTimedOut:
		return target == os.ErrDeadlineExceeded
	case CategoryPermissionDenied:
		return target == os.ErrPermission
	case CategoryUnexpectedEOF:
		return target == io.ErrUnexpectedEOF
	default:
		return false
	}
}
