// Package replay tracks packet sequence numbers per decryption key to
// detect reuse of already-processed protected records.
package replay

import "fmt"

// SignalKind identifies the kind of signal raised during decrypt.
type SignalKind uint8

const (
	// SignalDefinitelyDetected means the sequence number was already
	// processed under this key.
	SignalDefinitelyDetected SignalKind = iota + 1

	// SignalPotentiallyDetected means the sequence number fell below the
	// tracking window, so reuse cannot be ruled out.
	SignalPotentiallyDetected

	// SignalInvalidTag means AEAD authentication failed.
	SignalInvalidTag
)

// String returns the string representation of a signal kind.
func (k SignalKind) String() string {
	switch k {
	case SignalDefinitelyDetected:
		return "definitely-detected"
	case SignalPotentiallyDetected:
		return "potentially-detected"
	case SignalInvalidTag:
		return "invalid-tag"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(k))
	}
}

// Signal is the outcome of a failed replay or authentication check. Gap is
// meaningful only for SignalPotentiallyDetected and carries the distance
// below the window floor when HasGap is set.
type Signal struct {
	Kind   SignalKind
	Gap    uint64
	HasGap bool
}

func (s *Signal) Error() string {
	switch s.Kind {
	case SignalPotentiallyDetected:
		if s.HasGap {
			return fmt.Sprintf("potential replay of sequence number (gap: %d)", s.Gap)
		}
		return "potential replay of sequence number"
	case SignalInvalidTag:
		return "authentication tag is invalid"
	default:
		return "sequence number has already been processed"
	}
}

// DefinitelyDetected reports a confirmed reuse.
func DefinitelyDetected() *Signal {
	return &Signal{Kind: SignalDefinitelyDetected}
}

// PotentiallyDetected reports a possible reuse with a known window gap.
func PotentiallyDetected(gap uint64) *Signal {
	return &Signal{Kind: SignalPotentiallyDetected, Gap: gap, HasGap: true}
}

// PotentiallyDetectedNoGap reports a possible reuse whose distance from the
// window is not representable.
func PotentiallyDetectedNoGap() *Signal {
	return &Signal{Kind: SignalPotentiallyDetected}
}

// InvalidTag reports an AEAD authentication failure.
func InvalidTag() *Signal {
	return &Signal{Kind: SignalInvalidTag}
}
