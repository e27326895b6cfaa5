// Package suite binds each encryption level of a connection to its own
// key types. The binding is structural: every level has a distinct key
// type, so a key derived for one level cannot be handed to code expecting
// another level's key.
package suite

import "fmt"

// Level identifies an encryption epoch, in order of progression.
type Level uint8

const (
	// LevelInitial protects the first flight before any handshake output.
	LevelInitial Level = iota

	// LevelHandshake protects the handshake itself.
	LevelHandshake

	// LevelZeroRTT protects early application data.
	LevelZeroRTT

	// LevelOneRTT protects application data after the handshake confirms.
	LevelOneRTT

	// LevelRetry authenticates retry packets with a fixed public key.
	LevelRetry
)

// String returns the level name, also used as the derivation label scope.
func (l Level) String() string {
	switch l {
	case LevelInitial:
		return "initial"
	case LevelHandshake:
		return "handshake"
	case LevelZeroRTT:
		return "zero-rtt"
	case LevelOneRTT:
		return "one-rtt"
	case LevelRetry:
		return "retry"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(l))
	}
}
