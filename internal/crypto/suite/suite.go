package suite

import "fmt"

// InitialKey protects the first flight.
type InitialKey struct{ packetKey }

// HandshakeKey protects handshake records.
type HandshakeKey struct{ packetKey }

// ZeroRTTKey protects early application data.
type ZeroRTTKey struct{ packetKey }

// OneRTTKey protects application data after the handshake confirms.
type OneRTTKey struct{ packetKey }

// Suite is the zero-state registry associating each encryption level with
// its key type. The handshake layer selects keys through it, so a level
// can only ever yield its own key type.
type Suite struct{}

// NewInitialKey derives the Initial key pair from one directional secret.
func (Suite) NewInitialKey(secret *Secret) (*InitialKey, error) {
	k, err := newPacketKey(LevelInitial, secret)
	if err != nil {
		return nil, fmt.Errorf("initial key: %w", err)
	}
	return &InitialKey{k}, nil
}

// NewHandshakeKey derives the Handshake key pair from one directional
// secret.
func (Suite) NewHandshakeKey(secret *Secret) (*HandshakeKey, error) {
	k, err := newPacketKey(LevelHandshake, secret)
	if err != nil {
		return nil, fmt.Errorf("handshake key: %w", err)
	}
	return &HandshakeKey{k}, nil
}

// NewZeroRTTKey derives the 0-RTT key pair from one directional secret.
func (Suite) NewZeroRTTKey(secret *Secret) (*ZeroRTTKey, error) {
	k, err := newPacketKey(LevelZeroRTT, secret)
	if err != nil {
		return nil, fmt.Errorf("zero-rtt key: %w", err)
	}
	return &ZeroRTTKey{k}, nil
}

// NewOneRTTKey derives the 1-RTT key pair from one directional secret.
func (Suite) NewOneRTTKey(secret *Secret) (*OneRTTKey, error) {
	k, err := newPacketKey(LevelOneRTT, secret)
	if err != nil {
		return nil, fmt.Errorf("one-rtt key: %w", err)
	}
	return &OneRTTKey{k}, nil
}

// RetryKey returns the fixed retry key. It is public and carries no
// per-connection state.
func (Suite) RetryKey() *RetryKey {
	return &RetryKey{}
}
