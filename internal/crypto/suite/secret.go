package suite

import "fmt"

// SecretSize is the size of a directional traffic secret.
const SecretSize = 32

// Secret is a single-direction traffic secret. Exactly one level's key
// constructor consumes it; the constructor wipes it after derivation so it
// can never seed a second level.
type Secret [SecretSize]byte

// NewSecret copies b into a Secret.
func NewSecret(b []byte) (Secret, error) {
	var s Secret
	if len(b) != SecretSize {
		return s, fmt.Errorf("secret must be %d bytes, got %d", SecretSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// Wipe overwrites the secret bytes.
func (s *Secret) Wipe() {
	for i := range s {
		s[i] = 0
	}
}

// IsZero reports whether the secret has been wiped or never set.
func (s *Secret) IsZero() bool {
	return *s == Secret{}
}

// SecretPair is the pair of directional secrets produced together at one
// key schedule point.
type SecretPair struct {
	// Client protects client-to-server traffic.
	Client Secret

	// Server protects server-to-client traffic.
	Server Secret
}

// Wipe overwrites both directions.
func (p *SecretPair) Wipe() {
	p.Client.Wipe()
	p.Server.Wipe()
}
