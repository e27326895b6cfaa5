package suite

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"dclink/internal/security/replay"
)

// The retry key and nonce are fixed and public. A retry tag proves only
// that the sender observed the original packet; it provides no
// confidentiality.
var (
	retryKey = [keyLen]byte{
		0x8b, 0x1c, 0xd4, 0x5a, 0x0f, 0x6e, 0x27, 0x93,
		0xbe, 0x71, 0x44, 0xc2, 0x9d, 0x58, 0xe0, 0x36,
		0x12, 0xaf, 0x6b, 0x85, 0xd9, 0x03, 0x7c, 0xe4,
		0x50, 0xcb, 0x29, 0x96, 0x1f, 0x62, 0xa8, 0x0d,
	}
	retryNonce = [ivLen]byte{
		0xe5, 0x41, 0x9c, 0x27, 0x70, 0x38, 0xd3, 0x0a,
		0xbf, 0x64, 0x81, 0x5e,
	}
)

// RetryKey authenticates retry packets.
type RetryKey struct{}

// Level returns LevelRetry.
func (*RetryKey) Level() Level {
	return LevelRetry
}

// Tag computes the integrity tag over the pseudo packet.
func (*RetryKey) Tag(pseudo []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(retryKey[:])
	if err != nil {
		return nil, fmt.Errorf("retry key: create cipher: %w", err)
	}
	return aead.Seal(nil, retryNonce[:], nil, pseudo), nil
}

// Verify checks the integrity tag over the pseudo packet. A mismatch is
// reported as an authentication failure signal.
func (k *RetryKey) Verify(pseudo, tag []byte) error {
	want, err := k.Tag(pseudo)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(want, tag) != 1 {
		return replay.InvalidTag()
	}
	return nil
}
