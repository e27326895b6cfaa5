package suite

import (
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"dclink/internal/metrics"
	"dclink/internal/security/replay"
)

const (
	keyLen   = chacha20poly1305.KeySize
	ivLen    = chacha20poly1305.NonceSize
	hpKeyLen = chacha20.KeySize

	// SampleSize is the number of ciphertext bytes header protection
	// consumes to derive a mask.
	SampleSize = 16

	// MaskSize is the number of header bytes a mask covers.
	MaskSize = 5

	// TagSize is the AEAD authentication tag size.
	TagSize = chacha20poly1305.Overhead
)

// ErrKeyRetired is returned when sealing with a wiped key.
var ErrKeyRetired = errors.New("key has been retired")

// packetKey is the body AEAD plus the independent header-protection key
// for one level and direction. Seal advances the sequence counter and Open
// advances the replay window, so a packetKey must be owned by a single
// sealing or decrypting path; the surrounding connection serializes use.
type packetKey struct {
	level   Level
	aead    cipher.AEAD
	bodyKey [keyLen]byte
	iv      [ivLen]byte
	hpKey   [hpKeyLen]byte
	seq     uint64
	window  replay.Window
	retired bool
}

// newPacketKey derives the body key, IV and header-protection key from one
// directional secret with level-scoped labels, then wipes the secret.
func newPacketKey(level Level, secret *Secret) (packetKey, error) {
	k := packetKey{level: level}
	if secret.IsZero() {
		return k, fmt.Errorf("%s: secret already consumed", level)
	}
	if err := expand(secret, level.String()+" key", k.bodyKey[:]); err != nil {
		return k, err
	}
	if err := expand(secret, level.String()+" iv", k.iv[:]); err != nil {
		return k, err
	}
	if err := expand(secret, level.String()+" hp", k.hpKey[:]); err != nil {
		return k, err
	}
	secret.Wipe()

	aead, err := chacha20poly1305.New(k.bodyKey[:])
	if err != nil {
		return k, fmt.Errorf("%s: create cipher: %w", level, err)
	}
	k.aead = aead
	metrics.IncKeyInstall(level.String())
	return k, nil
}

func expand(secret *Secret, label string, out []byte) error {
	r := hkdf.Expand(sha256.New, secret[:], []byte("dclink "+label))
	if _, err := io.ReadFull(r, out); err != nil {
		return fmt.Errorf("derive %s: %w", label, err)
	}
	return nil
}

// Level returns the encryption level the key belongs to.
func (k *packetKey) Level() Level {
	return k.level
}

// nonce XORs the sequence number into the static IV.
func (k *packetKey) nonce(seq uint64) [ivLen]byte {
	n := k.iv
	binary.BigEndian.PutUint64(n[ivLen-8:], binary.BigEndian.Uint64(n[ivLen-8:])^seq)
	return n
}

// Seal encrypts and authenticates one record, binding header as associated
// data. It returns the sequence number the record was sealed under and the
// ciphertext with the tag appended.
func (k *packetKey) Seal(header, plaintext []byte) (uint64, []byte, error) {
	if k.retired {
		return 0, nil, ErrKeyRetired
	}
	seq := k.seq
	k.seq++
	n := k.nonce(seq)
	return seq, k.aead.Seal(nil, n[:], plaintext, header), nil
}

// Open verifies and decrypts one record. Authentication failures and
// replay hits are reported as replay signals; the replay window is only
// advanced after the tag verifies.
func (k *packetKey) Open(seq uint64, header, ciphertext []byte) ([]byte, error) {
	if k.retired {
		return nil, replay.InvalidTag()
	}
	n := k.nonce(seq)
	plaintext, err := k.aead.Open(nil, n[:], ciphertext, header)
	if err != nil {
		return nil, replay.InvalidTag()
	}
	if sig := k.window.Observe(seq); sig != nil {
		metrics.IncReplayDrop()
		return nil, sig
	}
	return plaintext, nil
}

// headerMask derives a mask from a ciphertext sample: the first 4 sample
// bytes become the ChaCha20 counter and the rest the nonce.
func (k *packetKey) headerMask(sample []byte) ([MaskSize]byte, error) {
	var mask [MaskSize]byte
	if len(sample) < SampleSize {
		return mask, fmt.Errorf("header sample too short: %d", len(sample))
	}
	c, err := chacha20.NewUnauthenticatedCipher(k.hpKey[:], sample[4:SampleSize])
	if err != nil {
		return mask, fmt.Errorf("header protection cipher: %w", err)
	}
	c.SetCounter(binary.LittleEndian.Uint32(sample[:4]))
	c.XORKeyStream(mask[:], mask[:])
	return mask, nil
}

// ProtectHeader XORs the protection mask over the leading header fields.
func (k *packetKey) ProtectHeader(sample, header []byte) error {
	if k.retired {
		return ErrKeyRetired
	}
	mask, err := k.headerMask(sample)
	if err != nil {
		return err
	}
	for i := range header {
		if i == MaskSize {
			break
		}
		header[i] ^= mask[i]
	}
	return nil
}

// UnprotectHeader removes the mask. Protection is an XOR, so the operation
// is its own inverse.
func (k *packetKey) UnprotectHeader(sample, header []byte) error {
	return k.ProtectHeader(sample, header)
}

// Wipe overwrites the key material and retires the key. The owner calls it
// at epoch transition, before any packet of the next epoch is processed.
// Safe to call more than once.
func (k *packetKey) Wipe() {
	if k.retired {
		return
	}
	k.retired = true
	for i := range k.bodyKey {
		k.bodyKey[i] = 0
	}
	for i := range k.iv {
		k.iv[i] = 0
	}
	for i := range k.hpKey {
		k.hpKey[i] = 0
	}
	k.aead = nil
	k.window.Reset()
	metrics.IncKeyRetirement(k.level.String())
}
