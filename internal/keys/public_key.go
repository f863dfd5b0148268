package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"nostrkit/internal/nip19"
	"nostrkit/internal/nip21"
)

// PublicKeyLen is the byte length of an x-only public key.
const PublicKeyLen = 32

// PublicKey is a validated x-only secp256k1 public key.
type PublicKey struct {
	buf [PublicKeyLen]byte
}

// NewPublicKey validates b as an x-only public key and returns it.
func NewPublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return PublicKey{}, fmt.Errorf("%w: want %d bytes, got %d",
			ErrInvalidPublicKey, PublicKeyLen, len(b))
	}
	if _, err := schnorr.ParsePubKey(b); err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	var pk PublicKey
	copy(pk.buf[:], b)
	return pk, nil
}

// ParsePublicKey parses an encoded public key from hex, npub or nostr: URI
// form, tried in that order.
func ParsePublicKey(s string) (PublicKey, error) {
	if len(s) == PublicKeyLen*2 {
		if b, err := hex.DecodeString(s); err == nil {
			return NewPublicKey(b)
		}
	}
	if entity, err := nip21.Parse(s); err == nil {
		s = entity
	}
	prefix, data, err := nip19.Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if prefix != nip19.PrefixPublicKey {
		return PublicKey{}, fmt.Errorf("%w: unexpected %q prefix", ErrInvalidPublicKey, prefix)
	}
	return NewPublicKey(data)
}

// Bytes returns a copy of the raw x-only key bytes.
func (pk PublicKey) Bytes() []byte {
	return append([]byte(nil), pk.buf[:]...)
}

// Hex returns the public key as a 64-character hex string.
func (pk PublicKey) Hex() string {
	return hex.EncodeToString(pk.buf[:])
}

// Bech32 returns the public key in npub form.
func (pk PublicKey) Bech32() (string, error) {
	return nip19.EncodePublicKey(pk.buf)
}

// NostrURI returns the public key as a shareable nostr: URI.
func (pk PublicKey) NostrURI() (string, error) {
	npub, err := pk.Bech32()
	if err != nil {
		return "", err
	}
	return nip21.ToURI(npub), nil
}

// Fingerprint returns a short hex fingerprint of the public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func (pk PublicKey) Fingerprint() string {
	sum := sha256.Sum256(pk.buf[:])
	return hex.EncodeToString(sum[:10])
}

// Equal reports whether two public keys are the same point.
func (pk PublicKey) Equal(other PublicKey) bool {
	return pk.buf == other.buf
}

// String returns the hex form.
func (pk PublicKey) String() string {
	return pk.Hex()
}
