package keys

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"nostrkit/internal/nip19"
	"nostrkit/internal/util/memzero"
)

// SecretKeyLen is the byte length of a secp256k1 secret key.
const SecretKeyLen = 32

// SecretKey is a validated secp256k1 secret key.
type SecretKey struct {
	buf [SecretKeyLen]byte
}

// NewSecretKey validates b as a secp256k1 scalar and returns it as a
// SecretKey. The scalar must be nonzero and below the group order.
func NewSecretKey(b []byte) (SecretKey, error) {
	if len(b) != SecretKeyLen {
		return SecretKey{}, fmt.Errorf("%w: want %d bytes, got %d",
			ErrInvalidSecretKey, SecretKeyLen, len(b))
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	zero := s.IsZero()
	s.Zero()
	if overflow || zero {
		return SecretKey{}, fmt.Errorf("%w: scalar out of range", ErrInvalidSecretKey)
	}
	var sk SecretKey
	copy(sk.buf[:], b)
	return sk, nil
}

// ParseSecretKey parses an encoded secret key from hex or nsec form.
func ParseSecretKey(s string) (SecretKey, error) {
	if strings.HasPrefix(s, nip19.PrefixPublicKey) {
		return SecretKey{}, fmt.Errorf("%w: got a public key (%s...), expected hex or %s",
			ErrInvalidSecretKey, nip19.PrefixPublicKey, nip19.PrefixSecretKey)
	}
	if len(s) == SecretKeyLen*2 {
		if b, err := hex.DecodeString(s); err == nil {
			return NewSecretKey(b)
		}
	}
	prefix, data, err := nip19.Decode(s)
	if err != nil {
		return SecretKey{}, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}
	if prefix != nip19.PrefixSecretKey {
		return SecretKey{}, fmt.Errorf("%w: unexpected %q prefix", ErrInvalidSecretKey, prefix)
	}
	return NewSecretKey(data)
}

// PublicKey derives the x-only public key for sk.
func (sk SecretKey) PublicKey() PublicKey {
	priv, _ := btcec.PrivKeyFromBytes(sk.buf[:])
	var pk PublicKey
	copy(pk.buf[:], schnorr.SerializePubKey(priv.PubKey()))
	return pk
}

// Bytes returns a copy of the raw secret key material.
func (sk SecretKey) Bytes() []byte {
	return append([]byte(nil), sk.buf[:]...)
}

// Hex returns the secret key as a 64-character hex string.
func (sk SecretKey) Hex() string {
	return hex.EncodeToString(sk.buf[:])
}

// Bech32 returns the secret key in nsec form.
func (sk SecretKey) Bech32() (string, error) {
	return nip19.EncodeSecretKey(sk.buf)
}

// Equal reports whether two secret keys hold the same material, in
// constant time.
func (sk SecretKey) Equal(other SecretKey) bool {
	return subtle.ConstantTimeCompare(sk.buf[:], other.buf[:]) == 1
}

// Zero wipes the secret material in place.
func (sk *SecretKey) Zero() {
	memzero.Zero(sk.buf[:])
}

// String renders a redacted placeholder so a SecretKey can never leak
// through logging or fmt verbs.
func (sk SecretKey) String() string {
	return "SecretKey(redacted)"
}
