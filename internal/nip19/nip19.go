package nip19

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Human-readable parts for bech32-encoded key entities.
const (
	PrefixSecretKey = "nsec"
	PrefixPublicKey = "npub"
)

// EntityLen is the payload length of nsec and npub entities.
const EntityLen = 32

// ErrMalformed is returned when a string is not valid bech32 or carries a
// payload of the wrong shape.
var ErrMalformed = errors.New("malformed bech32 string")

// EncodeSecretKey encodes raw secret key bytes as an nsec string.
func EncodeSecretKey(sk [EntityLen]byte) (string, error) {
	return encode(PrefixSecretKey, sk[:])
}

// EncodePublicKey encodes raw x-only public key bytes as an npub string.
func EncodePublicKey(pk [EntityLen]byte) (string, error) {
	return encode(PrefixPublicKey, pk[:])
}

// Decode verifies and decodes a bech32 entity, returning its prefix and
// payload. Key prefixes are additionally checked for a 32-byte payload.
func Decode(s string) (prefix string, data []byte, err error) {
	prefix, conv, err := bech32.Decode(s)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	data, err = bech32.ConvertBits(conv, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch prefix {
	case PrefixSecretKey, PrefixPublicKey:
		if len(data) != EntityLen {
			return "", nil, fmt.Errorf("%w: %s payload is %d bytes, want %d",
				ErrMalformed, prefix, len(data), EntityLen)
		}
	}
	return prefix, data, nil
}

func encode(prefix string, data []byte) (string, error) {
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(prefix, conv)
}
