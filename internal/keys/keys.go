package keys

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Keys is an identity keypair: a secret key and its derived public key.
// The zero value is not valid; construct via Generate, NewKeys or Parse.
type Keys struct {
	secretKey SecretKey
	publicKey PublicKey
}

// Generate returns a keypair with a fresh random secret key.
func Generate() (Keys, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return Keys{}, fmt.Errorf("generate secret key: %w", err)
	}
	sk, err := NewSecretKey(priv.Serialize())
	if err != nil {
		return Keys{}, err
	}
	return NewKeys(sk), nil
}

// NewKeys builds the keypair for a known-valid secret key. The public key
// is derived eagerly so accessors never fail.
func NewKeys(sk SecretKey) Keys {
	return Keys{secretKey: sk, publicKey: sk.PublicKey()}
}

// Parse builds a keypair from an encoded secret key in hex or nsec form.
// It never accepts public key material; see ParsePublicKey for that.
func Parse(s string) (Keys, error) {
	sk, err := ParseSecretKey(s)
	if err != nil {
		return Keys{}, err
	}
	return NewKeys(sk), nil
}

// MustParse is the strict form of Parse: it panics on malformed input.
// Use it only where a bad key is a programming error, such as tests or
// hard-coded fixtures.
func MustParse(s string) Keys {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// SecretKey returns the secret half of the keypair.
func (k Keys) SecretKey() SecretKey { return k.secretKey }

// PublicKey returns the public half of the keypair.
func (k Keys) PublicKey() PublicKey { return k.publicKey }
