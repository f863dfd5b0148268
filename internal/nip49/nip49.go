package nip49

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/text/unicode/norm"

	"nostrkit/internal/keys"
	"nostrkit/internal/util/memzero"
)

// Prefix is the bech32 human-readable part for encrypted secret keys.
const Prefix = "ncryptsec"

// KeySecurity records how the secret key has been handled by the client
// that encrypted it.
type KeySecurity byte

const (
	// KeySecurityWeak means the key has been handled insecurely, for
	// example displayed on screen or pasted into an untrusted app.
	KeySecurityWeak KeySecurity = iota
	// KeySecurityMedium means the key has not been handled insecurely.
	KeySecurityMedium
	// KeySecurityUnknown means the client does not track key handling.
	KeySecurityUnknown
)

// DefaultLogN is the default scrypt cost exponent, sized for an
// interactive tool rather than bulk processing.
const DefaultLogN = 16

const (
	version  = 0x02
	saltLen  = 16
	nonceLen = chacha20poly1305.NonceSizeX

	// version, logN, salt, nonce, security byte, sealed key (32 + 16 tag).
	payloadLen = 2 + saltLen + nonceLen + 1 + keys.SecretKeyLen + 16

	maxLogN = 22 // caps scrypt memory at decrypt time
)

var (
	// ErrMalformed is returned when a string is not a well-formed
	// ncryptsec payload.
	ErrMalformed = errors.New("malformed encrypted secret key")

	// ErrDecrypt is returned when the password is wrong or the payload
	// has been tampered with.
	ErrDecrypt = errors.New("cannot decrypt secret key")
)

// Encrypt seals sk under password and returns the ncryptsec string.
func Encrypt(sk keys.SecretKey, password string, logN uint8, security KeySecurity) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := symmetricKey(password, salt, logN)
	if err != nil {
		return "", err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	payload := make([]byte, 0, payloadLen)
	payload = append(payload, version, logN)
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = append(payload, byte(security))

	secret := sk.Bytes()
	payload = aead.Seal(payload, nonce, secret, []byte{byte(security)})
	memzero.Zero(secret)

	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(Prefix, conv)
}

// Decrypt opens an ncryptsec string with password and returns the secret
// key.
func Decrypt(s, password string) (keys.SecretKey, error) {
	// ncryptsec strings exceed the 90-character bech32 limit.
	prefix, conv, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return keys.SecretKey{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if prefix != Prefix {
		return keys.SecretKey{}, fmt.Errorf("%w: unexpected %q prefix", ErrMalformed, prefix)
	}
	payload, err := bech32.ConvertBits(conv, 5, 8, false)
	if err != nil {
		return keys.SecretKey{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(payload) != payloadLen {
		return keys.SecretKey{}, fmt.Errorf("%w: payload is %d bytes, want %d",
			ErrMalformed, len(payload), payloadLen)
	}
	if payload[0] != version {
		return keys.SecretKey{}, fmt.Errorf("%w: unsupported version 0x%02x",
			ErrMalformed, payload[0])
	}

	logN := payload[1]
	salt := payload[2 : 2+saltLen]
	nonce := payload[2+saltLen : 2+saltLen+nonceLen]
	security := payload[2+saltLen+nonceLen]
	sealed := payload[2+saltLen+nonceLen+1:]

	key, err := symmetricKey(password, salt, logN)
	if err != nil {
		return keys.SecretKey{}, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return keys.SecretKey{}, err
	}
	secret, err := aead.Open(nil, nonce, sealed, []byte{security})
	if err != nil {
		return keys.SecretKey{}, ErrDecrypt
	}
	defer memzero.Zero(secret)

	return keys.NewSecretKey(secret)
}

func symmetricKey(password string, salt []byte, logN uint8) ([]byte, error) {
	if logN < 1 || logN > maxLogN {
		return nil, fmt.Errorf("%w: scrypt cost exponent %d out of range [1,%d]",
			ErrMalformed, logN, maxLogN)
	}
	normalized := norm.NFKC.Bytes([]byte(password))
	return scrypt.Key(normalized, salt, 1<<int(logN), 8, 1, chacha20poly1305.KeySize)
}
