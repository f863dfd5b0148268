package nip06

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"

	"nostrkit/internal/keys"
)

// Derivation path components: m/44'/1237'/account'/0/0.
const (
	purpose  = 44
	coinType = 1237
)

// ErrInvalidMnemonic is returned when a phrase fails BIP-39 validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// GenerateMnemonic returns a fresh BIP-39 phrase of the given word count
// (12, 15, 18, 21 or 24).
func GenerateMnemonic(words int) (string, error) {
	var bits int
	switch words {
	case 12:
		bits = 128
	case 15:
		bits = 160
	case 18:
		bits = 192
	case 21:
		bits = 224
	case 24:
		bits = 256
	default:
		return "", fmt.Errorf("mnemonic must be 12, 15, 18, 21 or 24 words, got %d", words)
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// ValidateMnemonic reports whether the phrase is a well-formed BIP-39
// mnemonic with a valid checksum.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// Derive returns the keypair for a mnemonic, optional passphrase and
// account index.
func Derive(mnemonic, passphrase string, account uint32) (keys.Keys, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return keys.Keys{}, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return keys.Keys{}, fmt.Errorf("derive master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + purpose,
		hdkeychain.HardenedKeyStart + coinType,
		hdkeychain.HardenedKeyStart + account,
		0,
		0,
	}
	child := master
	for _, index := range path {
		if child, err = child.Derive(index); err != nil {
			return keys.Keys{}, fmt.Errorf("derive child key: %w", err)
		}
	}

	priv, err := child.ECPrivKey()
	if err != nil {
		return keys.Keys{}, err
	}
	sk, err := keys.NewSecretKey(priv.Serialize())
	if err != nil {
		return keys.Keys{}, err
	}
	return keys.NewKeys(sk), nil
}
