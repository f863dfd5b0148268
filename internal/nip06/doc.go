// Package nip06 derives Nostr keypairs from BIP-39 mnemonics.
//
// Derivation follows the path m/44'/1237'/account'/0/0 over BIP-32, so the
// same mnemonic, passphrase and account always yield the same keypair and
// one mnemonic can back any number of independent identities.
package nip06
