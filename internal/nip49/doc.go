// Package nip49 implements password encryption of secret keys (ncryptsec).
//
// A secret key is sealed with XChaCha20-Poly1305 under a key derived from
// the password with scrypt (N=2^logN, r=8, p=1), and the whole payload is
// rendered as a bech32 string with the ncryptsec prefix:
//
//	version | logN | salt(16) | nonce(24) | security | ciphertext(48)
//
// The key-security byte rides along as AEAD associated data, so tampering
// with it breaks decryption. Passwords are NFKC-normalized before key
// derivation so visually identical passwords typed on different systems
// derive the same key.
//
// This is an export/exchange encoding for a single key, not a keystore.
package nip49
