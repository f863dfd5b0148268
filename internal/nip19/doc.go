// Package nip19 implements bech32 encoding of Nostr key entities.
//
// Contents
//
//   - Human-readable prefixes for key entities (PrefixSecretKey,
//     PrefixPublicKey)
//   - Encoding of raw 32-byte keys into nsec/npub strings
//     (EncodeSecretKey, EncodePublicKey)
//   - Checksum-verified decoding back to raw bytes (Decode)
//
// # Notes
//
// Encoding is lowercase bech32 with the standard 6-character checksum.
// Decode rejects mixed case, bad checksums and, for the key prefixes,
// any payload that is not exactly 32 bytes.
package nip19
