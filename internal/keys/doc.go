// Package keys owns the lifecycle of a Nostr identity keypair.
//
// Contents
//
//   - SecretKey and PublicKey, validated fixed-size key types with hex,
//     bech32 and URI renderings
//   - Keys, the keypair value tying a secret key to its derived x-only
//     public key (Generate, NewKeys)
//   - Parsing of encoded secret keys from hex or nsec form (Parse,
//     ParseSecretKey) and of public keys from hex, npub or nostr: URI
//     form (ParsePublicKey)
//   - MustParse, a strict wrapper for callers that treat a bad key as a
//     programming error
//
// # Notes
//
// A Keys value is either fully valid or does not exist: every constructor
// validates its input and returns an error instead of a partially built
// keypair. Parsing is a pure function of its input. Callers should treat
// SecretKey material as sensitive and call Zero when done where practical.
package keys
