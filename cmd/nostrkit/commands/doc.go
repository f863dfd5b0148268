// Package commands defines the nostrkit CLI.
//
// Commands
//
//   - generate   Generate a new keypair
//   - inspect    Parse a key and print its public forms
//   - mnemonic   Generate a mnemonic and its derived keypair
//   - derive     Derive a keypair from an existing mnemonic
//   - vanity     Mine a keypair with a chosen npub prefix
//   - encrypt    Password-encrypt a secret key (ncryptsec)
//   - decrypt    Recover a secret key from an ncryptsec string
//
// # Implementation
//
// Every command is a pure function of its flags and arguments: nothing is
// read from or written to disk, and secret keys only ever appear on stdout
// where the caller asked for them.
package commands
