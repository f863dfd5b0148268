package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nostrkit/internal/keys"
)

var passphrase string

func Execute() error {
	root := &cobra.Command{
		Use:   "nostrkit",
		Short: "Nostr key generation and management CLI",
	}

	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "",
		"passphrase for mnemonic seeds and encrypted keys")

	root.AddCommand(
		generateCmd(),
		inspectCmd(),
		mnemonicCmd(),
		deriveCmd(),
		vanityCmd(),
		encryptCmd(),
		decryptCmd(),
	)
	return root.Execute()
}

// printKeys renders both halves of a keypair, bech32 by default.
func printKeys(k keys.Keys, asHex bool) error {
	if asHex {
		fmt.Printf("Secret key: %s\n", k.SecretKey().Hex())
		fmt.Printf("Public key: %s\n", k.PublicKey().Hex())
		return nil
	}
	nsec, err := k.SecretKey().Bech32()
	if err != nil {
		return err
	}
	npub, err := k.PublicKey().Bech32()
	if err != nil {
		return err
	}
	fmt.Printf("Secret key: %s\n", nsec)
	fmt.Printf("Public key: %s\n", npub)
	return nil
}
