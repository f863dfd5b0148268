package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nostrkit/internal/keys"
	"nostrkit/internal/nip19"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <key>",
		Short: "Parse a key and print its public forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			var pk keys.PublicKey
			k, secretErr := keys.Parse(input)
			if secretErr == nil {
				fmt.Println("Input is a SECRET key. Share only the public forms below.")
				pk = k.PublicKey()
			} else {
				var publicErr error
				pk, publicErr = keys.ParsePublicKey(input)
				if publicErr != nil {
					if strings.HasPrefix(input, nip19.PrefixSecretKey) {
						return secretErr
					}
					return publicErr
				}
			}

			npub, err := pk.Bech32()
			if err != nil {
				return err
			}
			uri, err := pk.NostrURI()
			if err != nil {
				return err
			}
			fmt.Printf("Public key (hex):  %s\n", pk.Hex())
			fmt.Printf("Public key (npub): %s\n", npub)
			fmt.Printf("URI:               %s\n", uri)
			fmt.Printf("Fingerprint:       %s\n", pk.Fingerprint())
			return nil
		},
	}
}
