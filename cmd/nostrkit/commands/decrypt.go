package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nostrkit/internal/keys"
	"nostrkit/internal/nip49"
)

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <ncryptsec>",
		Short: "Recover a secret key from an ncryptsec string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			sk, err := nip49.Decrypt(args[0], passphrase)
			if err != nil {
				return err
			}
			return printKeys(keys.NewKeys(sk), false)
		},
	}
}
