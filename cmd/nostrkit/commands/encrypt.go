package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nostrkit/internal/keys"
	"nostrkit/internal/nip49"
)

func encryptCmd() *cobra.Command {
	var logN uint8
	cmd := &cobra.Command{
		Use:   "encrypt <secret-key>",
		Short: "Password-encrypt a secret key (ncryptsec)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			k, err := keys.Parse(args[0])
			if err != nil {
				return err
			}
			encrypted, err := nip49.Encrypt(k.SecretKey(), passphrase, logN, nip49.KeySecurityUnknown)
			if err != nil {
				return err
			}
			fmt.Printf("Encrypted key: %s\n", encrypted)
			return nil
		},
	}
	cmd.Flags().Uint8Var(&logN, "logn", nip49.DefaultLogN, "scrypt cost exponent")
	return cmd
}
