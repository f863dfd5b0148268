package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nostrkit/internal/nip06"
)

func deriveCmd() *cobra.Command {
	var (
		mnemonic string
		account  uint32
	)
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a keypair from an existing mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mnemonic == "" {
				return fmt.Errorf("mnemonic required (--mnemonic)")
			}
			k, err := nip06.Derive(mnemonic, passphrase, account)
			if err != nil {
				return err
			}
			return printKeys(k, false)
		},
	}
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP-39 mnemonic phrase")
	cmd.Flags().Uint32Var(&account, "account", 0, "derivation account index")
	return cmd
}
