package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nostrkit/internal/nip06"
)

func mnemonicCmd() *cobra.Command {
	var words int
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a mnemonic and its derived keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := nip06.GenerateMnemonic(words)
			if err != nil {
				return err
			}
			k, err := nip06.Derive(mnemonic, passphrase, 0)
			if err != nil {
				return err
			}
			fmt.Printf("Mnemonic: %s\n", mnemonic)
			return printKeys(k, false)
		},
	}
	cmd.Flags().IntVar(&words, "words", 12, "mnemonic length (12, 15, 18, 21 or 24)")
	return cmd
}
