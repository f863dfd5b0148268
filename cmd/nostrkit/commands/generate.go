package commands

import (
	"github.com/spf13/cobra"

	"nostrkit/internal/keys"
)

func generateCmd() *cobra.Command {
	var asHex bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new keypair",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := keys.Generate()
			if err != nil {
				return err
			}
			return printKeys(k, asHex)
		},
	}
	cmd.Flags().BoolVar(&asHex, "hex", false, "print keys as hex instead of bech32")
	return cmd
}
