package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"nostrkit/internal/vanity"
)

func vanityCmd() *cobra.Command {
	var (
		prefix  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "vanity",
		Short: "Mine a keypair with a chosen npub prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			if prefix == "" {
				return fmt.Errorf("prefix required (--prefix)")
			}
			k, err := vanity.Mine(cmd.Context(), prefix, workers)
			if err != nil {
				return err
			}
			return printKeys(k, false)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "bech32 characters the npub must start with")
	cmd.Flags().IntVar(&workers, "workers", 0, "mining goroutines (default NumCPU)")
	return cmd
}
